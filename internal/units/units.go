// Package units is the single home of the coordinate model shared by the
// room editor, the stored design documents and the 3D viewer handoff.
//
// Three unit spaces exist:
//
//   - feet: real-world room and furniture dimensions, as authored in
//     templates and the catalog.
//   - editor pixels: feet * EditorScale. This is the unit in which
//     furniture coordinates are persisted.
//   - room pixels: feet * RoomScale. This is the unit of the 2D canvas the
//     user actually drags items on.
//
// Every conversion between those spaces goes through a named function here;
// nothing else in the codebase multiplies by a scale constant directly.
package units

// Fixed display scales. Changing either invalidates every stored design, so
// they are constants rather than configuration.
const (
	// EditorScale converts authored feet into the editor-pixel unit that
	// furniture coordinates are stored in.
	EditorScale = 10.0

	// RoomScale converts feet into on-screen room pixels for the 2D canvas.
	RoomScale = 25.0
)

// FeetToEditor converts a length in feet to editor pixels.
func FeetToEditor(ft float64) float64 {
	return ft * EditorScale
}

// EditorToFeet converts editor pixels back to feet.
func EditorToFeet(px float64) float64 {
	return px / EditorScale
}

// EditorToRoom converts a stored editor-pixel coordinate to the room-pixel
// position it is drawn at on the canvas.
func EditorToRoom(px float64) float64 {
	return px * (RoomScale / EditorScale)
}

// RoomToEditor converts a dragged room-pixel position back to the stored
// editor-pixel coordinate.
func RoomToEditor(px float64) float64 {
	return px / (RoomScale / EditorScale)
}

// RoomExtent is the pixel size of the canvas for a room dimension in feet.
func RoomExtent(ft float64) float64 {
	return ft * RoomScale
}

// ViewerPosition normalizes a stored editor-pixel position back to feet for
// the 3D view: the coordinate is divided by the room's editor-pixel extent
// and re-multiplied by the real dimension. A zero dimension falls back to 1
// so an empty room never divides by zero.
func ViewerPosition(editorPx, roomFt float64) float64 {
	ft := roomFt
	if ft == 0 {
		ft = 1
	}
	return editorPx / (ft * EditorScale) * ft
}

// ViewerSize converts a stored editor-pixel size back to feet for the 3D view.
func ViewerSize(editorPx float64) float64 {
	return editorPx / EditorScale
}
