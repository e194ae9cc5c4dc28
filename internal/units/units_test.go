package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeetToEditor(t *testing.T) {
	assert.Equal(t, 40.0, FeetToEditor(4))
	assert.Equal(t, 0.0, FeetToEditor(0))
	assert.Equal(t, 25.0, FeetToEditor(2.5))
}

func TestEditorToFeetInvertsFeetToEditor(t *testing.T) {
	for _, ft := range []float64{0, 1, 4, 8.5, 50} {
		assert.InDelta(t, ft, EditorToFeet(FeetToEditor(ft)), 1e-9)
	}
}

func TestEditorRoomRoundTrip(t *testing.T) {
	// A stored coordinate of 40 editor px draws at 100 room px and a drag
	// back to 100 room px stores 40 again.
	assert.Equal(t, 100.0, EditorToRoom(40))
	assert.Equal(t, 40.0, RoomToEditor(100))

	for _, px := range []float64{0, 12.5, 40, 199} {
		assert.InDelta(t, px, RoomToEditor(EditorToRoom(px)), 1e-9)
	}
}

func TestRoomExtent(t *testing.T) {
	// A 50ft room renders on a 1250px canvas.
	assert.Equal(t, 1250.0, RoomExtent(50))
}

func TestViewerPosition(t *testing.T) {
	// Stored x=40 in a 50ft room: 40 / (50*10) * 50 = 4ft.
	assert.InDelta(t, 4.0, ViewerPosition(40, 50), 1e-9)

	// The normalization cancels the room dimension, so any non-zero room
	// gives editorPx / EditorScale.
	assert.InDelta(t, 4.0, ViewerPosition(40, 20), 1e-9)
}

func TestViewerPositionZeroRoom(t *testing.T) {
	// A zero dimension must not divide by zero; it falls back to 1ft.
	assert.InDelta(t, 4.0, ViewerPosition(40, 0), 1e-9)
}

func TestViewerSize(t *testing.T) {
	assert.InDelta(t, 8.0, ViewerSize(80), 1e-9)
}
