package models

import "time"

// Dimensions is a room's footprint in feet.
type Dimensions struct {
	Width  float64 `json:"width" firestore:"width"`
	Length float64 `json:"length" firestore:"length"`
}

// FurnitureInstance is one placed furniture item. X, Y, Width and Length are
// stored in editor pixels (authored feet multiplied by units.EditorScale), the
// same unit the 2D editor persists.
type FurnitureInstance struct {
	ID        string  `json:"id" firestore:"id"`
	Type      string  `json:"type" firestore:"type"`
	Name      string  `json:"name" firestore:"name"`
	X         float64 `json:"x" firestore:"x"`
	Y         float64 `json:"y" firestore:"y"`
	Width     float64 `json:"width" firestore:"width"`
	Length    float64 `json:"length" firestore:"length"`
	Color     string  `json:"color" firestore:"color"`
	ModelID   string  `json:"modelId" firestore:"modelId"`
	ModelPath string  `json:"modelPath" firestore:"modelPath"`
}

// Design is a saved room layout. Documents live in the top-level "designs"
// collection, owned by UserID (the Firebase Auth UID of the creator).
// UserEmail is denormalized for display only; ownership checks always use
// UserID.
type Design struct {
	ID           string              `json:"id" firestore:"-"`
	UserID       string              `json:"userId" firestore:"userId"`
	UserEmail    string              `json:"userEmail,omitempty" firestore:"userEmail,omitempty"`
	Name         string              `json:"name" firestore:"name"`
	Dimensions   Dimensions          `json:"dimensions" firestore:"dimensions"`
	WallColor    string              `json:"wallColor" firestore:"wallColor"`
	FloorColor   string              `json:"floorColor" firestore:"floorColor"`
	FloorType    string              `json:"floorType" firestore:"floorType"`
	FloorTexture string              `json:"floorTexture" firestore:"floorTexture"`
	Furniture    []FurnitureInstance `json:"furniture" firestore:"furniture"`
	TemplateID   string              `json:"templateId,omitempty" firestore:"templateId,omitempty"`
	CreatedAt    time.Time           `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time           `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// EditorState is the full editable state of the 2D editor: what "apply
// template" returns and what a loaded design hydrates.
type EditorState struct {
	TemplateID   string              `json:"templateId,omitempty"`
	Dimensions   Dimensions          `json:"dimensions"`
	WallColor    string              `json:"wallColor"`
	FloorColor   string              `json:"floorColor"`
	FloorType    string              `json:"floorType"`
	FloorTexture string              `json:"floorTexture"`
	Furniture    []FurnitureInstance `json:"furniture"`
}

// ViewerRoom is the room portion of a 3D viewer handoff, in real-world feet.
type ViewerRoom struct {
	Dimensions   Dimensions `json:"dimensions"`
	WallColor    string     `json:"wallColor"`
	FloorColor   string     `json:"floorColor"`
	FloorType    string     `json:"floorType"`
	FloorTexture string     `json:"floorTexture"`
}

// ViewerFurniture is a furniture item converted back to feet for the 3D view.
type ViewerFurniture struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Length    float64 `json:"length"`
	Color     string  `json:"color"`
	ModelID   string  `json:"modelId"`
	ModelPath string  `json:"modelPath"`
}

// ViewerPayload is the navigation-transfer state handed to a 3D view. It is
// never persisted.
type ViewerPayload struct {
	Room      ViewerRoom        `json:"room"`
	Furniture []ViewerFurniture `json:"furniture"`
}
