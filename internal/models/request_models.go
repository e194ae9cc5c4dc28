package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login. The client authenticates
// against Firebase directly and sends the resulting ID token here.
type LoginRequest struct {
	IDToken string `json:"idToken"`
}

// LoginResponse carries the verified subject and a freshly minted custom token.
type LoginResponse struct {
	UID         string `json:"uid"`
	CustomToken string `json:"customToken"`
}

// SaveDesignRequest is the body of POST /api/designs and PUT /api/designs/:id.
// An update is a full overwrite of every editable field.
type SaveDesignRequest struct {
	Name         string              `json:"name"`
	Dimensions   Dimensions          `json:"dimensions"`
	WallColor    string              `json:"wallColor"`
	FloorColor   string              `json:"floorColor"`
	FloorType    string              `json:"floorType"`
	FloorTexture string              `json:"floorTexture"`
	Furniture    []FurnitureInstance `json:"furniture"`
	TemplateID   string              `json:"templateId,omitempty"`
}

// ApplyTemplateRequest selects a room template to expand into editor state.
type ApplyTemplateRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
}

// AddFurnitureRequest places a catalog item (or subtype) into the editor.
type AddFurnitureRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// MoveFurnitureRequest repositions a placed item. RoomX and RoomY are the
// dragged position in room pixels, as reported by the canvas.
type MoveFurnitureRequest struct {
	Furniture []FurnitureInstance `json:"furniture" binding:"required"`
	ItemID    string              `json:"itemId" binding:"required"`
	RoomX     float64             `json:"roomX"`
	RoomY     float64             `json:"roomY"`
}

// ViewerRequest converts arbitrary editor state for the 3D view without
// requiring it to be saved first.
type ViewerRequest struct {
	Dimensions   Dimensions          `json:"dimensions"`
	WallColor    string              `json:"wallColor"`
	FloorColor   string              `json:"floorColor"`
	FloorType    string              `json:"floorType"`
	FloorTexture string              `json:"floorTexture"`
	Furniture    []FurnitureInstance `json:"furniture"`
}
