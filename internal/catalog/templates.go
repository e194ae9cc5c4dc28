package catalog

// TemplateFurniture is a furniture item as authored in a room template, with
// position and size in feet. The editor scales these on application.
type TemplateFurniture struct {
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Color  string  `json:"color"`
}

// TemplateDimensions is the authored room footprint in feet.
type TemplateDimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// RoomTemplate is a predefined starting layout with default furniture and
// suggested finishes.
type RoomTemplate struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Dimensions          TemplateDimensions  `json:"dimensions"`
	DefaultFurniture    []TemplateFurniture `json:"defaultFurniture"`
	SuggestedWallColor  string              `json:"suggestedWallColor"`
	SuggestedFloorColor string              `json:"suggestedFloorColor"`
	SuggestedFloorType  string              `json:"suggestedFloorType"`
	SuggestedTexture    string              `json:"suggestedFloorTexture"`
}

var roomTemplates = []RoomTemplate{
	{
		ID:         "living-room",
		Name:       "Living Room",
		Dimensions: TemplateDimensions{Width: 50, Length: 50},
		DefaultFurniture: []TemplateFurniture{
			{Type: "sofa", Name: "Sofa", X: 4, Y: 4, Width: 8, Length: 3, Color: "#8B4513"},
			{Type: "coffee-table", Name: "Coffee Table", X: 8, Y: 8, Width: 4, Length: 2, Color: "#4682B4"},
			{Type: "arm-chair", Name: "Arm Chair", X: 12, Y: 4, Width: 3, Length: 3, Color: "#228B22"},
		},
		SuggestedWallColor:  "#f5f5f5",
		SuggestedFloorColor: "#ffffff",
		SuggestedFloorType:  "tile",
		SuggestedTexture:    "/assets/marble.jpg",
	},
	{
		ID:         "bedroom",
		Name:       "Bedroom",
		Dimensions: TemplateDimensions{Width: 50, Length: 50},
		DefaultFurniture: []TemplateFurniture{
			{Type: "double-bed", Name: "Double Bed", X: 4, Y: 4, Width: 8, Length: 6, Color: "#ffffff"},
			{Type: "dresser", Name: "Dresser", X: 12, Y: 4, Width: 3, Length: 2, Color: "#8B4513"},
			{Type: "nightstand", Name: "Nightstand", X: 2, Y: 4, Width: 2, Length: 2, Color: "#8B4513"},
		},
		SuggestedWallColor:  "#f5f5f5",
		SuggestedFloorColor: "#ffffff",
		SuggestedFloorType:  "tile",
		SuggestedTexture:    "/assets/marble.jpg",
	},
	{
		ID:         "home-office",
		Name:       "Home Office",
		Dimensions: TemplateDimensions{Width: 50, Length: 50},
		DefaultFurniture: []TemplateFurniture{
			{Type: "desk", Name: "Desk", X: 2, Y: 2, Width: 6, Length: 3, Color: "#2F4F4F"},
			{Type: "computer-chair", Name: "Computer Chair", X: 4, Y: 6, Width: 2, Length: 2, Color: "#333333"},
			{Type: "bookshelf", Name: "Bookshelf", X: 9, Y: 2, Width: 2, Length: 1, Color: "#8B4513"},
		},
		SuggestedWallColor:  "#f5f5f5",
		SuggestedFloorColor: "#ffffff",
		SuggestedFloorType:  "tile",
		SuggestedTexture:    "/assets/marble.jpg",
	},
	{
		ID:         "dining-room",
		Name:       "Dining Room",
		Dimensions: TemplateDimensions{Width: 20, Length: 20},
		DefaultFurniture: []TemplateFurniture{
			{Type: "dining-table", Name: "Dining Table", X: 4, Y: 4, Width: 10, Length: 10, Color: "#FFFFFF"},
		},
		SuggestedWallColor:  "#f5f5f5",
		SuggestedFloorColor: "#ffffff",
		SuggestedFloorType:  "tile",
		SuggestedTexture:    "/assets/marble.jpg",
	},
}

// Templates returns all predefined room templates.
func Templates() []RoomTemplate {
	return roomTemplates
}

// FindTemplate returns the template with the given ID, or nil.
func FindTemplate(id string) *RoomTemplate {
	for i := range roomTemplates {
		if roomTemplates[i].ID == id {
			return &roomTemplates[i]
		}
	}
	return nil
}
