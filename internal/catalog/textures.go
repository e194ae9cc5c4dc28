package catalog

// TextureOption is one selectable floor texture.
type TextureOption struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Valid floor types.
const (
	FloorTypeTile     = "tile"
	FloorTypeCarpet   = "carpet"
	FloorTypeMaterial = "material"
)

var textureOptions = map[string][]TextureOption{
	FloorTypeTile: {
		{Name: "Ceramic", Path: "/assets/tile.jpg"},
		{Name: "Marble", Path: "/assets/marble.jpg"},
	},
	FloorTypeCarpet: {
		{Name: "Gray Wool", Path: "/textures/carpet_gray.jpg"},
		{Name: "Beige Shag", Path: "/textures/carpet_beige.jpg"},
	},
	FloorTypeMaterial: {
		{Name: "Hardwood Oak", Path: "/textures/hardwood_oak.jpg"},
		{Name: "Bamboo", Path: "/textures/bamboo.jpg"},
	},
}

// TextureOptions returns the texture table keyed by floor type.
func TextureOptions() map[string][]TextureOption {
	return textureOptions
}

// TexturesFor returns the options for one floor type; nil for unknown types.
func TexturesFor(floorType string) []TextureOption {
	return textureOptions[floorType]
}
