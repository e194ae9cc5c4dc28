// Package catalog holds the static seed data of the studio: the furniture
// catalog, the predefined room templates and the floor texture options. None
// of it is persisted; it ships with the binary.
package catalog

// FurnitureModel is a 3D model reference attached to a catalog entry.
type FurnitureModel struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// FurnitureSubtype is a selectable variant of a catalog entry (e.g. the
// "chair" entry offers arm chair and computer chair variants).
type FurnitureSubtype struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Width  float64          `json:"width"`  // feet
	Length float64          `json:"length"` // feet
	Color  string           `json:"color"`
	Models []FurnitureModel `json:"models"`
}

// FurnitureCatalogEntry is one selectable catalog item. Entries either carry
// their own dimensions and models, or defer to their subtypes.
type FurnitureCatalogEntry struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Width    float64            `json:"width,omitempty"`  // feet
	Length   float64            `json:"length,omitempty"` // feet
	Color    string             `json:"color,omitempty"`
	Models   []FurnitureModel   `json:"models,omitempty"`
	Subtypes []FurnitureSubtype `json:"subtypes,omitempty"`
}

// DefaultModelID is the sentinel used when a template item has no catalog
// match; the 3D view substitutes a generic box for it.
const DefaultModelID = "default"

var furnitureCatalog = []FurnitureCatalogEntry{
	{
		ID: "sofa", Name: "Sofa", Width: 8, Length: 3, Color: "#8B4513",
		Models: []FurnitureModel{
			{ID: "sofa-classic", Path: "/models/sofa_classic.glb"},
			{ID: "sofa-modern", Path: "/models/sofa_modern.glb"},
		},
	},
	{
		ID: "chair", Name: "Chair",
		Subtypes: []FurnitureSubtype{
			{
				ID: "arm-chair", Name: "Arm Chair", Width: 3, Length: 3, Color: "#228B22",
				Models: []FurnitureModel{{ID: "arm-chair-fabric", Path: "/models/arm_chair_fabric.glb"}},
			},
			{
				ID: "computer-chair", Name: "Computer Chair", Width: 2, Length: 2, Color: "#333333",
				Models: []FurnitureModel{{ID: "computer-chair-mesh", Path: "/models/computer_chair_mesh.glb"}},
			},
			{
				ID: "dining-chair", Name: "Dining Chair", Width: 2, Length: 2, Color: "#8B4513",
				Models: []FurnitureModel{{ID: "dining-chair-oak", Path: "/models/dining_chair_oak.glb"}},
			},
		},
	},
	{
		ID: "table", Name: "Table",
		Subtypes: []FurnitureSubtype{
			{
				ID: "coffee-table", Name: "Coffee Table", Width: 4, Length: 2, Color: "#4682B4",
				Models: []FurnitureModel{{ID: "coffee-table-glass", Path: "/models/coffee_table_glass.glb"}},
			},
			{
				ID: "dining-table", Name: "Dining Table", Width: 10, Length: 10, Color: "#FFFFFF",
				Models: []FurnitureModel{{ID: "dining-table-round", Path: "/models/dining_table_round.glb"}},
			},
			{
				ID: "side-table", Name: "Side Table", Width: 2, Length: 2, Color: "#8B4513",
				Models: []FurnitureModel{{ID: "side-table-walnut", Path: "/models/side_table_walnut.glb"}},
			},
		},
	},
	{
		ID: "double-bed", Name: "Double Bed", Width: 8, Length: 6, Color: "#ffffff",
		Models: []FurnitureModel{{ID: "double-bed-frame", Path: "/models/double_bed_frame.glb"}},
	},
	{
		ID: "dresser", Name: "Dresser", Width: 3, Length: 2, Color: "#8B4513",
		Models: []FurnitureModel{{ID: "dresser-sixdrawer", Path: "/models/dresser_sixdrawer.glb"}},
	},
	{
		ID: "nightstand", Name: "Nightstand", Width: 2, Length: 2, Color: "#8B4513",
		Models: []FurnitureModel{{ID: "nightstand-classic", Path: "/models/nightstand_classic.glb"}},
	},
	{
		ID: "desk", Name: "Desk", Width: 6, Length: 3, Color: "#2F4F4F",
		Models: []FurnitureModel{{ID: "desk-writing", Path: "/models/desk_writing.glb"}},
	},
	{
		ID: "bookshelf", Name: "Bookshelf", Width: 2, Length: 1, Color: "#8B4513",
		Models: []FurnitureModel{{ID: "bookshelf-tall", Path: "/models/bookshelf_tall.glb"}},
	},
	{
		ID: "wardrobe", Name: "Wardrobe", Width: 4, Length: 2, Color: "#DEB887",
		Models: []FurnitureModel{{ID: "wardrobe-double", Path: "/models/wardrobe_double.glb"}},
	},
	{
		ID: "tv-stand", Name: "TV Stand", Width: 5, Length: 1.5, Color: "#2F4F4F",
		Models: []FurnitureModel{{ID: "tv-stand-low", Path: "/models/tv_stand_low.glb"}},
	},
}

// Entries returns the full furniture catalog.
func Entries() []FurnitureCatalogEntry {
	return furnitureCatalog
}

// FindEntry looks up a catalog entry by its own ID or by a subtype ID, the
// same way template items are resolved. The second return is the matched
// subtype, nil when the match is a plain entry.
func FindEntry(id string) (*FurnitureCatalogEntry, *FurnitureSubtype) {
	for i := range furnitureCatalog {
		entry := &furnitureCatalog[i]
		if entry.ID == id {
			return entry, nil
		}
		for j := range entry.Subtypes {
			if entry.Subtypes[j].ID == id {
				return entry, &entry.Subtypes[j]
			}
		}
	}
	return nil, nil
}

// ResolveModel picks the default 3D model for a furniture type: the first
// model of the matching entry or subtype. Unmatched types get the sentinel
// DefaultModelID with an empty path.
func ResolveModel(furnitureType string) FurnitureModel {
	entry, subtype := FindEntry(furnitureType)
	switch {
	case subtype != nil && len(subtype.Models) > 0:
		return subtype.Models[0]
	case entry != nil && len(entry.Models) > 0:
		return entry.Models[0]
	default:
		return FurnitureModel{ID: DefaultModelID, Path: ""}
	}
}
