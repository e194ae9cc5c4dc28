package core

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/catalog"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/units"
)

// Default editor-pixel position for furniture added from the catalog.
const (
	defaultPlacementX = 50.0
	defaultPlacementY = 50.0
)

type editorService struct{}

// NewEditorService creates the stateless EditorService.
func NewEditorService() EditorService {
	return editorService{}
}

// ApplyTemplate expands a room template into editor state: authored
// coordinates and sizes are scaled to editor pixels, each item gets a fresh
// instance ID and its default 3D model from the catalog.
func (editorService) ApplyTemplate(templateID string) (*models.EditorState, error) {
	tpl := catalog.FindTemplate(templateID)
	if tpl == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrTemplateNotFound, templateID)
	}

	furniture := make([]models.FurnitureInstance, 0, len(tpl.DefaultFurniture))
	for _, item := range tpl.DefaultFurniture {
		model := catalog.ResolveModel(item.Type)
		furniture = append(furniture, models.FurnitureInstance{
			ID:        newInstanceID(item.Type),
			Type:      item.Type,
			Name:      item.Name,
			X:         units.FeetToEditor(item.X),
			Y:         units.FeetToEditor(item.Y),
			Width:     units.FeetToEditor(item.Width),
			Length:    units.FeetToEditor(item.Length),
			Color:     item.Color,
			ModelID:   model.ID,
			ModelPath: model.Path,
		})
	}

	return &models.EditorState{
		TemplateID:   tpl.ID,
		Dimensions:   models.Dimensions{Width: tpl.Dimensions.Width, Length: tpl.Dimensions.Length},
		WallColor:    tpl.SuggestedWallColor,
		FloorColor:   tpl.SuggestedFloorColor,
		FloorType:    tpl.SuggestedFloorType,
		FloorTexture: tpl.SuggestedTexture,
		Furniture:    furniture,
	}, nil
}

// AddFurniture places a catalog item (or subtype) at the default editor
// position with its authored size scaled to editor pixels.
func (editorService) AddFurniture(itemID string) (*models.FurnitureInstance, error) {
	entry, subtype := catalog.FindEntry(itemID)
	if entry == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrCatalogItemNotFound, itemID)
	}

	var (
		name          string
		width, length float64
		color         string
		models3D      []catalog.FurnitureModel
	)
	switch {
	case subtype != nil:
		name, width, length, color, models3D = subtype.Name, subtype.Width, subtype.Length, subtype.Color, subtype.Models
	case len(entry.Subtypes) > 0:
		// The entry is only a grouping; a concrete subtype must be chosen.
		return nil, fmt.Errorf("%w: '%s' requires a subtype", ErrCatalogItemNotFound, itemID)
	default:
		name, width, length, color, models3D = entry.Name, entry.Width, entry.Length, entry.Color, entry.Models
	}

	instance := &models.FurnitureInstance{
		ID:     newInstanceID(itemID),
		Type:   itemID,
		Name:   name,
		X:      defaultPlacementX,
		Y:      defaultPlacementY,
		Width:  units.FeetToEditor(width),
		Length: units.FeetToEditor(length),
		Color:  color,
	}
	if len(models3D) > 0 {
		instance.ModelID = models3D[0].ID
		instance.ModelPath = models3D[0].Path
	} else {
		instance.ModelID = catalog.DefaultModelID
	}
	return instance, nil
}

// MoveFurniture stores a drag: the dropped room-pixel position is converted
// back to the editor-pixel unit the instance is persisted in.
func (editorService) MoveFurniture(furniture []models.FurnitureInstance, itemID string, roomX, roomY float64) ([]models.FurnitureInstance, error) {
	moved := false
	out := make([]models.FurnitureInstance, len(furniture))
	for i, f := range furniture {
		if f.ID == itemID {
			f.X = units.RoomToEditor(roomX)
			f.Y = units.RoomToEditor(roomY)
			moved = true
		}
		out[i] = f
	}
	if !moved {
		return nil, fmt.Errorf("%w: no placed item '%s'", ErrCatalogItemNotFound, itemID)
	}
	return out, nil
}

// RecolorFurniture updates one placed item's color.
func (editorService) RecolorFurniture(furniture []models.FurnitureInstance, itemID, color string) ([]models.FurnitureInstance, error) {
	found := false
	out := make([]models.FurnitureInstance, len(furniture))
	for i, f := range furniture {
		if f.ID == itemID {
			f.Color = color
			found = true
		}
		out[i] = f
	}
	if !found {
		return nil, fmt.Errorf("%w: no placed item '%s'", ErrCatalogItemNotFound, itemID)
	}
	return out, nil
}

// Viewer normalizes editor state back to real-world feet for the 3D view.
func (editorService) Viewer(req models.ViewerRequest) *models.ViewerPayload {
	furniture := make([]models.ViewerFurniture, 0, len(req.Furniture))
	for _, f := range req.Furniture {
		furniture = append(furniture, models.ViewerFurniture{
			ID:        f.ID,
			Type:      f.Type,
			Name:      f.Name,
			X:         units.ViewerPosition(f.X, req.Dimensions.Width),
			Y:         units.ViewerPosition(f.Y, req.Dimensions.Length),
			Width:     units.ViewerSize(f.Width),
			Length:    units.ViewerSize(f.Length),
			Color:     f.Color,
			ModelID:   f.ModelID,
			ModelPath: f.ModelPath,
		})
	}

	return &models.ViewerPayload{
		Room: models.ViewerRoom{
			Dimensions:   req.Dimensions,
			WallColor:    req.WallColor,
			FloorColor:   req.FloorColor,
			FloorType:    req.FloorType,
			FloorTexture: req.FloorTexture,
		},
		Furniture: furniture,
	}
}

// newInstanceID builds a furniture instance ID. The type prefix keeps IDs
// readable; the UUID suffix keeps items placed in the same batch unique.
func newInstanceID(furnitureType string) string {
	return furnitureType + "-" + uuid.NewString()
}
