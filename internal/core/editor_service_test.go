package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

func TestApplyTemplateLivingRoom(t *testing.T) {
	svc := NewEditorService()

	state, err := svc.ApplyTemplate("living-room")
	require.NoError(t, err)

	assert.Equal(t, "living-room", state.TemplateID)
	assert.Equal(t, models.Dimensions{Width: 50, Length: 50}, state.Dimensions)
	assert.Equal(t, "#f5f5f5", state.WallColor)
	assert.Equal(t, "tile", state.FloorType)
	require.Len(t, state.Furniture, 3)

	// Authored feet are scaled by the editor scale: x:4 -> 40.
	sofa := state.Furniture[0]
	assert.Equal(t, "sofa", sofa.Type)
	assert.Equal(t, 40.0, sofa.X)
	assert.Equal(t, 40.0, sofa.Y)
	assert.Equal(t, 80.0, sofa.Width)
	assert.Equal(t, 30.0, sofa.Length)
	assert.Equal(t, "#8B4513", sofa.Color)
	assert.Equal(t, "sofa-classic", sofa.ModelID)

	coffee := state.Furniture[1]
	assert.Equal(t, "coffee-table", coffee.Type)
	assert.Equal(t, 80.0, coffee.X)
	assert.Equal(t, "coffee-table-glass", coffee.ModelID)
}

func TestApplyTemplateInstanceIDsUnique(t *testing.T) {
	svc := NewEditorService()

	state, err := svc.ApplyTemplate("bedroom")
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, f := range state.Furniture {
		assert.True(t, strings.HasPrefix(f.ID, f.Type+"-"))
		assert.False(t, seen[f.ID], "duplicate instance ID %s", f.ID)
		seen[f.ID] = true
	}
}

func TestApplyTemplateUnknown(t *testing.T) {
	svc := NewEditorService()
	_, err := svc.ApplyTemplate("garage")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestAddFurniturePlainEntry(t *testing.T) {
	svc := NewEditorService()

	item, err := svc.AddFurniture("sofa")
	require.NoError(t, err)

	assert.Equal(t, 50.0, item.X)
	assert.Equal(t, 50.0, item.Y)
	assert.Equal(t, 80.0, item.Width) // 8ft * 10
	assert.Equal(t, 30.0, item.Length)
	assert.Equal(t, "sofa-classic", item.ModelID)
	assert.NotEmpty(t, item.ModelPath)
}

func TestAddFurnitureSubtype(t *testing.T) {
	svc := NewEditorService()

	item, err := svc.AddFurniture("computer-chair")
	require.NoError(t, err)

	assert.Equal(t, "computer-chair", item.Type)
	assert.Equal(t, "Computer Chair", item.Name)
	assert.Equal(t, 20.0, item.Width)
	assert.Equal(t, "#333333", item.Color)
}

func TestAddFurnitureGroupingEntryRejected(t *testing.T) {
	svc := NewEditorService()
	_, err := svc.AddFurniture("chair")
	assert.ErrorIs(t, err, ErrCatalogItemNotFound)
}

func TestAddFurnitureUnknown(t *testing.T) {
	svc := NewEditorService()
	_, err := svc.AddFurniture("hot-tub")
	assert.ErrorIs(t, err, ErrCatalogItemNotFound)
}

func TestMoveFurniture(t *testing.T) {
	svc := NewEditorService()
	furniture := []models.FurnitureInstance{
		{ID: "sofa-1", Type: "sofa", X: 40, Y: 40},
		{ID: "desk-1", Type: "desk", X: 20, Y: 20},
	}

	// A drop at room pixel (100, 250) stores editor pixels (40, 100):
	// divided by RoomScale/EditorScale = 2.5.
	out, err := svc.MoveFurniture(furniture, "sofa-1", 100, 250)
	require.NoError(t, err)

	assert.Equal(t, 40.0, out[0].X)
	assert.Equal(t, 100.0, out[0].Y)
	// Other items are untouched.
	assert.Equal(t, 20.0, out[1].X)
	// Input slice is not mutated.
	assert.Equal(t, 40.0, furniture[0].Y)
}

func TestMoveFurnitureUnknownItem(t *testing.T) {
	svc := NewEditorService()
	_, err := svc.MoveFurniture(nil, "ghost", 0, 0)
	assert.ErrorIs(t, err, ErrCatalogItemNotFound)
}

func TestRecolorFurniture(t *testing.T) {
	svc := NewEditorService()
	furniture := []models.FurnitureInstance{{ID: "sofa-1", Color: "#8B4513"}}

	out, err := svc.RecolorFurniture(furniture, "sofa-1", "#000000")
	require.NoError(t, err)
	assert.Equal(t, "#000000", out[0].Color)
	assert.Equal(t, "#8B4513", furniture[0].Color)

	_, err = svc.RecolorFurniture(furniture, "ghost", "#fff")
	assert.ErrorIs(t, err, ErrCatalogItemNotFound)
}

func TestViewerNormalizesToFeet(t *testing.T) {
	svc := NewEditorService()

	payload := svc.Viewer(models.ViewerRequest{
		Dimensions: models.Dimensions{Width: 50, Length: 50},
		WallColor:  "#f5f5f5",
		Furniture: []models.FurnitureInstance{
			{ID: "sofa-1", X: 40, Y: 40, Width: 80, Length: 30, Color: "#8B4513"},
		},
	})

	require.Len(t, payload.Furniture, 1)
	f := payload.Furniture[0]
	assert.InDelta(t, 4.0, f.X, 1e-9)
	assert.InDelta(t, 4.0, f.Y, 1e-9)
	assert.InDelta(t, 8.0, f.Width, 1e-9)
	assert.InDelta(t, 3.0, f.Length, 1e-9)
	assert.Equal(t, "#f5f5f5", payload.Room.WallColor)
}

func TestViewerZeroDimensions(t *testing.T) {
	svc := NewEditorService()

	payload := svc.Viewer(models.ViewerRequest{
		Furniture: []models.FurnitureInstance{{ID: "x", X: 40, Y: 40, Width: 80, Length: 30}},
	})

	// Zero room dimensions must not yield NaN or Inf.
	f := payload.Furniture[0]
	assert.InDelta(t, 4.0, f.X, 1e-9)
	assert.InDelta(t, 4.0, f.Y, 1e-9)
}
