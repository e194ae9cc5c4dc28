package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/catalog"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/core"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

// CatalogHandler serves the static furniture catalog, floor textures and
// room templates, plus the stateless editor operations built on them.
type CatalogHandler struct {
	editorService core.EditorService
	logger        *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(es core.EditorService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{editorService: es, logger: logger}
}

// Catalog handles GET /api/catalog.
func (h *CatalogHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Entries())
}

// Textures handles GET /api/catalog/textures.
func (h *CatalogHandler) Textures(c *gin.Context) {
	if floorType := c.Query("floorType"); floorType != "" {
		c.JSON(http.StatusOK, catalog.TexturesFor(floorType))
		return
	}
	c.JSON(http.StatusOK, catalog.TextureOptions())
}

// Templates handles GET /api/templates.
func (h *CatalogHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Templates())
}

// ApplyTemplate handles POST /api/designs/editor/template.
func (h *CatalogHandler) ApplyTemplate(c *gin.Context) {
	var req models.ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	state, err := h.editorService.ApplyTemplate(req.TemplateID)
	if err != nil {
		if errors.Is(err, core.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Template not found"})
			return
		}
		h.logger.Error("Template application failed", zap.String("templateId", req.TemplateID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to apply template"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// AddFurniture handles POST /api/designs/editor/furniture.
func (h *CatalogHandler) AddFurniture(c *gin.Context) {
	var req models.AddFurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	instance, err := h.editorService.AddFurniture(req.ItemID)
	if err != nil {
		if errors.Is(err, core.ErrCatalogItemNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Catalog item not found"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cannot place this item", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, instance)
}

// MoveFurniture handles POST /api/designs/editor/move.
func (h *CatalogHandler) MoveFurniture(c *gin.Context) {
	var req models.MoveFurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	furniture, err := h.editorService.MoveFurniture(req.Furniture, req.ItemID, req.RoomX, req.RoomY)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cannot move item", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, furniture)
}

// RecolorFurniture handles POST /api/designs/editor/recolor.
func (h *CatalogHandler) RecolorFurniture(c *gin.Context) {
	var req struct {
		Furniture []models.FurnitureInstance `json:"furniture" binding:"required"`
		ItemID    string                     `json:"itemId" binding:"required"`
		Color     string                     `json:"color" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	furniture, err := h.editorService.RecolorFurniture(req.Furniture, req.ItemID, req.Color)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cannot recolor item", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, furniture)
}

// Viewer handles POST /api/designs/editor/viewer.
func (h *CatalogHandler) Viewer(c *gin.Context) {
	var req models.ViewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.editorService.Viewer(req))
}
