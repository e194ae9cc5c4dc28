package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/core"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/middleware"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

// DesignHandler handles the design CRUD endpoints and the viewer handoff
// for saved designs.
type DesignHandler struct {
	designService core.DesignService
	editorService core.EditorService
	logger        *zap.Logger
}

// NewDesignHandler creates a new DesignHandler.
func NewDesignHandler(ds core.DesignService, es core.EditorService, logger *zap.Logger) *DesignHandler {
	return &DesignHandler{designService: ds, editorService: es, logger: logger}
}

// mapDesignErrorToStatus maps DesignService errors to HTTP responses.
func (h *DesignHandler) mapDesignErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid design payload", Details: err.Error()})
	case errors.Is(err, core.ErrDesignNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Design not found"})
	case errors.Is(err, core.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have access to this design"})
	default:
		h.logger.Error("Design operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred"})
	}
}

// Create handles POST /api/designs.
func (h *DesignHandler) Create(c *gin.Context) {
	var req models.SaveDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	design, err := h.designService.Create(c.Request.Context(),
		c.GetString(middleware.ContextUserID), c.GetString(middleware.ContextUserEmail), req)
	if err != nil {
		h.mapDesignErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateDesignResponse{ID: design.ID, Message: "Design saved successfully"})
}

// List handles GET /api/designs.
func (h *DesignHandler) List(c *gin.Context) {
	designs, err := h.designService.List(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.mapDesignErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, designs)
}

// Get handles GET /api/designs/:designId.
func (h *DesignHandler) Get(c *gin.Context) {
	design, err := h.designService.Get(c.Request.Context(),
		c.GetString(middleware.ContextUserID), c.Param("designId"))
	if err != nil {
		h.mapDesignErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, design)
}

// Update handles PUT /api/designs/:designId.
func (h *DesignHandler) Update(c *gin.Context) {
	var req models.SaveDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	design, err := h.designService.Update(c.Request.Context(),
		c.GetString(middleware.ContextUserID), c.Param("designId"), req)
	if err != nil {
		h.mapDesignErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, design)
}

// Viewer handles POST /api/designs/:designId/viewer, converting a saved
// design into 3D viewer coordinates.
func (h *DesignHandler) Viewer(c *gin.Context) {
	design, err := h.designService.Get(c.Request.Context(),
		c.GetString(middleware.ContextUserID), c.Param("designId"))
	if err != nil {
		h.mapDesignErrorToStatus(c, err)
		return
	}

	payload := h.editorService.Viewer(models.ViewerRequest{
		Dimensions:   design.Dimensions,
		WallColor:    design.WallColor,
		FloorColor:   design.FloorColor,
		FloorType:    design.FloorType,
		FloorTexture: design.FloorTexture,
		Furniture:    design.Furniture,
	})
	c.JSON(http.StatusOK, payload)
}

// Delete handles DELETE /api/designs/:designId.
func (h *DesignHandler) Delete(c *gin.Context) {
	err := h.designService.Delete(c.Request.Context(),
		c.GetString(middleware.ContextUserID), c.Param("designId"))
	if err != nil {
		h.mapDesignErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Design deleted successfully"})
}
