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

// AuthHandler handles signup, login and profile endpoints.
type AuthHandler struct {
	authService core.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as core.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: as, logger: logger}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	uid, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email and password are required"})
			return
		}
		// Provider failures such as a duplicate email surface their message
		// so the frontend can show it.
		h.logger.Error("Signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create user", Details: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{Message: "User created successfully", UID: uid})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, core.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "idToken is required"})
			return
		}
		if errors.Is(err, core.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired ID token"})
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Profile handles GET /api/auth/profile/:uid.
func (h *AuthHandler) Profile(c *gin.Context) {
	uid := c.Param("uid")

	profile, err := h.authService.Profile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User profile not found"})
			return
		}
		h.logger.Error("Profile fetch failed", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Protected handles GET /api/auth/protected, a token smoke test for clients.
func (h *AuthHandler) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "You are authenticated",
		"uid":     c.GetString(middleware.ContextUserID),
	})
}
