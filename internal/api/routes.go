package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/core"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/middleware"
)

// SetupRoutes wires every endpoint. Global middleware (logging, recovery,
// CORS) is applied to the router before this is called, in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
	authService core.AuthService,
	designService core.DesignService,
	editorService core.EditorService,
) {
	authHandler := NewAuthHandler(authService, logger)
	designHandler := NewDesignHandler(designService, editorService, logger)
	catalogHandler := NewCatalogHandler(editorService, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/profile/:uid", authMW.VerifyToken(), authHandler.Profile)
			authGroup.GET("/protected", authMW.VerifyToken(), authHandler.Protected)
		}

		// Catalog, textures and templates are static data; no token needed.
		apiGroup.GET("/catalog", catalogHandler.Catalog)
		apiGroup.GET("/catalog/textures", catalogHandler.Textures)
		apiGroup.GET("/templates", catalogHandler.Templates)

		designsGroup := apiGroup.Group("/designs", authMW.VerifyToken())
		{
			designsGroup.POST("", designHandler.Create)
			designsGroup.GET("", designHandler.List)
			designsGroup.GET("/:designId", designHandler.Get)
			designsGroup.PUT("/:designId", designHandler.Update)
			designsGroup.DELETE("/:designId", designHandler.Delete)
			designsGroup.POST("/:designId/viewer", designHandler.Viewer)

			editorGroup := designsGroup.Group("/editor")
			{
				editorGroup.POST("/template", catalogHandler.ApplyTemplate)
				editorGroup.POST("/furniture", catalogHandler.AddFurniture)
				editorGroup.POST("/move", catalogHandler.MoveFurniture)
				editorGroup.POST("/recolor", catalogHandler.RecolorFurniture)
				editorGroup.POST("/viewer", catalogHandler.Viewer)
			}
		}
	}
}
