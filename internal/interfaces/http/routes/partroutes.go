package routes

import (
	"github.com/gin-gonic/gin"

	parthandlers "quartermaster/internal/interfaces/http/handlers/part"
)

// PartRouteConfig holds dependencies for part routes.
type PartRouteConfig struct {
	PartHandler *parthandlers.PartHandler
}

// SetupPartRoutes configures part inventory routes.
func SetupPartRoutes(engine *gin.Engine, cfg *PartRouteConfig) {
	parts := engine.Group("/part")
	{
		parts.POST("", cfg.PartHandler.CreatePart)
		parts.GET("", cfg.PartHandler.ListParts)
		parts.GET("/:id", cfg.PartHandler.GetPart)
		parts.PUT("/:id", cfg.PartHandler.UpdatePart)
		parts.DELETE("/:id", cfg.PartHandler.DeletePart)

		// Lifecycle transitions
		parts.PATCH("/:id/unusable", cfg.PartHandler.MarkUnusable)
		parts.PATCH("/:id/restore", cfg.PartHandler.Restore)
	}
}
