package routes

import (
	"github.com/gin-gonic/gin"

	systemhandlers "quartermaster/internal/interfaces/http/handlers/system"
)

// SystemRouteConfig holds dependencies for system routes.
type SystemRouteConfig struct {
	SystemHandler *systemhandlers.SystemHandler
}

// SetupSystemRoutes configures system allocation routes.
func SetupSystemRoutes(engine *gin.Engine, cfg *SystemRouteConfig) {
	systems := engine.Group("/system")
	{
		systems.POST("", cfg.SystemHandler.CreateSystem)
		systems.GET("/allsys", cfg.SystemHandler.ListSystems)
		systems.GET("/stats", cfg.SystemHandler.GetDashboardStats)
		systems.GET("/:id", cfg.SystemHandler.GetSystem)

		// Allocation engine
		systems.POST("/assign", cfg.SystemHandler.AssignSystem)
		systems.PATCH("/unassign/:systemId", cfg.SystemHandler.UnassignSystem)
		systems.PATCH("/deallocate/:systemId", cfg.SystemHandler.DeallocateSystem)
	}
}
