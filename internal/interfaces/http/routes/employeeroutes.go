package routes

import (
	"github.com/gin-gonic/gin"

	employeehandlers "quartermaster/internal/interfaces/http/handlers/employee"
)

// EmployeeRouteConfig holds dependencies for employee routes.
type EmployeeRouteConfig struct {
	EmployeeHandler *employeehandlers.EmployeeHandler
}

// SetupEmployeeRoutes configures employee routes.
func SetupEmployeeRoutes(engine *gin.Engine, cfg *EmployeeRouteConfig) {
	employees := engine.Group("/employee")
	{
		employees.POST("", cfg.EmployeeHandler.CreateEmployee)
		employees.GET("/allemployee", cfg.EmployeeHandler.ListEmployees)
		employees.GET("/:id", cfg.EmployeeHandler.GetEmployee)
		employees.PUT("/:id", cfg.EmployeeHandler.UpdateEmployee)
		employees.DELETE("/:id", cfg.EmployeeHandler.DeleteEmployee)
	}
}
