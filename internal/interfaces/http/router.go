// Package http wires repositories, use cases, handlers, and middleware into
// a gin engine.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	employeeUsecases "quartermaster/internal/application/employee/usecases"
	partUsecases "quartermaster/internal/application/part/usecases"
	systemUsecases "quartermaster/internal/application/system/usecases"
	"quartermaster/internal/infrastructure/cache"
	"quartermaster/internal/infrastructure/config"
	"quartermaster/internal/infrastructure/repository"
	employeeHandlers "quartermaster/internal/interfaces/http/handlers/employee"
	partHandlers "quartermaster/internal/interfaces/http/handlers/part"
	systemHandlers "quartermaster/internal/interfaces/http/handlers/system"
	"quartermaster/internal/interfaces/http/middleware"
	"quartermaster/internal/interfaces/http/routes"
	"quartermaster/internal/shared/db"
	"quartermaster/internal/shared/logger"
)

// Router holds the configured gin engine and its handlers.
type Router struct {
	engine          *gin.Engine
	partHandler     *partHandlers.PartHandler
	systemHandler   *systemHandlers.SystemHandler
	employeeHandler *employeeHandlers.EmployeeHandler
}

// NewRouter creates a new HTTP router with all dependencies wired. The redis
// client is optional; without it the dashboard stats are computed on every
// request.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories
	partRepo := repository.NewPartRepository(gormDB, log)
	systemRepo := repository.NewSystemRepository(gormDB, log)
	employeeRepo := repository.NewEmployeeRepository(gormDB, log)
	txManager := db.NewTransactionManager(gormDB)

	var statsCache systemUsecases.StatsCacheStore
	if redisClient != nil {
		ttl := time.Duration(cfg.Stats.CacheTTLSeconds) * time.Second
		statsCache = cache.NewStatsCache(redisClient, "quartermaster:stats", ttl)
	}

	// Part use cases
	createPartUC := partUsecases.NewCreatePartUseCase(partRepo, log)
	getPartUC := partUsecases.NewGetPartUseCase(partRepo, log)
	listPartsUC := partUsecases.NewListPartsUseCase(partRepo, log)
	updatePartUC := partUsecases.NewUpdatePartUseCase(partRepo, log)
	deletePartUC := partUsecases.NewDeletePartUseCase(partRepo, log)
	markUnusableUC := partUsecases.NewMarkPartUnusableUseCase(partRepo, log)
	restorePartUC := partUsecases.NewRestorePartUseCase(partRepo, log)

	// Employee use cases
	createEmployeeUC := employeeUsecases.NewCreateEmployeeUseCase(employeeRepo, log)
	getEmployeeUC := employeeUsecases.NewGetEmployeeUseCase(employeeRepo, systemRepo, partRepo, log)
	listEmployeesUC := employeeUsecases.NewListEmployeesUseCase(employeeRepo, systemRepo, partRepo, log)
	updateEmployeeUC := employeeUsecases.NewUpdateEmployeeUseCase(employeeRepo, log)
	deleteEmployeeUC := employeeUsecases.NewDeleteEmployeeUseCase(employeeRepo, log)

	// System use cases (allocation engine)
	createSystemUC := systemUsecases.NewCreateSystemUseCase(systemRepo, partRepo, employeeRepo, txManager, log)
	getSystemUC := systemUsecases.NewGetSystemUseCase(systemRepo, partRepo, employeeRepo, log)
	listSystemsUC := systemUsecases.NewListSystemsUseCase(systemRepo, partRepo, employeeRepo, log)
	assignSystemUC := systemUsecases.NewAssignSystemUseCase(systemRepo, partRepo, employeeRepo, log)
	unassignSystemUC := systemUsecases.NewUnassignSystemUseCase(systemRepo, partRepo, employeeRepo, log)
	deallocateSystemUC := systemUsecases.NewDeallocateSystemUseCase(systemRepo, partRepo, employeeRepo, log)
	dashboardStatsUC := systemUsecases.NewGetDashboardStatsUseCase(systemRepo, partRepo, employeeRepo, statsCache, log)

	// Handlers
	partHandler := partHandlers.NewPartHandler(
		createPartUC,
		getPartUC,
		listPartsUC,
		updatePartUC,
		deletePartUC,
		markUnusableUC,
		restorePartUC,
	)
	employeeHandler := employeeHandlers.NewEmployeeHandler(
		createEmployeeUC,
		getEmployeeUC,
		listEmployeesUC,
		updateEmployeeUC,
		deleteEmployeeUC,
	)
	systemHandler := systemHandlers.NewSystemHandler(
		createSystemUC,
		getSystemUC,
		listSystemsUC,
		assignSystemUC,
		unassignSystemUC,
		deallocateSystemUC,
		dashboardStatsUC,
	)

	routes.SetupPartRoutes(engine, &routes.PartRouteConfig{PartHandler: partHandler})
	routes.SetupEmployeeRoutes(engine, &routes.EmployeeRouteConfig{EmployeeHandler: employeeHandler})
	routes.SetupSystemRoutes(engine, &routes.SystemRouteConfig{SystemHandler: systemHandler})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{
		engine:          engine,
		partHandler:     partHandler,
		systemHandler:   systemHandler,
		employeeHandler: employeeHandler,
	}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
