// Package system provides HTTP handlers for system allocation management.
package system

import (
	"quartermaster/internal/application/system/usecases"
	"quartermaster/internal/shared/logger"
)

// SystemHandler handles HTTP requests for systems.
type SystemHandler struct {
	createSystemUC     *usecases.CreateSystemUseCase
	getSystemUC        *usecases.GetSystemUseCase
	listSystemsUC      *usecases.ListSystemsUseCase
	assignSystemUC     *usecases.AssignSystemUseCase
	unassignSystemUC   *usecases.UnassignSystemUseCase
	deallocateSystemUC *usecases.DeallocateSystemUseCase
	dashboardStatsUC   *usecases.GetDashboardStatsUseCase
	logger             logger.Interface
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(
	createSystemUC *usecases.CreateSystemUseCase,
	getSystemUC *usecases.GetSystemUseCase,
	listSystemsUC *usecases.ListSystemsUseCase,
	assignSystemUC *usecases.AssignSystemUseCase,
	unassignSystemUC *usecases.UnassignSystemUseCase,
	deallocateSystemUC *usecases.DeallocateSystemUseCase,
	dashboardStatsUC *usecases.GetDashboardStatsUseCase,
) *SystemHandler {
	return &SystemHandler{
		createSystemUC:     createSystemUC,
		getSystemUC:        getSystemUC,
		listSystemsUC:      listSystemsUC,
		assignSystemUC:     assignSystemUC,
		unassignSystemUC:   unassignSystemUC,
		deallocateSystemUC: deallocateSystemUC,
		dashboardStatsUC:   dashboardStatsUC,
		logger:             logger.NewLogger(),
	}
}
