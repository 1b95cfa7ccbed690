// Package part provides HTTP handlers for part inventory management.
package part

import (
	"quartermaster/internal/application/part/usecases"
	"quartermaster/internal/shared/logger"
)

// PartHandler handles HTTP requests for parts.
type PartHandler struct {
	createPartUC   *usecases.CreatePartUseCase
	getPartUC      *usecases.GetPartUseCase
	listPartsUC    *usecases.ListPartsUseCase
	updatePartUC   *usecases.UpdatePartUseCase
	deletePartUC   *usecases.DeletePartUseCase
	markUnusableUC *usecases.MarkPartUnusableUseCase
	restorePartUC  *usecases.RestorePartUseCase
	logger         logger.Interface
}

// NewPartHandler creates a new PartHandler.
func NewPartHandler(
	createPartUC *usecases.CreatePartUseCase,
	getPartUC *usecases.GetPartUseCase,
	listPartsUC *usecases.ListPartsUseCase,
	updatePartUC *usecases.UpdatePartUseCase,
	deletePartUC *usecases.DeletePartUseCase,
	markUnusableUC *usecases.MarkPartUnusableUseCase,
	restorePartUC *usecases.RestorePartUseCase,
) *PartHandler {
	return &PartHandler{
		createPartUC:   createPartUC,
		getPartUC:      getPartUC,
		listPartsUC:    listPartsUC,
		updatePartUC:   updatePartUC,
		deletePartUC:   deletePartUC,
		markUnusableUC: markUnusableUC,
		restorePartUC:  restorePartUC,
		logger:         logger.NewLogger(),
	}
}
