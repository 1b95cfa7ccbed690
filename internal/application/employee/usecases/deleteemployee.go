package usecases

import (
	"context"

	"quartermaster/internal/domain/employee"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// DeleteEmployeeCommand represents the input for deleting an employee.
type DeleteEmployeeCommand struct {
	SID string
}

// DeleteEmployeeUseCase handles employee deletion.
type DeleteEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

// NewDeleteEmployeeUseCase creates a new DeleteEmployeeUseCase.
func NewDeleteEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *DeleteEmployeeUseCase {
	return &DeleteEmployeeUseCase{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Execute removes an employee unconditionally. A system still assigned to
// the deleted employee keeps its reference; read paths expand it to null.
func (uc *DeleteEmployeeUseCase) Execute(ctx context.Context, cmd DeleteEmployeeCommand) error {
	if cmd.SID == "" {
		return errors.NewValidationError("employee id is required")
	}

	existing, err := uc.employeeRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get employee for deletion", "sid", cmd.SID, "error", err)
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("employee not found")
	}

	if err := uc.employeeRepo.Delete(ctx, existing.ID()); err != nil {
		uc.logger.Errorw("failed to delete employee", "sid", cmd.SID, "error", err)
		return err
	}

	uc.logger.Infow("employee deleted successfully", "sid", cmd.SID)
	return nil
}
