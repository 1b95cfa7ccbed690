package usecases

import (
	"context"

	"quartermaster/internal/application/system/dto"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/domain/system"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// UnassignSystemCommand represents the input for unassigning a system.
type UnassignSystemCommand struct {
	SystemID string
}

// UnassignSystemUseCase releases a system from its employee.
type UnassignSystemUseCase struct {
	systemRepo   system.Repository
	partRepo     part.Repository
	employeeRepo employee.Repository
	logger       logger.Interface
}

// NewUnassignSystemUseCase creates a new UnassignSystemUseCase.
func NewUnassignSystemUseCase(
	systemRepo system.Repository,
	partRepo part.Repository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *UnassignSystemUseCase {
	return &UnassignSystemUseCase{
		systemRepo:   systemRepo,
		partRepo:     partRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Execute clears the system's assignee and returns it to unassigned.
// Part claims are untouched; the built machine stays intact for the next
// assignee. Unassigning an unassigned system is idempotent.
func (uc *UnassignSystemUseCase) Execute(ctx context.Context, cmd UnassignSystemCommand) (*dto.SystemDTO, error) {
	if cmd.SystemID == "" {
		return nil, errors.NewValidationError("system id is required")
	}

	sys, err := uc.systemRepo.GetBySID(ctx, cmd.SystemID)
	if err != nil {
		uc.logger.Errorw("failed to get system", "sid", cmd.SystemID, "error", err)
		return nil, err
	}
	if sys == nil {
		return nil, errors.NewNotFoundError("system not found")
	}

	sys.Unassign()

	if err := uc.systemRepo.Update(ctx, sys); err != nil {
		uc.logger.Errorw("failed to persist unassignment", "sid", cmd.SystemID, "error", err)
		return nil, err
	}

	uc.logger.Infow("system unassigned successfully", "sid", cmd.SystemID)
	return expandSystem(ctx, uc.partRepo, uc.employeeRepo, uc.logger, sys)
}
