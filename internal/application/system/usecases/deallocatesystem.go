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

// DeallocateSystemCommand represents the input for retiring a system.
type DeallocateSystemCommand struct {
	SystemID string
}

// DeallocateSystemUseCase retires a system from service.
type DeallocateSystemUseCase struct {
	systemRepo   system.Repository
	partRepo     part.Repository
	employeeRepo employee.Repository
	logger       logger.Interface
}

// NewDeallocateSystemUseCase creates a new DeallocateSystemUseCase.
func NewDeallocateSystemUseCase(
	systemRepo system.Repository,
	partRepo part.Repository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *DeallocateSystemUseCase {
	return &DeallocateSystemUseCase{
		systemRepo:   systemRepo,
		partRepo:     partRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Execute marks the system deallocated and clears its assignee. Part
// claims are kept so the retired machine's composition stays on record.
func (uc *DeallocateSystemUseCase) Execute(ctx context.Context, cmd DeallocateSystemCommand) (*dto.SystemDTO, error) {
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

	sys.Deallocate()

	if err := uc.systemRepo.Update(ctx, sys); err != nil {
		uc.logger.Errorw("failed to persist deallocation", "sid", cmd.SystemID, "error", err)
		return nil, err
	}

	uc.logger.Infow("system deallocated successfully", "sid", cmd.SystemID)
	return expandSystem(ctx, uc.partRepo, uc.employeeRepo, uc.logger, sys)
}
