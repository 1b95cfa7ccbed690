package usecases

import (
	"context"

	"quartermaster/internal/application/part/dto"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// RestorePartCommand represents the input for restoring a condemned part.
type RestorePartCommand struct {
	SID string
}

// RestorePartUseCase handles restoring an unusable part to active.
type RestorePartUseCase struct {
	partRepo part.Repository
	logger   logger.Interface
}

// NewRestorePartUseCase creates a new RestorePartUseCase.
func NewRestorePartUseCase(partRepo part.Repository, logger logger.Interface) *RestorePartUseCase {
	return &RestorePartUseCase{
		partRepo: partRepo,
		logger:   logger,
	}
}

// Execute returns a part to active status and clears its unusable reason.
// Restoring an already active part is a no-op.
func (uc *RestorePartUseCase) Execute(ctx context.Context, cmd RestorePartCommand) (*dto.PartDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("part id is required")
	}

	existing, err := uc.partRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get part", "sid", cmd.SID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("part not found")
	}

	existing.Restore()

	if err := uc.partRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to restore part", "sid", cmd.SID, "error", err)
		return nil, err
	}

	uc.logger.Infow("part restored", "sid", cmd.SID)
	return dto.ToPartDTO(existing), nil
}
