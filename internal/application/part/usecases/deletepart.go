package usecases

import (
	"context"

	"quartermaster/internal/domain/part"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// DeletePartCommand represents the input for deleting a part.
type DeletePartCommand struct {
	SID string
}

// DeletePartUseCase handles part deletion.
type DeletePartUseCase struct {
	partRepo part.Repository
	logger   logger.Interface
}

// NewDeletePartUseCase creates a new DeletePartUseCase.
func NewDeletePartUseCase(partRepo part.Repository, logger logger.Interface) *DeletePartUseCase {
	return &DeletePartUseCase{
		partRepo: partRepo,
		logger:   logger,
	}
}

// Execute removes a part from inventory. Deletion is unconditional; a
// claimed part simply disappears from its system's membership since
// membership is derived from the claim column.
func (uc *DeletePartUseCase) Execute(ctx context.Context, cmd DeletePartCommand) error {
	if cmd.SID == "" {
		return errors.NewValidationError("part id is required")
	}

	existing, err := uc.partRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get part for deletion", "sid", cmd.SID, "error", err)
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("part not found")
	}

	if err := uc.partRepo.Delete(ctx, existing.ID()); err != nil {
		uc.logger.Errorw("failed to delete part", "sid", cmd.SID, "error", err)
		return err
	}

	uc.logger.Infow("part deleted successfully", "sid", cmd.SID)
	return nil
}
