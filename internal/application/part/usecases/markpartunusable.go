package usecases

import (
	"context"

	"quartermaster/internal/application/part/dto"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// MarkPartUnusableCommand represents the input for condemning a part.
type MarkPartUnusableCommand struct {
	SID    string
	Reason string `json:"reason"`
}

// MarkPartUnusableUseCase handles marking a part as unusable.
type MarkPartUnusableUseCase struct {
	partRepo part.Repository
	logger   logger.Interface
}

// NewMarkPartUnusableUseCase creates a new MarkPartUnusableUseCase.
func NewMarkPartUnusableUseCase(partRepo part.Repository, logger logger.Interface) *MarkPartUnusableUseCase {
	return &MarkPartUnusableUseCase{
		partRepo: partRepo,
		logger:   logger,
	}
}

// Execute marks a part unusable with a mandatory reason. A claimed part
// keeps its claim; the status flags it for replacement without breaking
// the system's membership.
func (uc *MarkPartUnusableUseCase) Execute(ctx context.Context, cmd MarkPartUnusableCommand) (*dto.PartDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("part id is required")
	}
	if cmd.Reason == "" {
		return nil, errors.NewFieldValidationError(map[string]string{
			"reason": "reason is required",
		})
	}

	existing, err := uc.partRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get part", "sid", cmd.SID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("part not found")
	}

	if err := existing.MarkUnusable(cmd.Reason); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.partRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update part status", "sid", cmd.SID, "error", err)
		return nil, err
	}

	uc.logger.Infow("part marked unusable", "sid", cmd.SID, "reason", cmd.Reason)
	return dto.ToPartDTO(existing), nil
}
