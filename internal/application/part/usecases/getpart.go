package usecases

import (
	"context"

	"quartermaster/internal/application/part/dto"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// GetPartQuery represents the input for fetching a single part.
type GetPartQuery struct {
	SID string
}

// GetPartUseCase handles part retrieval.
type GetPartUseCase struct {
	partRepo part.Repository
	logger   logger.Interface
}

// NewGetPartUseCase creates a new GetPartUseCase.
func NewGetPartUseCase(partRepo part.Repository, logger logger.Interface) *GetPartUseCase {
	return &GetPartUseCase{
		partRepo: partRepo,
		logger:   logger,
	}
}

// Execute retrieves a part by its external identifier.
func (uc *GetPartUseCase) Execute(ctx context.Context, query GetPartQuery) (*dto.PartDTO, error) {
	if query.SID == "" {
		return nil, errors.NewValidationError("part id is required")
	}

	found, err := uc.partRepo.GetBySID(ctx, query.SID)
	if err != nil {
		uc.logger.Errorw("failed to get part", "sid", query.SID, "error", err)
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("part not found")
	}

	return dto.ToPartDTO(found), nil
}
