package usecases

import (
	"context"
	"fmt"

	"quartermaster/internal/application/part/dto"
	"quartermaster/internal/domain/part"
	vo "quartermaster/internal/domain/part/valueobjects"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// ListPartsQuery represents the input for listing parts.
type ListPartsQuery struct {
	Status string
	Type   string
}

// ListPartsResult contains the parts listing.
type ListPartsResult struct {
	Parts []*dto.PartDTO `json:"parts"`
	Total int            `json:"total"`
}

// ListPartsUseCase handles part listing.
type ListPartsUseCase struct {
	partRepo part.Repository
	logger   logger.Interface
}

// NewListPartsUseCase creates a new ListPartsUseCase.
func NewListPartsUseCase(partRepo part.Repository, logger logger.Interface) *ListPartsUseCase {
	return &ListPartsUseCase{
		partRepo: partRepo,
		logger:   logger,
	}
}

// Execute lists parts, optionally filtered by status and type. An empty
// inventory yields an empty list, not an error.
func (uc *ListPartsUseCase) Execute(ctx context.Context, query ListPartsQuery) (*ListPartsResult, error) {
	if query.Status != "" && !vo.PartStatus(query.Status).IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid status filter: %s", query.Status))
	}
	if query.Type != "" && !vo.PartType(query.Type).IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid type filter: %s", query.Type))
	}

	parts, err := uc.partRepo.List(ctx, part.ListFilter{
		Status: query.Status,
		Type:   query.Type,
	})
	if err != nil {
		uc.logger.Errorw("failed to list parts", "error", err)
		return nil, err
	}

	return &ListPartsResult{
		Parts: dto.ToPartDTOs(parts),
		Total: len(parts),
	}, nil
}
