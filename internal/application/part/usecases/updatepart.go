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

// UpdatePartCommand represents the input for updating part attributes.
// Nil fields are left unchanged.
type UpdatePartCommand struct {
	SID          string
	Type         *string        `json:"type"`
	Barcode      *string        `json:"barcode"`
	SerialNumber *string        `json:"serial_number"`
	Brand        *string        `json:"brand"`
	Model        *string        `json:"model"`
	Specs        map[string]any `json:"specs"`
}

// UpdatePartUseCase handles part attribute updates.
type UpdatePartUseCase struct {
	partRepo part.Repository
	logger   logger.Interface
}

// NewUpdatePartUseCase creates a new UpdatePartUseCase.
func NewUpdatePartUseCase(partRepo part.Repository, logger logger.Interface) *UpdatePartUseCase {
	return &UpdatePartUseCase{
		partRepo: partRepo,
		logger:   logger,
	}
}

// Execute applies a partial update to a part's descriptive attributes.
// Claim state and status are not touched here.
func (uc *UpdatePartUseCase) Execute(ctx context.Context, cmd UpdatePartCommand) (*dto.PartDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("part id is required")
	}
	if cmd.Type != nil && !vo.PartType(*cmd.Type).IsValid() {
		return nil, errors.NewFieldValidationError(map[string]string{
			"type": fmt.Sprintf("type must be one of %v", vo.ValidPartTypes()),
		})
	}

	existing, err := uc.partRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get part for update", "sid", cmd.SID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("part not found")
	}

	var partType *vo.PartType
	if cmd.Type != nil {
		t := vo.PartType(*cmd.Type)
		partType = &t
	}

	if err := existing.UpdateAttributes(partType, cmd.Barcode, cmd.SerialNumber, cmd.Brand, cmd.Model, cmd.Specs); err != nil {
		uc.logger.Warnw("invalid part update", "sid", cmd.SID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.partRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update part", "sid", cmd.SID, "error", err)
		return nil, err
	}

	uc.logger.Infow("part updated successfully", "sid", cmd.SID)
	return dto.ToPartDTO(existing), nil
}
