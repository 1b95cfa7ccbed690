package usecases

import (
	"context"
	"fmt"

	"quartermaster/internal/application/part/dto"
	"quartermaster/internal/domain/part"
	vo "quartermaster/internal/domain/part/valueobjects"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/id"
	"quartermaster/internal/shared/logger"
)

// CreatePartCommand represents the input for registering a part. Status
// defaults to active; registering a part straight to unusable requires a
// reason.
type CreatePartCommand struct {
	Type           string         `json:"type"`
	Barcode        string         `json:"barcode"`
	SerialNumber   string         `json:"serial_number"`
	Brand          string         `json:"brand"`
	Model          string         `json:"model"`
	Specs          map[string]any `json:"specs"`
	Status         string         `json:"status"`
	UnusableReason *string        `json:"unusable_reason"`
}

// CreatePartUseCase handles part registration.
type CreatePartUseCase struct {
	partRepo part.Repository
	logger   logger.Interface
}

// NewCreatePartUseCase creates a new CreatePartUseCase.
func NewCreatePartUseCase(partRepo part.Repository, logger logger.Interface) *CreatePartUseCase {
	return &CreatePartUseCase{
		partRepo: partRepo,
		logger:   logger,
	}
}

// Execute registers a new part in inventory. The part starts unclaimed
// regardless of input.
func (uc *CreatePartUseCase) Execute(ctx context.Context, cmd CreatePartCommand) (*dto.PartDTO, error) {
	uc.logger.Infow("executing create part use case", "type", cmd.Type, "barcode", cmd.Barcode)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create part command", "error", err)
		return nil, err
	}

	newPart, err := part.NewPart(
		vo.PartType(cmd.Type),
		cmd.Barcode,
		cmd.SerialNumber,
		cmd.Brand,
		cmd.Model,
		cmd.Specs,
		vo.PartStatus(cmd.Status),
		cmd.UnusableReason,
		id.NewPartID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create part entity", "error", err)
		return nil, fmt.Errorf("failed to create part: %w", err)
	}

	if err := uc.partRepo.Create(ctx, newPart); err != nil {
		uc.logger.Errorw("failed to persist part", "error", err)
		return nil, err
	}

	uc.logger.Infow("part created successfully", "id", newPart.ID(), "sid", newPart.SID())
	return dto.ToPartDTO(newPart), nil
}

func (uc *CreatePartUseCase) validateCommand(cmd CreatePartCommand) error {
	fields := make(map[string]string)

	if cmd.Type == "" {
		fields["type"] = "type is required"
	} else if !vo.PartType(cmd.Type).IsValid() {
		fields["type"] = fmt.Sprintf("type must be one of %v", vo.ValidPartTypes())
	}
	if cmd.Barcode == "" {
		fields["barcode"] = "barcode is required"
	}
	if cmd.SerialNumber == "" {
		fields["serial_number"] = "serial number is required"
	}
	if cmd.Brand == "" {
		fields["brand"] = "brand is required"
	}
	if cmd.Model == "" {
		fields["model"] = "model is required"
	}

	status := vo.PartStatus(cmd.Status)
	switch {
	case cmd.Status != "" && !status.IsValid():
		fields["status"] = fmt.Sprintf("status must be %s or %s", vo.PartStatusActive, vo.PartStatusUnusable)
	case cmd.UnusableReason != nil && status != vo.PartStatusUnusable:
		fields["unusable_reason"] = "unusable reason requires unusable status"
	case status == vo.PartStatusUnusable && cmd.UnusableReason == nil:
		fields["unusable_reason"] = "unusable status requires a reason"
	}

	if len(fields) > 0 {
		return errors.NewFieldValidationError(fields)
	}
	return nil
}
