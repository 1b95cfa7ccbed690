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

// GetSystemQuery represents the input for fetching a single system.
type GetSystemQuery struct {
	SID string
}

// GetSystemUseCase handles system retrieval with parts expanded.
type GetSystemUseCase struct {
	systemRepo   system.Repository
	partRepo     part.Repository
	employeeRepo employee.Repository
	logger       logger.Interface
}

// NewGetSystemUseCase creates a new GetSystemUseCase.
func NewGetSystemUseCase(
	systemRepo system.Repository,
	partRepo part.Repository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *GetSystemUseCase {
	return &GetSystemUseCase{
		systemRepo:   systemRepo,
		partRepo:     partRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Execute retrieves a system with its claimed parts and assignee expanded.
func (uc *GetSystemUseCase) Execute(ctx context.Context, query GetSystemQuery) (*dto.SystemDTO, error) {
	if query.SID == "" {
		return nil, errors.NewValidationError("system id is required")
	}

	found, err := uc.systemRepo.GetBySID(ctx, query.SID)
	if err != nil {
		uc.logger.Errorw("failed to get system", "sid", query.SID, "error", err)
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("system not found")
	}

	return expandSystem(ctx, uc.partRepo, uc.employeeRepo, uc.logger, found)
}

// expandSystem hydrates a system DTO with its claimed parts and assignee.
// A dangling assignee reference (employee deleted after assignment) expands
// to a null employee rather than failing the read.
func expandSystem(
	ctx context.Context,
	partRepo part.Repository,
	employeeRepo employee.Repository,
	log logger.Interface,
	s *system.System,
) (*dto.SystemDTO, error) {
	parts, err := partRepo.FindBySystemID(ctx, s.ID())
	if err != nil {
		log.Errorw("failed to load system parts", "system_id", s.ID(), "error", err)
		return nil, err
	}

	var assignee *employee.Employee
	if s.AssignedEmployeeID() != nil {
		assignee, err = employeeRepo.GetByID(ctx, *s.AssignedEmployeeID())
		if err != nil {
			log.Errorw("failed to load system assignee", "system_id", s.ID(), "error", err)
			return nil, err
		}
	}

	return dto.ToSystemDTO(s, parts, assignee), nil
}
