package usecases

import (
	"context"

	"quartermaster/internal/application/system/dto"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/domain/system"
	"quartermaster/internal/shared/logger"
)

// ListSystemsResult contains the systems listing.
type ListSystemsResult struct {
	Systems []*dto.SystemDTO `json:"systems"`
	Total   int              `json:"total"`
}

// ListSystemsUseCase handles system listing with parts expanded.
type ListSystemsUseCase struct {
	systemRepo   system.Repository
	partRepo     part.Repository
	employeeRepo employee.Repository
	logger       logger.Interface
}

// NewListSystemsUseCase creates a new ListSystemsUseCase.
func NewListSystemsUseCase(
	systemRepo system.Repository,
	partRepo part.Repository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *ListSystemsUseCase {
	return &ListSystemsUseCase{
		systemRepo:   systemRepo,
		partRepo:     partRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Execute lists all systems, each with its claimed parts and assignee
// expanded.
func (uc *ListSystemsUseCase) Execute(ctx context.Context) (*ListSystemsResult, error) {
	systems, err := uc.systemRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list systems", "error", err)
		return nil, err
	}

	dtos := make([]*dto.SystemDTO, len(systems))
	for i, s := range systems {
		expanded, err := expandSystem(ctx, uc.partRepo, uc.employeeRepo, uc.logger, s)
		if err != nil {
			return nil, err
		}
		dtos[i] = expanded
	}

	return &ListSystemsResult{
		Systems: dtos,
		Total:   len(dtos),
	}, nil
}
