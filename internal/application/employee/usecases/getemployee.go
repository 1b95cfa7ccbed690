package usecases

import (
	"context"

	"quartermaster/internal/application/employee/dto"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/domain/system"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// GetEmployeeQuery represents the input for fetching a single employee.
type GetEmployeeQuery struct {
	SID string
}

// GetEmployeeUseCase handles employee retrieval.
type GetEmployeeUseCase struct {
	employeeRepo employee.Repository
	systemRepo   system.Repository
	partRepo     part.Repository
	logger       logger.Interface
}

// NewGetEmployeeUseCase creates a new GetEmployeeUseCase.
func NewGetEmployeeUseCase(
	employeeRepo employee.Repository,
	systemRepo system.Repository,
	partRepo part.Repository,
	logger logger.Interface,
) *GetEmployeeUseCase {
	return &GetEmployeeUseCase{
		employeeRepo: employeeRepo,
		systemRepo:   systemRepo,
		partRepo:     partRepo,
		logger:       logger,
	}
}

// Execute retrieves an employee with their allocated system and that
// system's parts expanded.
func (uc *GetEmployeeUseCase) Execute(ctx context.Context, query GetEmployeeQuery) (*dto.EmployeeDTO, error) {
	if query.SID == "" {
		return nil, errors.NewValidationError("employee id is required")
	}

	found, err := uc.employeeRepo.GetBySID(ctx, query.SID)
	if err != nil {
		uc.logger.Errorw("failed to get employee", "sid", query.SID, "error", err)
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("employee not found")
	}

	allocated, err := uc.systemRepo.FindByAssignedEmployee(ctx, found.ID())
	if err != nil {
		uc.logger.Errorw("failed to resolve allocated system", "sid", query.SID, "error", err)
		return nil, err
	}
	if allocated == nil {
		return dto.ToEmployeeDTO(found), nil
	}

	parts, err := uc.partRepo.FindBySystemID(ctx, allocated.ID())
	if err != nil {
		uc.logger.Errorw("failed to load allocated system parts", "system_id", allocated.ID(), "error", err)
		return nil, err
	}

	return dto.ToEmployeeDTOWithSystem(found, allocated, parts), nil
}
