package usecases

import (
	"context"

	"quartermaster/internal/application/employee/dto"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/domain/system"
	"quartermaster/internal/shared/logger"
)

// ListEmployeesResult contains the employee listing.
type ListEmployeesResult struct {
	Employees []*dto.EmployeeDTO `json:"employees"`
	Total     int                `json:"total"`
}

// ListEmployeesUseCase handles employee listing.
type ListEmployeesUseCase struct {
	employeeRepo employee.Repository
	systemRepo   system.Repository
	partRepo     part.Repository
	logger       logger.Interface
}

// NewListEmployeesUseCase creates a new ListEmployeesUseCase.
func NewListEmployeesUseCase(
	employeeRepo employee.Repository,
	systemRepo system.Repository,
	partRepo part.Repository,
	logger logger.Interface,
) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{
		employeeRepo: employeeRepo,
		systemRepo:   systemRepo,
		partRepo:     partRepo,
		logger:       logger,
	}
}

// Execute lists all employees with their allocated systems and parts
// expanded. Assignments come from a single systems scan; parts are loaded
// per assigned system.
func (uc *ListEmployeesUseCase) Execute(ctx context.Context) (*ListEmployeesResult, error) {
	employees, err := uc.employeeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list employees", "error", err)
		return nil, err
	}

	systems, err := uc.systemRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list systems for employee allocation", "error", err)
		return nil, err
	}

	systemByEmployee := make(map[uint]*system.System, len(systems))
	partsBySystem := make(map[uint][]*part.Part, len(systems))
	for _, s := range systems {
		if s.AssignedEmployeeID() == nil {
			continue
		}
		parts, err := uc.partRepo.FindBySystemID(ctx, s.ID())
		if err != nil {
			uc.logger.Errorw("failed to load system parts", "system_id", s.ID(), "error", err)
			return nil, err
		}
		systemByEmployee[*s.AssignedEmployeeID()] = s
		partsBySystem[s.ID()] = parts
	}

	dtos := make([]*dto.EmployeeDTO, len(employees))
	for i, e := range employees {
		if s, ok := systemByEmployee[e.ID()]; ok {
			dtos[i] = dto.ToEmployeeDTOWithSystem(e, s, partsBySystem[s.ID()])
		} else {
			dtos[i] = dto.ToEmployeeDTO(e)
		}
	}

	return &ListEmployeesResult{
		Employees: dtos,
		Total:     len(dtos),
	}, nil
}
