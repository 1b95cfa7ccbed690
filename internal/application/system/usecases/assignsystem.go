package usecases

import (
	"context"

	"quartermaster/internal/application/system/dto"
	employeedto "quartermaster/internal/application/employee/dto"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/domain/system"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// AssignSystemCommand represents the input for assigning a system to an
// employee.
type AssignSystemCommand struct {
	SystemID   string `json:"system_id"`
	EmployeeID string `json:"employee_id"`
}

// AssignSystemUseCase binds a system to an employee.
type AssignSystemUseCase struct {
	systemRepo   system.Repository
	partRepo     part.Repository
	employeeRepo employee.Repository
	logger       logger.Interface
}

// NewAssignSystemUseCase creates a new AssignSystemUseCase.
func NewAssignSystemUseCase(
	systemRepo system.Repository,
	partRepo part.Repository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *AssignSystemUseCase {
	return &AssignSystemUseCase{
		systemRepo:   systemRepo,
		partRepo:     partRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Execute assigns the system to the employee. Both sides must be free:
// an employee holding a different system and a system held by a different
// employee are conflicts. Re-assigning the same pair is a no-op refresh.
// The unique index on the assignee column backstops the employee side
// against concurrent assigns.
func (uc *AssignSystemUseCase) Execute(ctx context.Context, cmd AssignSystemCommand) (*dto.AssignmentDTO, error) {
	uc.logger.Infow("executing assign system use case", "system_id", cmd.SystemID, "employee_id", cmd.EmployeeID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	sys, err := uc.systemRepo.GetBySID(ctx, cmd.SystemID)
	if err != nil {
		uc.logger.Errorw("failed to get system", "sid", cmd.SystemID, "error", err)
		return nil, err
	}
	if sys == nil {
		return nil, errors.NewNotFoundError("system not found")
	}

	assignee, err := uc.employeeRepo.GetBySID(ctx, cmd.EmployeeID)
	if err != nil {
		uc.logger.Errorw("failed to get employee", "sid", cmd.EmployeeID, "error", err)
		return nil, err
	}
	if assignee == nil {
		return nil, errors.NewNotFoundError("employee not found")
	}

	if sys.AssignedEmployeeID() != nil && *sys.AssignedEmployeeID() != assignee.ID() {
		return nil, errors.NewConflictError("system is already assigned to another employee")
	}

	held, err := uc.systemRepo.FindByAssignedEmployee(ctx, assignee.ID())
	if err != nil {
		uc.logger.Errorw("failed to check employee allocation", "sid", cmd.EmployeeID, "error", err)
		return nil, err
	}
	if held != nil && held.ID() != sys.ID() {
		return nil, errors.NewConflictError("employee already has an allocated system")
	}

	if err := sys.Assign(assignee.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.systemRepo.Update(ctx, sys); err != nil {
		uc.logger.Errorw("failed to persist assignment", "system_id", cmd.SystemID, "error", err)
		return nil, err
	}

	parts, err := uc.partRepo.FindBySystemID(ctx, sys.ID())
	if err != nil {
		uc.logger.Errorw("failed to load system parts", "system_id", sys.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("system assigned successfully", "system_id", cmd.SystemID, "employee_id", cmd.EmployeeID)

	return &dto.AssignmentDTO{
		Employee: employeedto.ToEmployeeDTOWithSystem(assignee, sys, parts),
		System:   dto.ToSystemDTO(sys, parts, assignee),
	}, nil
}

func (uc *AssignSystemUseCase) validateCommand(cmd AssignSystemCommand) error {
	fields := make(map[string]string)

	if cmd.SystemID == "" {
		fields["system_id"] = "system id is required"
	}
	if cmd.EmployeeID == "" {
		fields["employee_id"] = "employee id is required"
	}

	if len(fields) > 0 {
		return errors.NewFieldValidationError(fields)
	}
	return nil
}
