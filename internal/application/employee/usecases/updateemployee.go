package usecases

import (
	"context"

	"quartermaster/internal/application/employee/dto"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// UpdateEmployeeCommand represents the input for updating an employee.
// Nil fields are left unchanged.
type UpdateEmployeeCommand struct {
	SID         string
	Name        *string `json:"name"`
	Number      *string `json:"number"`
	Email       *string `json:"email"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
	Phone       *string `json:"phone"`
}

// UpdateEmployeeUseCase handles employee updates.
type UpdateEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

// NewUpdateEmployeeUseCase creates a new UpdateEmployeeUseCase.
func NewUpdateEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *UpdateEmployeeUseCase {
	return &UpdateEmployeeUseCase{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Execute applies a partial update to an employee record.
func (uc *UpdateEmployeeUseCase) Execute(ctx context.Context, cmd UpdateEmployeeCommand) (*dto.EmployeeDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("employee id is required")
	}

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid update employee command", "sid", cmd.SID, "error", err)
		return nil, err
	}

	existing, err := uc.employeeRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get employee for update", "sid", cmd.SID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("employee not found")
	}

	if err := existing.UpdateAttributes(cmd.Name, cmd.Number, cmd.Email, cmd.Department, cmd.Designation, cmd.Phone); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.employeeRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update employee", "sid", cmd.SID, "error", err)
		return nil, err
	}

	uc.logger.Infow("employee updated successfully", "sid", cmd.SID)
	return dto.ToEmployeeDTO(existing), nil
}

func (uc *UpdateEmployeeUseCase) validateCommand(cmd UpdateEmployeeCommand) error {
	fields := make(map[string]string)

	if cmd.Number != nil && !employeeNumberPattern.MatchString(*cmd.Number) {
		fields["number"] = "employee number must be numeric"
	}
	if cmd.Email != nil && !employeeEmailPattern.MatchString(*cmd.Email) {
		fields["email"] = "invalid email format"
	}
	if cmd.Phone != nil && !employeePhonePattern.MatchString(*cmd.Phone) {
		fields["phone"] = "phone must be exactly 10 digits"
	}

	if len(fields) > 0 {
		return errors.NewFieldValidationError(fields)
	}
	return nil
}
