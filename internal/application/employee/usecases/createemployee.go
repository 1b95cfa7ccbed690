package usecases

import (
	"context"
	"fmt"
	"regexp"

	"quartermaster/internal/application/employee/dto"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/id"
	"quartermaster/internal/shared/logger"
)

var (
	employeeNumberPattern = regexp.MustCompile(`^[0-9]+$`)
	employeePhonePattern  = regexp.MustCompile(`^[0-9]{10}$`)
	employeeEmailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// CreateEmployeeCommand represents the input for registering an employee.
type CreateEmployeeCommand struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Phone       string `json:"phone"`
}

// CreateEmployeeUseCase handles employee registration.
type CreateEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

// NewCreateEmployeeUseCase creates a new CreateEmployeeUseCase.
func NewCreateEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *CreateEmployeeUseCase {
	return &CreateEmployeeUseCase{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Execute registers a new employee. Validation failures are reported per
// field so the client can attach them to the offending inputs.
func (uc *CreateEmployeeUseCase) Execute(ctx context.Context, cmd CreateEmployeeCommand) (*dto.EmployeeDTO, error) {
	uc.logger.Infow("executing create employee use case", "number", cmd.Number)

	if err := validateEmployeeFields(cmd.Name, cmd.Number, cmd.Email, cmd.Department, cmd.Designation, cmd.Phone); err != nil {
		uc.logger.Warnw("invalid create employee command", "error", err)
		return nil, err
	}

	newEmployee, err := employee.NewEmployee(
		cmd.Name,
		cmd.Number,
		cmd.Email,
		cmd.Department,
		cmd.Designation,
		cmd.Phone,
		id.NewEmployeeID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create employee entity", "error", err)
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	if err := uc.employeeRepo.Create(ctx, newEmployee); err != nil {
		uc.logger.Errorw("failed to persist employee", "error", err)
		return nil, err
	}

	uc.logger.Infow("employee created successfully", "id", newEmployee.ID(), "sid", newEmployee.SID())
	return dto.ToEmployeeDTO(newEmployee), nil
}

// validateEmployeeFields collects every field failure into one error so a
// form submission gets all its problems back at once.
func validateEmployeeFields(name, number, email, department, designation, phone string) error {
	fields := make(map[string]string)

	if name == "" {
		fields["name"] = "name is required"
	}
	if number == "" {
		fields["number"] = "employee number is required"
	} else if !employeeNumberPattern.MatchString(number) {
		fields["number"] = "employee number must be numeric"
	}
	if email == "" {
		fields["email"] = "email is required"
	} else if !employeeEmailPattern.MatchString(email) {
		fields["email"] = "invalid email format"
	}
	if department == "" {
		fields["department"] = "department is required"
	}
	if designation == "" {
		fields["designation"] = "designation is required"
	}
	if phone == "" {
		fields["phone"] = "phone is required"
	} else if !employeePhonePattern.MatchString(phone) {
		fields["phone"] = "phone must be exactly 10 digits"
	}

	if len(fields) > 0 {
		return errors.NewFieldValidationError(fields)
	}
	return nil
}
