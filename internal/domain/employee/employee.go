// Package employee provides the domain model for staff who are issued
// systems.
package employee

import (
	"fmt"
	"regexp"
	"time"
)

var (
	numberPattern = regexp.MustCompile(`^[0-9]+$`)
	phonePattern  = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Employee represents a staff member. The system an employee holds is not
// stored here; it is derived from the system side of the binding.
type Employee struct {
	id          uint
	sid         string // Stripe-style prefixed ID (emp_xxx)
	name        string
	number      string // organizational employee ID, numeric string, unique
	email       string
	department  string
	designation string
	phone       string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewEmployee creates a new employee record.
func NewEmployee(
	name string,
	number string,
	email string,
	department string,
	designation string,
	phone string,
	sidGenerator func() (string, error),
) (*Employee, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if number == "" {
		return nil, fmt.Errorf("employee number is required")
	}
	if !numberPattern.MatchString(number) {
		return nil, fmt.Errorf("employee number must be numeric")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("invalid email format: %s", email)
	}
	if department == "" {
		return nil, fmt.Errorf("department is required")
	}
	if designation == "" {
		return nil, fmt.Errorf("designation is required")
	}
	if !phonePattern.MatchString(phone) {
		return nil, fmt.Errorf("phone must be exactly 10 digits")
	}

	sid, err := sidGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to generate employee SID: %w", err)
	}

	now := time.Now()
	return &Employee{
		sid:         sid,
		name:        name,
		number:      number,
		email:       email,
		department:  department,
		designation: designation,
		phone:       phone,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID          uint
	SID         string
	Name        string
	Number      string
	Email       string
	Department  string
	Designation string
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Reconstruct rebuilds an employee from persistence.
func Reconstruct(p ReconstructParams) (*Employee, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("employee ID cannot be zero")
	}
	return &Employee{
		id:          p.ID,
		sid:         p.SID,
		name:        p.Name,
		number:      p.Number,
		email:       p.Email,
		department:  p.Department,
		designation: p.Designation,
		phone:       p.Phone,
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}, nil
}

func (e *Employee) ID() uint             { return e.id }
func (e *Employee) SID() string          { return e.sid }
func (e *Employee) Name() string         { return e.name }
func (e *Employee) Number() string       { return e.number }
func (e *Employee) Email() string        { return e.email }
func (e *Employee) Department() string   { return e.department }
func (e *Employee) Designation() string  { return e.designation }
func (e *Employee) Phone() string        { return e.phone }
func (e *Employee) CreatedAt() time.Time { return e.createdAt }
func (e *Employee) UpdatedAt() time.Time { return e.updatedAt }

// SetID assigns the persistence ID after the initial insert.
func (e *Employee) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("employee ID already set")
	}
	if id == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	e.id = id
	return nil
}

// UpdateAttributes applies partial updates. Nil pointers leave the field
// unchanged; provided values go through the same checks as creation.
func (e *Employee) UpdateAttributes(name, number, email, department, designation, phone *string) error {
	if name != nil {
		if *name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		e.name = *name
	}
	if number != nil {
		if !numberPattern.MatchString(*number) {
			return fmt.Errorf("employee number must be numeric")
		}
		e.number = *number
	}
	if email != nil {
		if !emailPattern.MatchString(*email) {
			return fmt.Errorf("invalid email format: %s", *email)
		}
		e.email = *email
	}
	if department != nil {
		if *department == "" {
			return fmt.Errorf("department cannot be empty")
		}
		e.department = *department
	}
	if designation != nil {
		if *designation == "" {
			return fmt.Errorf("designation cannot be empty")
		}
		e.designation = *designation
	}
	if phone != nil {
		if !phonePattern.MatchString(*phone) {
			return fmt.Errorf("phone must be exactly 10 digits")
		}
		e.phone = *phone
	}
	e.updatedAt = time.Now()
	return nil
}
