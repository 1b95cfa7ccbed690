// Package dto provides data transfer objects for the employee domain.
package dto

import (
	partdto "quartermaster/internal/application/part/dto"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/domain/system"
)

// AllocatedSystemDTO is the employee-side view of the system an employee
// holds, with its claimed parts expanded. It is derived from the systems
// table, never stored on the employee itself.
type AllocatedSystemDTO struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Status    string             `json:"status"`
	Parts     []*partdto.PartDTO `json:"parts"`
	PartCount int                `json:"part_count"`
}

// EmployeeDTO represents the data transfer object for employees.
type EmployeeDTO struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Number          string              `json:"number"`
	Email           string              `json:"email"`
	Department      string              `json:"department"`
	Designation     string              `json:"designation"`
	Phone           string              `json:"phone"`
	AllocatedSystem *AllocatedSystemDTO `json:"allocated_system,omitempty"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       string              `json:"updated_at"`
}

// ToEmployeeDTO converts a domain employee to DTO.
func ToEmployeeDTO(e *employee.Employee) *EmployeeDTO {
	if e == nil {
		return nil
	}

	return &EmployeeDTO{
		ID:          e.SID(),
		Name:        e.Name(),
		Number:      e.Number(),
		Email:       e.Email(),
		Department:  e.Department(),
		Designation: e.Designation(),
		Phone:       e.Phone(),
		CreatedAt:   e.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   e.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToEmployeeDTOWithSystem converts a domain employee to DTO with its
// allocated system and that system's parts expanded. A nil system leaves
// the allocation empty.
func ToEmployeeDTOWithSystem(e *employee.Employee, sys *system.System, parts []*part.Part) *EmployeeDTO {
	d := ToEmployeeDTO(e)
	if d == nil || sys == nil {
		return d
	}

	d.AllocatedSystem = &AllocatedSystemDTO{
		ID:        sys.SID(),
		Name:      sys.Name(),
		Status:    sys.Status().String(),
		Parts:     partdto.ToPartDTOs(parts),
		PartCount: len(parts),
	}
	return d
}
