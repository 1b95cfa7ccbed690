// Package dto provides data transfer objects for the system domain.
package dto

import (
	employeedto "quartermaster/internal/application/employee/dto"
	partdto "quartermaster/internal/application/part/dto"
	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/domain/system"
)

// SystemDTO represents the data transfer object for assembled systems,
// with part membership and the assignee expanded.
type SystemDTO struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Status    string                   `json:"status"`
	Employee  *employeedto.EmployeeDTO `json:"employee,omitempty"`
	Parts     []*partdto.PartDTO       `json:"parts"`
	PartCount int                      `json:"part_count"`
	CreatedAt string                   `json:"created_at"`
	UpdatedAt string                   `json:"updated_at"`
}

// AssignmentDTO is the result of assigning a system: the employee with
// their allocated system fully expanded.
type AssignmentDTO struct {
	Employee *employeedto.EmployeeDTO `json:"employee"`
	System   *SystemDTO               `json:"system"`
}

// ToSystemDTO converts a domain system to DTO. The claimed parts and the
// assigned employee are passed in because membership and assignment are
// resolved by the caller, not stored on the aggregate's row.
func ToSystemDTO(s *system.System, parts []*part.Part, emp *employee.Employee) *SystemDTO {
	if s == nil {
		return nil
	}

	return &SystemDTO{
		ID:        s.SID(),
		Name:      s.Name(),
		Status:    s.Status().String(),
		Employee:  employeedto.ToEmployeeDTO(emp),
		Parts:     partdto.ToPartDTOs(parts),
		PartCount: len(parts),
		CreatedAt: s.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: s.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
}
