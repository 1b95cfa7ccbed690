// Package system provides the domain model for composite assets built from
// parts and issued to employees.
package system

import (
	"fmt"
	"time"

	vo "quartermaster/internal/domain/system/valueobjects"
)

// System represents the composite asset aggregate. The assignee field is the
// single source of truth for the system/employee binding; an employee's
// allocated system is always derived from it, never stored on the employee.
// Invariant: status is "assigned" exactly when the assignee is set.
type System struct {
	id                 uint
	sid                string // Stripe-style prefixed ID (sys_xxx)
	name               string
	status             vo.SystemStatus
	assignedEmployeeID *uint
	partIDs            []uint // initial claim set; membership afterwards derives from part claims
	createdAt          time.Time
	updatedAt          time.Time
}

// NewSystem creates a new system over a non-empty set of distinct parts,
// optionally pre-assigned to an employee. The status argument must agree
// with the presence of the employee.
func NewSystem(
	name string,
	partIDs []uint,
	assignedEmployeeID *uint,
	status vo.SystemStatus,
	sidGenerator func() (string, error),
) (*System, error) {
	if name == "" {
		return nil, fmt.Errorf("system name is required")
	}
	if len(partIDs) == 0 {
		return nil, fmt.Errorf("at least one part is required")
	}
	seen := make(map[uint]bool, len(partIDs))
	for _, pid := range partIDs {
		if pid == 0 {
			return nil, fmt.Errorf("part ID cannot be zero")
		}
		if seen[pid] {
			return nil, fmt.Errorf("duplicate part ID: %d", pid)
		}
		seen[pid] = true
	}

	if status == "" {
		if assignedEmployeeID != nil {
			status = vo.SystemStatusAssigned
		} else {
			status = vo.SystemStatusUnassigned
		}
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid system status: %s", status)
	}
	if assignedEmployeeID != nil && status != vo.SystemStatusAssigned {
		return nil, fmt.Errorf("status must be assigned when an employee is set")
	}
	if assignedEmployeeID == nil && status == vo.SystemStatusAssigned {
		return nil, fmt.Errorf("status cannot be assigned without an employee")
	}

	sid, err := sidGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to generate system SID: %w", err)
	}

	now := time.Now()
	return &System{
		sid:                sid,
		name:               name,
		status:             status,
		assignedEmployeeID: assignedEmployeeID,
		partIDs:            partIDs,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID                 uint
	SID                string
	Name               string
	Status             vo.SystemStatus
	AssignedEmployeeID *uint
	PartIDs            []uint
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Reconstruct rebuilds a system from persistence.
func Reconstruct(p ReconstructParams) (*System, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("system ID cannot be zero")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid system status: %s", p.Status)
	}

	return &System{
		id:                 p.ID,
		sid:                p.SID,
		name:               p.Name,
		status:             p.Status,
		assignedEmployeeID: p.AssignedEmployeeID,
		partIDs:            p.PartIDs,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}, nil
}

func (s *System) ID() uint                  { return s.id }
func (s *System) SID() string               { return s.sid }
func (s *System) Name() string              { return s.name }
func (s *System) Status() vo.SystemStatus   { return s.status }
func (s *System) AssignedEmployeeID() *uint { return s.assignedEmployeeID }
func (s *System) PartIDs() []uint           { return s.partIDs }
func (s *System) CreatedAt() time.Time      { return s.createdAt }
func (s *System) UpdatedAt() time.Time      { return s.updatedAt }

// SetID assigns the persistence ID after the initial insert.
func (s *System) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("system ID already set")
	}
	if id == 0 {
		return fmt.Errorf("system ID cannot be zero")
	}
	s.id = id
	return nil
}

// IsAssigned reports whether the system is bound to an employee.
func (s *System) IsAssigned() bool {
	return s.assignedEmployeeID != nil
}

// Assign binds the system to an employee and marks it assigned.
func (s *System) Assign(employeeID uint) error {
	if employeeID == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	s.assignedEmployeeID = &employeeID
	s.status = vo.SystemStatusAssigned
	s.updatedAt = time.Now()
	return nil
}

// Unassign releases the employee binding. The part claims stay in place:
// a system keeps its parts across unassignment.
func (s *System) Unassign() {
	s.assignedEmployeeID = nil
	s.status = vo.SystemStatusUnassigned
	s.updatedAt = time.Now()
}

// Deallocate retires the system. Like Unassign it clears the employee
// binding, but the terminal status records that the hardware left service.
func (s *System) Deallocate() {
	s.assignedEmployeeID = nil
	s.status = vo.SystemStatusDeallocated
	s.updatedAt = time.Now()
}
