package system

import "context"

// Repository defines the interface for system data operations.
type Repository interface {
	// Create creates a new system
	Create(ctx context.Context, sys *System) error

	// GetByID retrieves a system by internal ID
	GetByID(ctx context.Context, id uint) (*System, error)

	// GetBySID retrieves a system by external SID
	GetBySID(ctx context.Context, sid string) (*System, error)

	// FindByAssignedEmployee retrieves the system currently assigned to the
	// employee, or nil when the employee holds none. This is the derived
	// side of the employee/system binding.
	FindByAssignedEmployee(ctx context.Context, employeeID uint) (*System, error)

	// List retrieves all systems
	List(ctx context.Context) ([]*System, error)

	// Update persists assignment and status changes
	Update(ctx context.Context, sys *System) error

	// Count returns the total number of systems
	Count(ctx context.Context) (int64, error)
}
