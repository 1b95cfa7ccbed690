package employee

import "context"

// Repository defines the interface for employee data operations.
type Repository interface {
	// Create creates a new employee
	Create(ctx context.Context, emp *Employee) error

	// GetByID retrieves an employee by internal ID
	GetByID(ctx context.Context, id uint) (*Employee, error)

	// GetBySID retrieves an employee by external SID
	GetBySID(ctx context.Context, sid string) (*Employee, error)

	// List retrieves all employees
	List(ctx context.Context) ([]*Employee, error)

	// Update updates an existing employee
	Update(ctx context.Context, emp *Employee) error

	// Delete removes an employee unconditionally; no cascade to systems
	Delete(ctx context.Context, id uint) error

	// Count returns the total number of employees
	Count(ctx context.Context) (int64, error)
}
