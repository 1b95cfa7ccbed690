// Package testutil provides mock implementations for testing the employee application layer.
package testutil

import (
	"context"
	"sync"

	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/system"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// MockEmployeeRepository is an in-memory implementation of employee.Repository.
type MockEmployeeRepository struct {
	mu        sync.RWMutex
	employees map[uint]*employee.Employee
	bySID     map[string]uint
	nextID    uint

	// Error injection for testing
	createError error
	getError    error
	listError   error
	updateError error
	deleteError error
	countError  error
}

// NewMockEmployeeRepository creates a new mock employee repository.
func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{
		employees: make(map[uint]*employee.Employee),
		bySID:     make(map[string]uint),
	}
}

// Create stores a new employee, enforcing number and email uniqueness.
func (m *MockEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createError != nil {
		return m.createError
	}

	for _, existing := range m.employees {
		if existing.Number() == emp.Number() {
			return errors.NewFieldConflictError("number", "employee number already exists")
		}
		if existing.Email() == emp.Email() {
			return errors.NewFieldConflictError("email", "email already exists")
		}
	}

	if emp.ID() == 0 {
		m.nextID++
		if err := emp.SetID(m.nextID); err != nil {
			return err
		}
	}

	m.employees[emp.ID()] = emp
	m.bySID[emp.SID()] = emp.ID()
	return nil
}

// GetByID retrieves an employee by ID.
func (m *MockEmployeeRepository) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	emp, exists := m.employees[id]
	if !exists {
		return nil, nil
	}
	return emp, nil
}

// GetBySID retrieves an employee by short ID.
func (m *MockEmployeeRepository) GetBySID(ctx context.Context, sid string) (*employee.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	id, exists := m.bySID[sid]
	if !exists {
		return nil, nil
	}
	return m.employees[id], nil
}

// List retrieves all employees.
func (m *MockEmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listError != nil {
		return nil, m.listError
	}

	result := make([]*employee.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		result = append(result, emp)
	}
	return result, nil
}

// Update replaces a stored employee.
func (m *MockEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateError != nil {
		return m.updateError
	}

	if _, exists := m.employees[emp.ID()]; !exists {
		return errors.NewNotFoundError("employee not found")
	}
	m.employees[emp.ID()] = emp
	m.bySID[emp.SID()] = emp.ID()
	return nil
}

// Delete removes an employee.
func (m *MockEmployeeRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deleteError != nil {
		return m.deleteError
	}

	emp, exists := m.employees[id]
	if !exists {
		return errors.NewNotFoundError("employee not found")
	}
	delete(m.bySID, emp.SID())
	delete(m.employees, id)
	return nil
}

// Count returns the number of stored employees.
func (m *MockEmployeeRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.countError != nil {
		return 0, m.countError
	}
	return int64(len(m.employees)), nil
}

// SetCreateError injects an error into Create.
func (m *MockEmployeeRepository) SetCreateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createError = err
}

// SetGetError injects an error into the read methods.
func (m *MockEmployeeRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// SetListError injects an error into List.
func (m *MockEmployeeRepository) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listError = err
}

// SetUpdateError injects an error into Update.
func (m *MockEmployeeRepository) SetUpdateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateError = err
}

// SetDeleteError injects an error into Delete.
func (m *MockEmployeeRepository) SetDeleteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteError = err
}

// SetCountError injects an error into Count.
func (m *MockEmployeeRepository) SetCountError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countError = err
}

// MockSystemRepository is an in-memory implementation of system.Repository
// sufficient for resolving employee allocations.
type MockSystemRepository struct {
	mu      sync.RWMutex
	systems map[uint]*system.System
	bySID   map[string]uint
	nextID  uint

	getError  error
	listError error
}

// NewMockSystemRepository creates a new mock system repository.
func NewMockSystemRepository() *MockSystemRepository {
	return &MockSystemRepository{
		systems: make(map[uint]*system.System),
		bySID:   make(map[string]uint),
	}
}

// Create stores a new system.
func (m *MockSystemRepository) Create(ctx context.Context, sys *system.System) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sys.ID() == 0 {
		m.nextID++
		if err := sys.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.systems[sys.ID()] = sys
	m.bySID[sys.SID()] = sys.ID()
	return nil
}

// GetByID retrieves a system by ID.
func (m *MockSystemRepository) GetByID(ctx context.Context, id uint) (*system.System, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	sys, exists := m.systems[id]
	if !exists {
		return nil, nil
	}
	return sys, nil
}

// GetBySID retrieves a system by short ID.
func (m *MockSystemRepository) GetBySID(ctx context.Context, sid string) (*system.System, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	id, exists := m.bySID[sid]
	if !exists {
		return nil, nil
	}
	return m.systems[id], nil
}

// FindByAssignedEmployee retrieves the system held by the employee.
func (m *MockSystemRepository) FindByAssignedEmployee(ctx context.Context, employeeID uint) (*system.System, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	for _, sys := range m.systems {
		if sys.AssignedEmployeeID() != nil && *sys.AssignedEmployeeID() == employeeID {
			return sys, nil
		}
	}
	return nil, nil
}

// List retrieves all systems.
func (m *MockSystemRepository) List(ctx context.Context) ([]*system.System, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listError != nil {
		return nil, m.listError
	}

	result := make([]*system.System, 0, len(m.systems))
	for _, sys := range m.systems {
		result = append(result, sys)
	}
	return result, nil
}

// Update replaces a stored system.
func (m *MockSystemRepository) Update(ctx context.Context, sys *system.System) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.systems[sys.ID()]; !exists {
		return errors.NewNotFoundError("system not found")
	}
	m.systems[sys.ID()] = sys
	return nil
}

// Count returns the number of stored systems.
func (m *MockSystemRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.systems)), nil
}

// SetGetError injects an error into the read methods.
func (m *MockSystemRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// SetListError injects an error into List.
func (m *MockSystemRepository) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listError = err
}

// MockLogger is a no-op logger.Interface for tests.
type MockLogger struct{}

// NewMockLogger creates a new no-op test logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Debug(msg string, args ...any)                   {}
func (m *MockLogger) Info(msg string, args ...any)                    {}
func (m *MockLogger) Warn(msg string, args ...any)                    {}
func (m *MockLogger) Error(msg string, args ...any)                   {}
func (m *MockLogger) With(args ...any) logger.Interface               { return m }
func (m *MockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *MockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *MockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *MockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
