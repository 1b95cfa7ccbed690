// Package testutil provides mock implementations for testing the system
// application layer. Part and employee repositories are reused from their
// own testutil packages; this one adds the system-side mocks plus the
// transaction and cache fakes.
package testutil

import (
	"context"
	"sync"

	"quartermaster/internal/domain/system"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// MockSystemRepository is an in-memory implementation of system.Repository.
// It enforces the unique assignee constraint the way the database index
// does, so conflict paths are testable without a real store.
type MockSystemRepository struct {
	mu      sync.RWMutex
	systems map[uint]*system.System
	bySID   map[string]uint
	nextID  uint

	// Error injection for testing
	createError error
	getError    error
	listError   error
	updateError error
	countError  error
}

// NewMockSystemRepository creates a new mock system repository.
func NewMockSystemRepository() *MockSystemRepository {
	return &MockSystemRepository{
		systems: make(map[uint]*system.System),
		bySID:   make(map[string]uint),
	}
}

// Create stores a new system, rejecting a second system for the same
// employee like the unique index would.
func (m *MockSystemRepository) Create(ctx context.Context, sys *system.System) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createError != nil {
		return m.createError
	}

	if err := m.checkAssigneeUnique(sys); err != nil {
		return err
	}

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

// Update replaces a stored system, enforcing the unique assignee.
func (m *MockSystemRepository) Update(ctx context.Context, sys *system.System) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateError != nil {
		return m.updateError
	}

	if _, exists := m.systems[sys.ID()]; !exists {
		return errors.NewNotFoundError("system not found")
	}
	if err := m.checkAssigneeUnique(sys); err != nil {
		return err
	}
	m.systems[sys.ID()] = sys
	return nil
}

// Count returns the number of stored systems.
func (m *MockSystemRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.countError != nil {
		return 0, m.countError
	}
	return int64(len(m.systems)), nil
}

// SetCreateError injects an error into Create.
func (m *MockSystemRepository) SetCreateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createError = err
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

// SetUpdateError injects an error into Update.
func (m *MockSystemRepository) SetUpdateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateError = err
}

// SetCountError injects an error into Count.
func (m *MockSystemRepository) SetCountError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countError = err
}

func (m *MockSystemRepository) checkAssigneeUnique(sys *system.System) error {
	if sys.AssignedEmployeeID() == nil {
		return nil
	}
	for id, existing := range m.systems {
		if id == sys.ID() {
			continue
		}
		if existing.AssignedEmployeeID() != nil && *existing.AssignedEmployeeID() == *sys.AssignedEmployeeID() {
			return errors.NewConflictError("employee already has an allocated system")
		}
	}
	return nil
}

// MockTransactionManager runs the function directly; rollback semantics
// are covered by repository-level integration tests.
type MockTransactionManager struct {
	mu    sync.Mutex
	calls int

	runError error
}

// NewMockTransactionManager creates a new mock transaction manager.
func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

// RunInTransaction executes fn with the given context.
func (m *MockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.calls++
	runError := m.runError
	m.mu.Unlock()

	if runError != nil {
		return runError
	}
	return fn(ctx)
}

// Calls reports how many transactions were started.
func (m *MockTransactionManager) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// SetRunError makes RunInTransaction fail without invoking fn.
func (m *MockTransactionManager) SetRunError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runError = err
}

// MockStatsCache is an in-memory StatsCacheStore.
type MockStatsCache struct {
	mu      sync.RWMutex
	entries map[string][]byte

	getError error
	setError error
}

// NewMockStatsCache creates a new mock stats cache.
func NewMockStatsCache() *MockStatsCache {
	return &MockStatsCache{
		entries: make(map[string][]byte),
	}
}

// Get retrieves a cached payload.
func (m *MockStatsCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, false, m.getError
	}

	payload, found := m.entries[key]
	return payload, found, nil
}

// Set stores a payload.
func (m *MockStatsCache) Set(ctx context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.setError != nil {
		return m.setError
	}

	m.entries[key] = payload
	return nil
}

// Seed pre-populates a cache entry for tests.
func (m *MockStatsCache) Seed(key string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = payload
}

// SetGetError injects an error into Get.
func (m *MockStatsCache) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// SetSetError injects an error into Set.
func (m *MockStatsCache) SetSetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setError = err
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
