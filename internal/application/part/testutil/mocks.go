// Package testutil provides mock implementations for testing the part application layer.
package testutil

import (
	"context"
	"sync"

	"quartermaster/internal/domain/part"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// MockPartRepository is an in-memory implementation of part.Repository.
// Claims are tracked separately so reads reflect claim state the same way
// the real repository materializes the claim column.
type MockPartRepository struct {
	mu     sync.RWMutex
	parts  map[uint]*part.Part
	bySID  map[string]uint
	claims map[uint]uint // part ID -> system ID
	nextID uint

	// Error injection for testing
	createError error
	getError    error
	listError   error
	updateError error
	deleteError error
	claimError  error
	countError  error
}

// NewMockPartRepository creates a new mock part repository.
func NewMockPartRepository() *MockPartRepository {
	return &MockPartRepository{
		parts:  make(map[uint]*part.Part),
		bySID:  make(map[string]uint),
		claims: make(map[uint]uint),
	}
}

// Create stores a new part in the mock repository.
func (m *MockPartRepository) Create(ctx context.Context, p *part.Part) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createError != nil {
		return m.createError
	}

	for _, existing := range m.parts {
		if existing.Barcode() == p.Barcode() {
			return errors.NewFieldConflictError("barcode", "barcode already exists")
		}
		if existing.SerialNumber() == p.SerialNumber() {
			return errors.NewFieldConflictError("serial_number", "serial number already exists")
		}
	}

	if p.ID() == 0 {
		m.nextID++
		if err := p.SetID(m.nextID); err != nil {
			return err
		}
	}

	m.parts[p.ID()] = p
	m.bySID[p.SID()] = p.ID()
	return nil
}

// GetByID retrieves a part by ID.
func (m *MockPartRepository) GetByID(ctx context.Context, id uint) (*part.Part, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	p, exists := m.parts[id]
	if !exists {
		return nil, nil
	}
	return m.materialize(p), nil
}

// GetBySID retrieves a part by short ID.
func (m *MockPartRepository) GetBySID(ctx context.Context, sid string) (*part.Part, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	id, exists := m.bySID[sid]
	if !exists {
		return nil, nil
	}
	return m.materialize(m.parts[id]), nil
}

// GetBySIDs retrieves multiple parts by short IDs. Missing SIDs are
// silently skipped, matching the SQL IN query behavior.
func (m *MockPartRepository) GetBySIDs(ctx context.Context, sids []string) ([]*part.Part, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}

	var found []*part.Part
	for _, sid := range sids {
		if id, exists := m.bySID[sid]; exists {
			found = append(found, m.materialize(m.parts[id]))
		}
	}
	return found, nil
}

// FindBySystemID retrieves all parts claimed by a system.
func (m *MockPartRepository) FindBySystemID(ctx context.Context, systemID uint) ([]*part.Part, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listError != nil {
		return nil, m.listError
	}

	var claimed []*part.Part
	for partID, sysID := range m.claims {
		if sysID == systemID {
			claimed = append(claimed, m.materialize(m.parts[partID]))
		}
	}
	return claimed, nil
}

// List retrieves parts matching the filter.
func (m *MockPartRepository) List(ctx context.Context, filter part.ListFilter) ([]*part.Part, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listError != nil {
		return nil, m.listError
	}

	var result []*part.Part
	for _, p := range m.parts {
		if filter.Status != "" && p.Status().String() != filter.Status {
			continue
		}
		if filter.Type != "" && p.Type().String() != filter.Type {
			continue
		}
		result = append(result, m.materialize(p))
	}
	return result, nil
}

// Update replaces a stored part.
func (m *MockPartRepository) Update(ctx context.Context, p *part.Part) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateError != nil {
		return m.updateError
	}

	if _, exists := m.parts[p.ID()]; !exists {
		return errors.NewNotFoundError("part not found")
	}
	m.parts[p.ID()] = p
	m.bySID[p.SID()] = p.ID()
	return nil
}

// Delete removes a part.
func (m *MockPartRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deleteError != nil {
		return m.deleteError
	}

	p, exists := m.parts[id]
	if !exists {
		return errors.NewNotFoundError("part not found")
	}
	delete(m.bySID, p.SID())
	delete(m.parts, id)
	delete(m.claims, id)
	return nil
}

// Count returns the number of stored parts.
func (m *MockPartRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.countError != nil {
		return 0, m.countError
	}
	return int64(len(m.parts)), nil
}

// ClaimForSystem mirrors the conditional-update semantics: every part must
// exist and be unclaimed or the whole claim fails and nothing is recorded.
func (m *MockPartRepository) ClaimForSystem(ctx context.Context, partIDs []uint, systemID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.claimError != nil {
		return m.claimError
	}

	for _, id := range partIDs {
		if _, exists := m.parts[id]; !exists {
			return errors.NewConflictError("one or more parts are already assigned to a system")
		}
		if _, claimed := m.claims[id]; claimed {
			return errors.NewConflictError("one or more parts are already assigned to a system")
		}
	}
	for _, id := range partIDs {
		m.claims[id] = systemID
	}
	return nil
}

// ReleaseFromSystem clears all claims held by a system.
func (m *MockPartRepository) ReleaseFromSystem(ctx context.Context, systemID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for partID, sysID := range m.claims {
		if sysID == systemID {
			delete(m.claims, partID)
		}
	}
	return nil
}

// ClaimedBy reports which system holds the part, for test assertions.
func (m *MockPartRepository) ClaimedBy(partID uint) (uint, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sysID, ok := m.claims[partID]
	return sysID, ok
}

// SetCreateError injects an error into Create.
func (m *MockPartRepository) SetCreateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createError = err
}

// SetGetError injects an error into the read methods.
func (m *MockPartRepository) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// SetListError injects an error into List and FindBySystemID.
func (m *MockPartRepository) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listError = err
}

// SetUpdateError injects an error into Update.
func (m *MockPartRepository) SetUpdateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateError = err
}

// SetDeleteError injects an error into Delete.
func (m *MockPartRepository) SetDeleteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteError = err
}

// SetClaimError injects an error into ClaimForSystem.
func (m *MockPartRepository) SetClaimError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.claimError = err
}

// SetCountError injects an error into Count.
func (m *MockPartRepository) SetCountError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countError = err
}

// materialize returns a copy of the part with its claim state applied, so
// callers observe IsAssigned the way they would from the real store.
func (m *MockPartRepository) materialize(p *part.Part) *part.Part {
	var assignedSystemID *uint
	if sysID, claimed := m.claims[p.ID()]; claimed {
		s := sysID
		assignedSystemID = &s
	}

	copied, err := part.Reconstruct(part.ReconstructParams{
		ID:               p.ID(),
		SID:              p.SID(),
		Type:             p.Type(),
		Barcode:          p.Barcode(),
		SerialNumber:     p.SerialNumber(),
		Brand:            p.Brand(),
		Model:            p.Model(),
		Specs:            p.Specs(),
		Status:           p.Status(),
		UnusableReason:   p.UnusableReason(),
		AssignedSystemID: assignedSystemID,
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
	})
	if err != nil {
		// Reconstructing from a valid stored aggregate cannot fail.
		panic(err)
	}
	return copied
}

// MockLogger is a no-op logger.Interface for tests.
type MockLogger struct{}

// NewMockLogger creates a new no-op test logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Debug(msg string, args ...any)                    {}
func (m *MockLogger) Info(msg string, args ...any)                     {}
func (m *MockLogger) Warn(msg string, args ...any)                     {}
func (m *MockLogger) Error(msg string, args ...any)                    {}
func (m *MockLogger) With(args ...any) logger.Interface                { return m }
func (m *MockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *MockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *MockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *MockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
