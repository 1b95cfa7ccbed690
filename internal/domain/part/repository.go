package part

import "context"

// ListFilter represents filtering options for part listing.
type ListFilter struct {
	Status string
	Type   string
}

// Repository defines the interface for part data operations.
type Repository interface {
	// Create creates a new part
	Create(ctx context.Context, part *Part) error

	// GetByID retrieves a part by internal ID
	GetByID(ctx context.Context, id uint) (*Part, error)

	// GetBySID retrieves a part by external SID
	GetBySID(ctx context.Context, sid string) (*Part, error)

	// GetBySIDs retrieves multiple parts by external SIDs
	GetBySIDs(ctx context.Context, sids []string) ([]*Part, error)

	// FindBySystemID retrieves all parts currently claimed by a system
	FindBySystemID(ctx context.Context, systemID uint) ([]*Part, error)

	// List retrieves parts matching the filter; an empty result is not an error
	List(ctx context.Context, filter ListFilter) ([]*Part, error)

	// Update updates an existing part's attributes and status
	Update(ctx context.Context, part *Part) error

	// Delete removes a part unconditionally
	Delete(ctx context.Context, id uint) error

	// Count returns the total number of parts
	Count(ctx context.Context) (int64, error)

	// ClaimForSystem atomically claims every listed part for the given
	// system with a single conditional update (only unclaimed parts match).
	// It fails with a conflict error when any part is already claimed, in
	// which case no claim is recorded; callers run it inside a transaction
	// so a lost race rolls back the whole system creation.
	ClaimForSystem(ctx context.Context, partIDs []uint, systemID uint) error

	// ReleaseFromSystem clears the claim of every part held by the system.
	ReleaseFromSystem(ctx context.Context, systemID uint) error
}
