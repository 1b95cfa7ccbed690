// Package part provides the domain model for individual hardware units.
package part

import (
	"fmt"
	"time"

	vo "quartermaster/internal/domain/part/valueobjects"
)

// Part represents a single trackable hardware unit. A part is claimed by at
// most one system at a time; the claim is owned by the allocation engine and
// never mutated by plain attribute updates.
type Part struct {
	id               uint
	sid              string // Stripe-style prefixed ID (prt_xxx)
	partType         vo.PartType
	barcode          string
	serialNumber     string
	brand            string
	model            string
	specs            map[string]any
	status           vo.PartStatus
	unusableReason   *string
	assignedSystemID *uint
	createdAt        time.Time
	updatedAt        time.Time
}

// NewPart creates a new unassigned part. The unusable reason is only
// accepted together with unusable status.
func NewPart(
	partType vo.PartType,
	barcode string,
	serialNumber string,
	brand string,
	model string,
	specs map[string]any,
	status vo.PartStatus,
	unusableReason *string,
	sidGenerator func() (string, error),
) (*Part, error) {
	if !partType.IsValid() {
		return nil, fmt.Errorf("invalid part type: %s", partType)
	}
	if barcode == "" {
		return nil, fmt.Errorf("barcode is required")
	}
	if serialNumber == "" {
		return nil, fmt.Errorf("serial number is required")
	}
	if brand == "" {
		return nil, fmt.Errorf("brand is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if status == "" {
		status = vo.PartStatusActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid part status: %s", status)
	}
	if unusableReason != nil && status != vo.PartStatusUnusable {
		return nil, fmt.Errorf("unusable reason requires unusable status")
	}
	if status == vo.PartStatusUnusable && unusableReason == nil {
		return nil, fmt.Errorf("unusable status requires a reason")
	}

	sid, err := sidGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to generate part SID: %w", err)
	}

	now := time.Now()
	return &Part{
		sid:            sid,
		partType:       partType,
		barcode:        barcode,
		serialNumber:   serialNumber,
		brand:          brand,
		model:          model,
		specs:          specs,
		status:         status,
		unusableReason: unusableReason,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID               uint
	SID              string
	Type             vo.PartType
	Barcode          string
	SerialNumber     string
	Brand            string
	Model            string
	Specs            map[string]any
	Status           vo.PartStatus
	UnusableReason   *string
	AssignedSystemID *uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Reconstruct rebuilds a part from persistence.
func Reconstruct(p ReconstructParams) (*Part, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("part ID cannot be zero")
	}
	if !p.Type.IsValid() {
		return nil, fmt.Errorf("invalid part type: %s", p.Type)
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid part status: %s", p.Status)
	}

	return &Part{
		id:               p.ID,
		sid:              p.SID,
		partType:         p.Type,
		barcode:          p.Barcode,
		serialNumber:     p.SerialNumber,
		brand:            p.Brand,
		model:            p.Model,
		specs:            p.Specs,
		status:           p.Status,
		unusableReason:   p.UnusableReason,
		assignedSystemID: p.AssignedSystemID,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

func (p *Part) ID() uint                { return p.id }
func (p *Part) SID() string             { return p.sid }
func (p *Part) Type() vo.PartType       { return p.partType }
func (p *Part) Barcode() string         { return p.barcode }
func (p *Part) SerialNumber() string    { return p.serialNumber }
func (p *Part) Brand() string           { return p.brand }
func (p *Part) Model() string           { return p.model }
func (p *Part) Specs() map[string]any   { return p.specs }
func (p *Part) Status() vo.PartStatus   { return p.status }
func (p *Part) UnusableReason() *string { return p.unusableReason }
func (p *Part) AssignedSystemID() *uint { return p.assignedSystemID }
func (p *Part) CreatedAt() time.Time    { return p.createdAt }
func (p *Part) UpdatedAt() time.Time    { return p.updatedAt }

// SetID assigns the persistence ID after the initial insert.
func (p *Part) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("part ID already set")
	}
	if id == 0 {
		return fmt.Errorf("part ID cannot be zero")
	}
	p.id = id
	return nil
}

// IsAssigned reports whether the part is claimed by a system.
func (p *Part) IsAssigned() bool {
	return p.assignedSystemID != nil
}

// MarkUnusable transitions the part to unusable with the given reason,
// regardless of current status. The system claim is deliberately untouched:
// a system may silently retain an unusable part.
func (p *Part) MarkUnusable(reason string) error {
	if reason == "" {
		return fmt.Errorf("unusable reason is required")
	}
	p.status = vo.PartStatusUnusable
	p.unusableReason = &reason
	p.updatedAt = time.Now()
	return nil
}

// Restore transitions the part back to active and clears the reason.
func (p *Part) Restore() {
	p.status = vo.PartStatusActive
	p.unusableReason = nil
	p.updatedAt = time.Now()
}

// UpdateAttributes applies partial attribute updates. Nil pointers leave the
// field unchanged. The assignment claim and status cannot be changed here.
func (p *Part) UpdateAttributes(partType *vo.PartType, barcode, serialNumber, brand, model *string, specs map[string]any) error {
	if partType != nil {
		if !partType.IsValid() {
			return fmt.Errorf("invalid part type: %s", *partType)
		}
		p.partType = *partType
	}
	if barcode != nil {
		if *barcode == "" {
			return fmt.Errorf("barcode cannot be empty")
		}
		p.barcode = *barcode
	}
	if serialNumber != nil {
		if *serialNumber == "" {
			return fmt.Errorf("serial number cannot be empty")
		}
		p.serialNumber = *serialNumber
	}
	if brand != nil {
		if *brand == "" {
			return fmt.Errorf("brand cannot be empty")
		}
		p.brand = *brand
	}
	if model != nil {
		if *model == "" {
			return fmt.Errorf("model cannot be empty")
		}
		p.model = *model
	}
	if specs != nil {
		p.specs = specs
	}
	p.updatedAt = time.Now()
	return nil
}
