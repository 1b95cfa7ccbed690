package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"quartermaster/internal/shared/constants"
)

// PartModel represents the database persistence model for hardware parts.
type PartModel struct {
	ID               uint           `gorm:"primarykey"`
	SID              string         `gorm:"column:sid;not null;size:16;uniqueIndex:idx_part_sid"` // external API identifier
	Type             string         `gorm:"not null;size:20;index:idx_part_type"`      // CPU, Monitor, Mouse
	Barcode          string         `gorm:"not null;size:100;uniqueIndex:idx_part_barcode"`
	SerialNumber     string         `gorm:"not null;size:100;uniqueIndex:idx_part_serial_number"`
	Brand            string         `gorm:"not null;size:100"`
	Model            string         `gorm:"not null;size:100"`
	Specs            datatypes.JSON `gorm:"type:json"` // open key/value attributes
	Status           string         `gorm:"not null;default:active;size:20;index:idx_part_status"`
	UnusableReason   *string        `gorm:"size:500"` // non-null iff status = unusable
	AssignedSystemID *uint          `gorm:"index:idx_part_assigned_system"` // claim; set only through ClaimForSystem
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM.
func (PartModel) TableName() string {
	return constants.TableParts
}

// BeforeCreate hook for GORM.
func (m *PartModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "active"
	}
	return nil
}
