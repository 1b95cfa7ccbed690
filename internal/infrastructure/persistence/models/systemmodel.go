package models

import (
	"time"

	"quartermaster/internal/shared/constants"
)

// SystemModel represents the database persistence model for assembled systems.
//
// AssignedEmployeeID carries a unique index so an employee can hold at most
// one system; MySQL permits multiple NULLs in a unique index, so unassigned
// systems do not collide.
type SystemModel struct {
	ID                 uint    `gorm:"primarykey"`
	SID                string  `gorm:"column:sid;not null;size:16;uniqueIndex:idx_system_sid"`
	Name               string  `gorm:"not null;size:100"`
	Status             string  `gorm:"not null;default:unassigned;size:20;index:idx_system_status"`
	AssignedEmployeeID *uint   `gorm:"uniqueIndex:idx_system_assigned_employee"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM.
func (SystemModel) TableName() string {
	return constants.TableSystems
}
