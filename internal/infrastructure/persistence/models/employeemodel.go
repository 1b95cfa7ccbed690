package models

import (
	"time"

	"quartermaster/internal/shared/constants"
)

// EmployeeModel represents the database persistence model for employees.
type EmployeeModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;not null;size:16;uniqueIndex:idx_employee_sid"`
	Name        string `gorm:"not null;size:100"`
	Number      string `gorm:"not null;size:50;uniqueIndex:idx_employee_number"`
	Email       string `gorm:"not null;size:255;uniqueIndex:idx_employee_email"`
	Department  string `gorm:"not null;size:100"`
	Designation string `gorm:"not null;size:100"`
	Phone       string `gorm:"not null;size:20"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM.
func (EmployeeModel) TableName() string {
	return constants.TableEmployees
}
