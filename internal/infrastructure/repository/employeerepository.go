package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quartermaster/internal/domain/employee"
	"quartermaster/internal/infrastructure/persistence/mappers"
	"quartermaster/internal/infrastructure/persistence/models"
	"quartermaster/internal/shared/db"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// EmployeeRepositoryImpl implements the employee.Repository interface.
type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EmployeeMapper
	logger logger.Interface
}

// NewEmployeeRepository creates a new employee repository instance.
func NewEmployeeRepository(db *gorm.DB, logger logger.Interface) employee.Repository {
	return &EmployeeRepositoryImpl{
		db:     db,
		mapper: mappers.NewEmployeeMapper(),
		logger: logger,
	}
}

// Create creates a new employee in the database.
func (r *EmployeeRepositoryImpl) Create(ctx context.Context, emp *employee.Employee) error {
	model, err := r.mapper.ToModel(emp)
	if err != nil {
		r.logger.Errorw("failed to map employee entity to model", "error", err)
		return fmt.Errorf("failed to map employee entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return duplicateEmployeeError(err)
		}
		r.logger.Errorw("failed to create employee in database", "error", err)
		return fmt.Errorf("failed to create employee: %w", err)
	}

	if err := emp.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set employee ID", "error", err)
		return fmt.Errorf("failed to set employee ID: %w", err)
	}

	r.logger.Infow("employee created successfully", "id", model.ID, "sid", model.SID, "number", model.Number)
	return nil
}

// GetByID retrieves an employee by its internal ID.
func (r *EmployeeRepositoryImpl) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	var model models.EmployeeModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get employee by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySID retrieves an employee by its external SID.
func (r *EmployeeRepositoryImpl) GetBySID(ctx context.Context, sid string) (*employee.Employee, error) {
	var model models.EmployeeModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get employee by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves all employees.
func (r *EmployeeRepositoryImpl) List(ctx context.Context) ([]*employee.Employee, error) {
	var employeeModels []*models.EmployeeModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("created_at DESC").Find(&employeeModels).Error; err != nil {
		r.logger.Errorw("failed to list employees", "error", err)
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return r.mapper.ToEntities(employeeModels)
}

// Update updates an existing employee.
func (r *EmployeeRepositoryImpl) Update(ctx context.Context, emp *employee.Employee) error {
	model, err := r.mapper.ToModel(emp)
	if err != nil {
		r.logger.Errorw("failed to map employee entity to model", "id", emp.ID(), "error", err)
		return fmt.Errorf("failed to map employee entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.EmployeeModel{}).Where("id = ?", model.ID).
		Select("Name", "Number", "Email", "Department", "Designation", "Phone", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return duplicateEmployeeError(result.Error)
		}
		r.logger.Errorw("failed to update employee", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("employee not found")
	}

	return nil
}

// Delete removes an employee unconditionally.
func (r *EmployeeRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.EmployeeModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete employee", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("employee not found")
	}

	r.logger.Infow("employee deleted", "id", id)
	return nil
}

// Count returns the total number of employees.
func (r *EmployeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.EmployeeModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count employees", "error", err)
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// duplicateEmployeeError maps a unique index violation to a field-keyed conflict.
func duplicateEmployeeError(err error) error {
	msg := err.Error()
	switch {
	case containsAny(msg, "idx_employee_number", "number"):
		return errors.NewFieldConflictError("number", "employee number already exists")
	case containsAny(msg, "idx_employee_email", "email"):
		return errors.NewFieldConflictError("email", "email already exists")
	default:
		return errors.NewConflictError("employee already exists")
	}
}
