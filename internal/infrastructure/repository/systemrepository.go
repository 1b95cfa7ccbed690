package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quartermaster/internal/domain/system"
	"quartermaster/internal/infrastructure/persistence/mappers"
	"quartermaster/internal/infrastructure/persistence/models"
	"quartermaster/internal/shared/db"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// SystemRepositoryImpl implements the system.Repository interface.
//
// Part membership lives on the parts table (assigned_system_id), so every
// read hydrates the claimed part IDs alongside the system row.
type SystemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SystemMapper
	logger logger.Interface
}

// NewSystemRepository creates a new system repository instance.
func NewSystemRepository(db *gorm.DB, logger logger.Interface) system.Repository {
	return &SystemRepositoryImpl{
		db:     db,
		mapper: mappers.NewSystemMapper(),
		logger: logger,
	}
}

// Create creates a new system in the database.
func (r *SystemRepositoryImpl) Create(ctx context.Context, sys *system.System) error {
	model, err := r.mapper.ToModel(sys)
	if err != nil {
		r.logger.Errorw("failed to map system entity to model", "error", err)
		return fmt.Errorf("failed to map system entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("employee already has an allocated system")
		}
		r.logger.Errorw("failed to create system in database", "error", err)
		return fmt.Errorf("failed to create system: %w", err)
	}

	if err := sys.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set system ID", "error", err)
		return fmt.Errorf("failed to set system ID: %w", err)
	}

	r.logger.Infow("system created successfully", "id", model.ID, "sid", model.SID, "name", model.Name)
	return nil
}

// GetByID retrieves a system by its internal ID.
func (r *SystemRepositoryImpl) GetByID(ctx context.Context, id uint) (*system.System, error) {
	var model models.SystemModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get system by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get system: %w", err)
	}

	return r.hydrate(ctx, &model)
}

// GetBySID retrieves a system by its external SID.
func (r *SystemRepositoryImpl) GetBySID(ctx context.Context, sid string) (*system.System, error) {
	var model models.SystemModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get system by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get system: %w", err)
	}

	return r.hydrate(ctx, &model)
}

// FindByAssignedEmployee retrieves the system currently assigned to the employee.
func (r *SystemRepositoryImpl) FindByAssignedEmployee(ctx context.Context, employeeID uint) (*system.System, error) {
	var model models.SystemModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("assigned_employee_id = ?", employeeID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find system by assigned employee", "employee_id", employeeID, "error", err)
		return nil, fmt.Errorf("failed to find system: %w", err)
	}

	return r.hydrate(ctx, &model)
}

// List retrieves all systems.
func (r *SystemRepositoryImpl) List(ctx context.Context) ([]*system.System, error) {
	var systemModels []*models.SystemModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("created_at DESC").Find(&systemModels).Error; err != nil {
		r.logger.Errorw("failed to list systems", "error", err)
		return nil, fmt.Errorf("failed to list systems: %w", err)
	}

	partIDsBySystem, err := r.partIDsBySystem(ctx)
	if err != nil {
		return nil, err
	}

	systems := make([]*system.System, 0, len(systemModels))
	for _, model := range systemModels {
		entity, err := r.mapper.ToEntity(model, partIDsBySystem[model.ID])
		if err != nil {
			r.logger.Errorw("failed to map system model to entity", "id", model.ID, "error", err)
			return nil, fmt.Errorf("failed to map system: %w", err)
		}
		systems = append(systems, entity)
	}

	return systems, nil
}

// Update persists assignment and status changes.
func (r *SystemRepositoryImpl) Update(ctx context.Context, sys *system.System) error {
	model, err := r.mapper.ToModel(sys)
	if err != nil {
		r.logger.Errorw("failed to map system entity to model", "id", sys.ID(), "error", err)
		return fmt.Errorf("failed to map system entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SystemModel{}).Where("id = ?", model.ID).
		Select("Name", "Status", "AssignedEmployeeID", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("employee already has an allocated system")
		}
		r.logger.Errorw("failed to update system", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update system: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("system not found")
	}

	return nil
}

// Count returns the total number of systems.
func (r *SystemRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.SystemModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count systems", "error", err)
		return 0, fmt.Errorf("failed to count systems: %w", err)
	}

	return count, nil
}

// hydrate maps a model to an entity with its claimed part IDs loaded.
func (r *SystemRepositoryImpl) hydrate(ctx context.Context, model *models.SystemModel) (*system.System, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var partIDs []uint
	if err := tx.Model(&models.PartModel{}).
		Where("assigned_system_id = ?", model.ID).
		Order("id ASC").
		Pluck("id", &partIDs).Error; err != nil {
		r.logger.Errorw("failed to load part IDs for system", "system_id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to load system parts: %w", err)
	}

	entity, err := r.mapper.ToEntity(model, partIDs)
	if err != nil {
		r.logger.Errorw("failed to map system model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map system: %w", err)
	}
	return entity, nil
}

// partIDsBySystem loads all claimed part IDs grouped by system in one query.
func (r *SystemRepositoryImpl) partIDsBySystem(ctx context.Context) (map[uint][]uint, error) {
	type claimRow struct {
		ID               uint
		AssignedSystemID uint
	}

	var rows []claimRow
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.PartModel{}).
		Select("id", "assigned_system_id").
		Where("assigned_system_id IS NOT NULL").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to load part claims", "error", err)
		return nil, fmt.Errorf("failed to load part claims: %w", err)
	}

	grouped := make(map[uint][]uint, len(rows))
	for _, row := range rows {
		grouped[row.AssignedSystemID] = append(grouped[row.AssignedSystemID], row.ID)
	}
	return grouped, nil
}
