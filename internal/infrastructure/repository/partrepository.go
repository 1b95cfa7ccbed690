package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quartermaster/internal/domain/part"
	"quartermaster/internal/infrastructure/persistence/mappers"
	"quartermaster/internal/infrastructure/persistence/models"
	"quartermaster/internal/shared/db"
	"quartermaster/internal/shared/errors"
	"quartermaster/internal/shared/logger"
)

// PartRepositoryImpl implements the part.Repository interface.
type PartRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PartMapper
	logger logger.Interface
}

// NewPartRepository creates a new part repository instance.
func NewPartRepository(db *gorm.DB, logger logger.Interface) part.Repository {
	return &PartRepositoryImpl{
		db:     db,
		mapper: mappers.NewPartMapper(),
		logger: logger,
	}
}

// Create creates a new part in the database.
func (r *PartRepositoryImpl) Create(ctx context.Context, p *part.Part) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map part entity to model", "error", err)
		return fmt.Errorf("failed to map part entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return duplicatePartError(err)
		}
		r.logger.Errorw("failed to create part in database", "error", err)
		return fmt.Errorf("failed to create part: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set part ID", "error", err)
		return fmt.Errorf("failed to set part ID: %w", err)
	}

	r.logger.Infow("part created successfully", "id", model.ID, "sid", model.SID, "type", model.Type)
	return nil
}

// GetByID retrieves a part by its internal ID.
func (r *PartRepositoryImpl) GetByID(ctx context.Context, id uint) (*part.Part, error) {
	var model models.PartModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get part by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get part: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySID retrieves a part by its external SID.
func (r *PartRepositoryImpl) GetBySID(ctx context.Context, sid string) (*part.Part, error) {
	var model models.PartModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get part by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get part: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySIDs retrieves multiple parts by their external SIDs.
func (r *PartRepositoryImpl) GetBySIDs(ctx context.Context, sids []string) ([]*part.Part, error) {
	if len(sids) == 0 {
		return nil, nil
	}

	var partModels []*models.PartModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid IN ?", sids).Find(&partModels).Error; err != nil {
		r.logger.Errorw("failed to get parts by SIDs", "count", len(sids), "error", err)
		return nil, fmt.Errorf("failed to get parts: %w", err)
	}

	return r.mapper.ToEntities(partModels)
}

// FindBySystemID retrieves all parts currently claimed by a system.
func (r *PartRepositoryImpl) FindBySystemID(ctx context.Context, systemID uint) ([]*part.Part, error) {
	var partModels []*models.PartModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("assigned_system_id = ?", systemID).Order("id ASC").Find(&partModels).Error; err != nil {
		r.logger.Errorw("failed to find parts by system ID", "system_id", systemID, "error", err)
		return nil, fmt.Errorf("failed to find parts: %w", err)
	}

	return r.mapper.ToEntities(partModels)
}

// List retrieves parts matching the filter.
func (r *PartRepositoryImpl) List(ctx context.Context, filter part.ListFilter) ([]*part.Part, error) {
	var partModels []*models.PartModel

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PartModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if err := query.Order("created_at DESC").Find(&partModels).Error; err != nil {
		r.logger.Errorw("failed to list parts", "error", err)
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	return r.mapper.ToEntities(partModels)
}

// Update updates an existing part's attributes and status.
func (r *PartRepositoryImpl) Update(ctx context.Context, p *part.Part) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map part entity to model", "id", p.ID(), "error", err)
		return fmt.Errorf("failed to map part entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.PartModel{}).Where("id = ?", model.ID).
		Select("Type", "Barcode", "SerialNumber", "Brand", "Model", "Specs", "Status", "UnusableReason", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return duplicatePartError(result.Error)
		}
		r.logger.Errorw("failed to update part", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("part not found")
	}

	return nil
}

// Delete removes a part unconditionally.
func (r *PartRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PartModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete part", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("part not found")
	}

	r.logger.Infow("part deleted", "id", id)
	return nil
}

// Count returns the total number of parts.
func (r *PartRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.PartModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count parts", "error", err)
		return 0, fmt.Errorf("failed to count parts: %w", err)
	}

	return count, nil
}

// ClaimForSystem atomically claims every listed part for the given system.
// The conditional WHERE only matches unclaimed parts, so a rows-affected
// mismatch means another writer claimed one of them first.
func (r *PartRepositoryImpl) ClaimForSystem(ctx context.Context, partIDs []uint, systemID uint) error {
	if len(partIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.PartModel{}).
		Where("id IN ? AND assigned_system_id IS NULL", partIDs).
		Update("assigned_system_id", systemID)
	if result.Error != nil {
		r.logger.Errorw("failed to claim parts for system", "system_id", systemID, "error", result.Error)
		return fmt.Errorf("failed to claim parts: %w", result.Error)
	}
	if result.RowsAffected != int64(len(partIDs)) {
		r.logger.Warnw("part claim lost race",
			"system_id", systemID,
			"requested", len(partIDs),
			"claimed", result.RowsAffected,
		)
		return errors.NewConflictError("one or more parts are already assigned to a system")
	}

	return nil
}

// ReleaseFromSystem clears the claim of every part held by the system.
func (r *PartRepositoryImpl) ReleaseFromSystem(ctx context.Context, systemID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.PartModel{}).
		Where("assigned_system_id = ?", systemID).
		Update("assigned_system_id", nil)
	if result.Error != nil {
		r.logger.Errorw("failed to release parts from system", "system_id", systemID, "error", result.Error)
		return fmt.Errorf("failed to release parts: %w", result.Error)
	}

	r.logger.Infow("parts released from system", "system_id", systemID, "count", result.RowsAffected)
	return nil
}

// duplicatePartError maps a unique index violation to a field-keyed conflict.
func duplicatePartError(err error) error {
	msg := err.Error()
	switch {
	case containsAny(msg, "idx_part_barcode", "barcode"):
		return errors.NewFieldConflictError("barcode", "barcode already exists")
	case containsAny(msg, "idx_part_serial_number", "serial_number"):
		return errors.NewFieldConflictError("serial_number", "serial number already exists")
	default:
		return errors.NewConflictError("part already exists")
	}
}
