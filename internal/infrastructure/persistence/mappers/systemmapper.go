package mappers

import (
	"fmt"

	"quartermaster/internal/domain/system"
	vo "quartermaster/internal/domain/system/valueobjects"
	"quartermaster/internal/infrastructure/persistence/models"
)

// SystemMapper handles conversion between System domain entities and GORM models.
//
// Part membership is not a column on the systems table; callers load the
// claimed part IDs from the parts table and pass them to ToEntity.
type SystemMapper interface {
	ToEntity(model *models.SystemModel, partIDs []uint) (*system.System, error)
	ToModel(entity *system.System) (*models.SystemModel, error)
}

type systemMapper struct{}

// NewSystemMapper creates a new SystemMapper.
func NewSystemMapper() SystemMapper {
	return &systemMapper{}
}

// ToEntity converts a GORM model to a domain entity.
func (m *systemMapper) ToEntity(model *models.SystemModel, partIDs []uint) (*system.System, error) {
	if model == nil {
		return nil, fmt.Errorf("system model is nil")
	}

	entity, err := system.Reconstruct(system.ReconstructParams{
		ID:                 model.ID,
		SID:                model.SID,
		Name:               model.Name,
		Status:             vo.SystemStatus(model.Status),
		AssignedEmployeeID: model.AssignedEmployeeID,
		PartIDs:            partIDs,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("reconstruct system: %w", err)
	}
	return entity, nil
}

// ToModel converts a domain entity to a GORM model.
func (m *systemMapper) ToModel(entity *system.System) (*models.SystemModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("system entity is nil")
	}

	return &models.SystemModel{
		ID:                 entity.ID(),
		SID:                entity.SID(),
		Name:               entity.Name(),
		Status:             entity.Status().String(),
		AssignedEmployeeID: entity.AssignedEmployeeID(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}
