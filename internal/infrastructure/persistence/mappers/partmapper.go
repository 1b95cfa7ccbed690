package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"quartermaster/internal/domain/part"
	vo "quartermaster/internal/domain/part/valueobjects"
	"quartermaster/internal/infrastructure/persistence/models"
)

// PartMapper handles conversion between Part domain entities and GORM models.
type PartMapper interface {
	ToEntity(model *models.PartModel) (*part.Part, error)
	ToModel(entity *part.Part) (*models.PartModel, error)
	ToEntities(models []*models.PartModel) ([]*part.Part, error)
}

type partMapper struct{}

// NewPartMapper creates a new PartMapper.
func NewPartMapper() PartMapper {
	return &partMapper{}
}

// ToEntity converts a GORM model to a domain entity.
func (m *partMapper) ToEntity(model *models.PartModel) (*part.Part, error) {
	if model == nil {
		return nil, fmt.Errorf("part model is nil")
	}

	var specs map[string]any
	if len(model.Specs) > 0 {
		if err := json.Unmarshal(model.Specs, &specs); err != nil {
			return nil, fmt.Errorf("unmarshal part specs: %w", err)
		}
	}

	entity, err := part.Reconstruct(part.ReconstructParams{
		ID:               model.ID,
		SID:              model.SID,
		Type:             vo.PartType(model.Type),
		Barcode:          model.Barcode,
		SerialNumber:     model.SerialNumber,
		Brand:            model.Brand,
		Model:            model.Model,
		Specs:            specs,
		Status:           vo.PartStatus(model.Status),
		UnusableReason:   model.UnusableReason,
		AssignedSystemID: model.AssignedSystemID,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("reconstruct part: %w", err)
	}
	return entity, nil
}

// ToModel converts a domain entity to a GORM model.
func (m *partMapper) ToModel(entity *part.Part) (*models.PartModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("part entity is nil")
	}

	var specs datatypes.JSON
	if entity.Specs() != nil {
		raw, err := json.Marshal(entity.Specs())
		if err != nil {
			return nil, fmt.Errorf("marshal part specs: %w", err)
		}
		specs = datatypes.JSON(raw)
	}

	return &models.PartModel{
		ID:               entity.ID(),
		SID:              entity.SID(),
		Type:             entity.Type().String(),
		Barcode:          entity.Barcode(),
		SerialNumber:     entity.SerialNumber(),
		Brand:            entity.Brand(),
		Model:            entity.Model(),
		Specs:            specs,
		Status:           entity.Status().String(),
		UnusableReason:   entity.UnusableReason(),
		AssignedSystemID: entity.AssignedSystemID(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

// ToEntities converts a slice of GORM models to domain entities.
func (m *partMapper) ToEntities(partModels []*models.PartModel) ([]*part.Part, error) {
	entities := make([]*part.Part, 0, len(partModels))
	for _, model := range partModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
