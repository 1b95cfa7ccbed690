package mappers

import (
	"fmt"

	"quartermaster/internal/domain/employee"
	"quartermaster/internal/infrastructure/persistence/models"
)

// EmployeeMapper handles conversion between Employee domain entities and GORM models.
type EmployeeMapper interface {
	ToEntity(model *models.EmployeeModel) (*employee.Employee, error)
	ToModel(entity *employee.Employee) (*models.EmployeeModel, error)
	ToEntities(models []*models.EmployeeModel) ([]*employee.Employee, error)
}

type employeeMapper struct{}

// NewEmployeeMapper creates a new EmployeeMapper.
func NewEmployeeMapper() EmployeeMapper {
	return &employeeMapper{}
}

// ToEntity converts a GORM model to a domain entity.
func (m *employeeMapper) ToEntity(model *models.EmployeeModel) (*employee.Employee, error) {
	if model == nil {
		return nil, fmt.Errorf("employee model is nil")
	}

	entity, err := employee.Reconstruct(employee.ReconstructParams{
		ID:          model.ID,
		SID:         model.SID,
		Name:        model.Name,
		Number:      model.Number,
		Email:       model.Email,
		Department:  model.Department,
		Designation: model.Designation,
		Phone:       model.Phone,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("reconstruct employee: %w", err)
	}
	return entity, nil
}

// ToModel converts a domain entity to a GORM model.
func (m *employeeMapper) ToModel(entity *employee.Employee) (*models.EmployeeModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("employee entity is nil")
	}

	return &models.EmployeeModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		Name:        entity.Name(),
		Number:      entity.Number(),
		Email:       entity.Email(),
		Department:  entity.Department(),
		Designation: entity.Designation(),
		Phone:       entity.Phone(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

// ToEntities converts a slice of GORM models to domain entities.
func (m *employeeMapper) ToEntities(employeeModels []*models.EmployeeModel) ([]*employee.Employee, error) {
	entities := make([]*employee.Employee, 0, len(employeeModels))
	for _, model := range employeeModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
