package migration

import (
	"quartermaster/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PartModel{},
		&models.SystemModel{},
		&models.EmployeeModel{},
	}
}
