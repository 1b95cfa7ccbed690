// Package migration brings the inventory schema up to date, either from the
// model structs (development) or from versioned SQL scripts.
package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"quartermaster/internal/shared/constants"
	"quartermaster/internal/shared/logger"
)

const scriptsDir = "./internal/infrastructure/migration/scripts"

// Manager runs the migration strategy chosen for the environment:
// auto-migrate in development, goose scripts everywhere else.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(environment string) *Manager {
	var strategy Strategy
	switch strings.ToLower(environment) {
	case constants.EnvTest, constants.EnvProduction:
		scriptsPath, _ := filepath.Abs(scriptsDir)
		strategy = NewGooseStrategy(scriptsPath)
	default:
		strategy = NewGormAutoMigrateStrategy()
	}
	return NewManagerWithStrategy(strategy)
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("running migrations", "strategy", m.strategy.Name())
	if err := m.strategy.Migrate(db, models...); err != nil {
		return fmt.Errorf("migrate with %s: %w", m.strategy.Name(), err)
	}
	return nil
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}
