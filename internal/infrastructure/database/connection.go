// Package database owns the process-wide gorm connection.
package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"quartermaster/internal/shared/config"
	"quartermaster/internal/shared/logger"
)

var (
	mu   sync.RWMutex
	conn *gorm.DB
)

// Init opens the MySQL connection and configures the pool. Must be called
// before Get.
func Init(cfg *config.DatabaseConfig) error {
	gl := gormlogger.New(slogWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	database, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger:      gl,
		PrepareStmt: true,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	mu.Lock()
	conn = database
	mu.Unlock()

	logger.Info("database connection established", "database", cfg.Database)
	return nil
}

// Get returns the shared connection, or nil before Init.
func Get() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return conn
}

func Close() error {
	mu.RLock()
	current := conn
	mu.RUnlock()

	if current == nil {
		return nil
	}
	sqlDB, err := current.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	logger.Info("database connection closed")
	return nil
}

// slogWriter routes gorm's printf-style log lines onto the structured logger
// at a level inferred from the message.
type slogWriter struct{}

func (slogWriter) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "error"):
		logger.Error("database error", "details", msg)
	case strings.Contains(lower, "slow sql"):
		logger.Warn("slow query", "details", msg)
	default:
		logger.Debug("database query", "details", msg)
	}
}
