// Package migration versions the QuickDesk schema.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"quickdesk/internal/shared/config"
	"quickdesk/internal/shared/logger"
)

// Manager handles database migrations with the configured strategy
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy named in the database config.
func NewManager(cfg config.DatabaseConfig, log logger.Interface) (*Manager, error) {
	var strategy Strategy

	switch cfg.MigrationStrategy {
	case "", StrategyGoose:
		s, err := NewGooseStrategy(cfg.Driver, log)
		if err != nil {
			return nil, err
		}
		strategy = s
	case StrategyGolangMigrate:
		if cfg.Driver != "mysql" {
			return nil, fmt.Errorf("%s requires the mysql driver, got %q", StrategyGolangMigrate, cfg.Driver)
		}
		strategy = NewGolangMigrateStrategy(log)
	case StrategyAutoMigrate:
		strategy = NewGormAutoMigrateStrategy(log)
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", cfg.MigrationStrategy)
	}

	return NewManagerWithStrategy(strategy, log), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Rollback(db *gorm.DB, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	return m.strategy.MigrateDown(db, steps)
}

func (m *Manager) Version(db *gorm.DB) (int64, error) {
	return m.strategy.Version(db)
}

// Status prints per-migration state when the strategy supports it,
// otherwise only the current version.
func (m *Manager) Status(db *gorm.DB) (string, error) {
	if s, ok := m.strategy.(*GooseStrategy); ok {
		if err := s.Status(db); err != nil {
			return "", err
		}
	}

	version, err := m.strategy.Version(db)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("strategy=%s version=%d", m.strategy.GetName(), version), nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
