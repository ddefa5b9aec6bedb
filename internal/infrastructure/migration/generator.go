package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"quickdesk/internal/shared/logger"
)

// DefaultScriptsPath is where the embedded scripts live in the source tree.
const DefaultScriptsPath = "./internal/infrastructure/migration/scripts"

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator writes new migration files next to the embedded scripts.
// A rebuild is needed before the binary picks them up.
type Generator struct {
	scriptsPath string
	now         func() time.Time
	logger      logger.Interface
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		now:         time.Now,
		logger:      log.With("component", "migration.generator"),
	}
}

// CreateMigration creates one goose file per dialect plus a golang-migrate
// up/down pair, all sharing the same timestamp version.
func (g *Generator) CreateMigration(name string) ([]string, error) {
	if !migrationNamePattern.MatchString(name) {
		return nil, fmt.Errorf("migration name must match %s", migrationNamePattern)
	}

	g.logger.Infow("creating new migration", "name", name)

	now := g.now()
	version := now.Format("20060102150405")
	created := now.Format("2006-01-02 15:04:05")

	files := map[string]string{
		filepath.Join(g.scriptsPath, "goose", "mysql", fmt.Sprintf("%s_%s.sql", version, name)):  gooseTemplate(name, created),
		filepath.Join(g.scriptsPath, "goose", "sqlite", fmt.Sprintf("%s_%s.sql", version, name)): gooseTemplate(name, created),
		filepath.Join(g.scriptsPath, "migrate", fmt.Sprintf("%s_%s.up.sql", version, name)):      upTemplate(name, created),
		filepath.Join(g.scriptsPath, "migrate", fmt.Sprintf("%s_%s.down.sql", version, name)):    downTemplate(name, created),
	}

	paths := make([]string, 0, len(files))
	for path, content := range files {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create scripts directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	g.logger.Infow("migration files created successfully", "files", paths)
	return paths, nil
}

func gooseTemplate(name, created string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- +goose Up

-- +goose Down
`, name, created)
}

func upTemplate(name, created string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

`, name, created)
}

func downTemplate(name, created string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s

`, name, created)
}
