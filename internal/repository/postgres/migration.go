package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
)

// schema locations relative to the usual working directories
var schemaPaths = []string{
	"script/migration/schema.sql",
	"../script/migration/schema.sql",
	"../../script/migration/schema.sql",
	"../../../script/migration/schema.sql",
}

func findSchema() (string, error) {
	for _, path := range schemaPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	wd, _ := os.Getwd()
	return "", fmt.Errorf("schema.sql not found in %v (working dir %s)", schemaPaths, wd)
}

// RunMigrations executes schema.sql. Every statement in it is idempotent, so
// this runs on each start.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	path, err := findSchema()
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute %s: %w", path, err)
	}
	return nil
}
