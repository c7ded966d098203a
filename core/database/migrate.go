package database

import (
	"context"
	_ "embed"
	"fmt"

	"weav-api/core/logger"
)

//go:embed migrations/schema.sql
var schema string

// Migrate applies the idempotent schema.
func (d *Database) Migrate(ctx context.Context) error {
	if _, err := d.sqlx.ExecContext(ctx, schema); err != nil {
		logger.Error("Database:Migrate", err)
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Info("Database:Migrate:Applied")
	return nil
}
