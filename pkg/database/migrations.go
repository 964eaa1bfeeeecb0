package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent/Atlas
// cannot express. These must match the index in
// 20260811093045_create_task_queue_items.up.sql so the SQL-migration
// path and the Ent auto-migration path used by tests end up with the
// same physical schema.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Startup recovery scans only non-terminal rows, so terminal rows
	// are excluded from the index entirely.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS taskqueueitem_status_live
		ON task_queue_items (status, enqueued_at)
		WHERE status IN ('pending', 'waiting', 'in_progress')`)
	if err != nil {
		return fmt.Errorf("failed to create live status index: %w", err)
	}

	return nil
}
