package postgre

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is the reminders table as the delivery worker expects it.
const Schema = `
CREATE TABLE IF NOT EXISTS reminders (
	id            UUID PRIMARY KEY,
	chat_id       TEXT NOT NULL,
	message       TEXT NOT NULL,
	reminder_time TIMESTAMPTZ NOT NULL,
	status        TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'sent')),
	deleted_at    TIMESTAMPTZ,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS reminders_active_time_idx ON reminders (reminder_time) WHERE deleted_at IS NULL;`

// Migrate creates the reminders table when it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate reminders: %w", err)
	}
	return nil
}
