package repository

import (
	"time"

	"memory-mob/internal/model"
)

// CreateReminderOptions holds the full row to insert. Timestamps are set by the caller.
type CreateReminderOptions struct {
	ID           string
	ChatID       string
	Message      string
	ReminderTime time.Time
	Status       model.ReminderStatus
	CreatedAt    time.Time
}

// GetOneReminderOptions holds filter parameters for fetching a single reminder.
type GetOneReminderOptions struct {
	ID string
}

// ListRemindersOptions selects active (deleted_at IS NULL) or archived rows.
// Active rows are ordered by reminder_time ascending, archived ones by deleted_at descending.
type ListRemindersOptions struct {
	Archived bool
	Status   model.ReminderStatus
}

// UpdateReminderOptions holds the editable columns of a reminder.
type UpdateReminderOptions struct {
	ID           string
	Message      string
	ReminderTime time.Time
	Status       model.ReminderStatus
	UpdatedAt    time.Time
}

// SetDeletedAtOptions archives (DeletedAt set) or restores (DeletedAt nil) a reminder.
type SetDeletedAtOptions struct {
	ID        string
	DeletedAt *time.Time
}
