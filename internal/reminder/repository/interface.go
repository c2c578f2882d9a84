package repository

import (
	"context"

	"memory-mob/internal/model"
)

// Repository is the composed interface for the reminder data store.
type Repository interface {
	ReminderRepository
}

// ReminderRepository defines all data access methods for reminders. Rows are never
// hard-deleted; archiving sets deleted_at.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, opt CreateReminderOptions) (model.Reminder, error)
	GetOneReminder(ctx context.Context, opt GetOneReminderOptions) (model.Reminder, error)
	ListReminders(ctx context.Context, opt ListRemindersOptions) ([]model.Reminder, error)
	CountReminders(ctx context.Context) (model.StatusCounts, error)
	UpdateReminder(ctx context.Context, opt UpdateReminderOptions) (model.Reminder, error)
	SetDeletedAt(ctx context.Context, opt SetDeletedAtOptions) error
}
