package model

import "time"

// ReminderStatus is the delivery state written by the service and consumed by the
// external delivery worker.
type ReminderStatus string

const (
	StatusPending ReminderStatus = "pending"
	StatusSent    ReminderStatus = "sent"
)

func (s ReminderStatus) IsValid() bool {
	return s == StatusPending || s == StatusSent
}

// Reminder is one scheduled message. ReminderTime, CreatedAt and UpdatedAt are UTC.
type Reminder struct {
	ID           string
	ChatID       string
	Message      string
	ReminderTime time.Time
	Status       ReminderStatus
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Archived reports whether the reminder has been soft-deleted.
func (r Reminder) Archived() bool {
	return r.DeletedAt != nil
}

// StatusCounts is the filter bar tally over active reminders.
type StatusCounts struct {
	All     int
	Pending int
	Sent    int
}
