package reminder

import (
	"cloud.google.com/go/civil"

	"memory-mob/internal/model"
)

// Filter selects active reminders by status. FilterAll disables the status condition.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterPending Filter = "pending"
	FilterSent    Filter = "sent"
)

func (f Filter) IsValid() bool {
	return f == "" || f == FilterAll || f == FilterPending || f == FilterSent
}

// --- UseCase Inputs ---

// CreateInput carries a local date and time; nil parts take the builder defaults.
type CreateInput struct {
	Message string
	Date    *civil.Date
	Time    *civil.Time
	ChatID  string
}

type ListInput struct {
	Filter Filter
}

// UpdateInput reschedules a reminder. Empty fields keep the current value.
type UpdateInput struct {
	ID      string
	Message string
	Date    *civil.Date
	Time    *civil.Time
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Reminder model.Reminder
}

type ListOutput struct {
	Reminders []model.Reminder
	Counts    model.StatusCounts
}

type DetailOutput struct {
	Reminder model.Reminder
}

type UpdateOutput struct {
	Reminder model.Reminder
}
