package usecase

import (
	"context"

	"github.com/google/uuid"

	"memory-mob/internal/model"
	"memory-mob/internal/reminder"
	repo "memory-mob/internal/reminder/repository"
	pkgErrors "memory-mob/pkg/errors"
)

// Create resolves the local date/time into a UTC instant and stores a pending reminder.
// The instant must lie strictly after now; otherwise nothing is written.
func (uc *implUseCase) Create(ctx context.Context, input reminder.CreateInput) (reminder.CreateOutput, error) {
	msg, err := validateMessage(input.Message)
	if err != nil {
		return reminder.CreateOutput{}, err
	}
	if err := validateParts(input.Date, input.Time); err != nil {
		return reminder.CreateOutput{}, err
	}

	now := uc.zone.Now()
	when := uc.zone.Build(input.Date, input.Time)
	if !when.After(now) {
		return reminder.CreateOutput{}, pkgErrors.NewValidationError("reminder_time", "must be in the future")
	}

	rm, err := uc.repo.CreateReminder(ctx, repo.CreateReminderOptions{
		ID:           uuid.New().String(),
		ChatID:       uc.chatIDFor(input.ChatID),
		Message:      msg,
		ReminderTime: when,
		Status:       model.StatusPending,
		CreatedAt:    now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateReminder: %v", err)
		return reminder.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "reminder %s scheduled for %s", rm.ID, rm.ReminderTime.Format("2006-01-02T15:04Z07:00"))
	return reminder.CreateOutput{Reminder: rm}, nil
}
