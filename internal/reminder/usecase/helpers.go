package usecase

import (
	"context"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"memory-mob/internal/model"
	"memory-mob/internal/reminder"
	repo "memory-mob/internal/reminder/repository"
	pkgErrors "memory-mob/pkg/errors"
)

// coalesce returns the first non-empty string.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

func (uc *implUseCase) chatIDFor(input string) string {
	if input = strings.TrimSpace(input); input != "" {
		return input
	}
	if uc.defaultChatID != "" {
		return uc.defaultChatID
	}
	return uuid.New().String()
}

func validateMessage(msg string) (string, error) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return "", pkgErrors.NewValidationError("message", "is required")
	}
	return msg, nil
}

func validateParts(d *civil.Date, t *civil.Time) error {
	if d != nil && !d.IsValid() {
		return pkgErrors.NewValidationError("date", "is not a valid calendar date")
	}
	if t != nil && !t.IsValid() {
		return pkgErrors.NewValidationError("time", "is not a valid time of day")
	}
	return nil
}

// getExisting loads a reminder by id. Malformed ids and the zero value both
// mean ErrNotFound.
func (uc *implUseCase) getExisting(ctx context.Context, op, id string) (model.Reminder, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return model.Reminder{}, reminder.ErrNotFound
	}
	id = parsed.String()
	rm, err := uc.repo.GetOneReminder(ctx, repo.GetOneReminderOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetOneReminder: %v", op, err)
		return model.Reminder{}, err
	}
	if rm.ID == "" {
		return model.Reminder{}, reminder.ErrNotFound
	}
	return rm, nil
}
