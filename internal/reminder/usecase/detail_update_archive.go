package usecase

import (
	"context"

	"memory-mob/internal/model"
	"memory-mob/internal/reminder"
	repo "memory-mob/internal/reminder/repository"
)

// Detail retrieves a single reminder by ID. Returns ErrNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (reminder.DetailOutput, error) {
	rm, err := uc.getExisting(ctx, "Detail", id)
	if err != nil {
		return reminder.DetailOutput{}, err
	}
	return reminder.DetailOutput{Reminder: rm}, nil
}

// Update reschedules an active reminder and puts it back to pending.
// Unlike Create, the new instant may lie in the past.
func (uc *implUseCase) Update(ctx context.Context, input reminder.UpdateInput) (reminder.UpdateOutput, error) {
	if err := validateParts(input.Date, input.Time); err != nil {
		return reminder.UpdateOutput{}, err
	}

	existing, err := uc.getExisting(ctx, "Update", input.ID)
	if err != nil {
		return reminder.UpdateOutput{}, err
	}
	if existing.Archived() {
		return reminder.UpdateOutput{}, reminder.ErrArchived
	}

	msg, err := validateMessage(uc.coalesce(input.Message, existing.Message))
	if err != nil {
		return reminder.UpdateOutput{}, err
	}

	curDate, curTime := uc.zone.UTCToLocal(existing.ReminderTime)
	date, clock := input.Date, input.Time
	if date == nil {
		date = &curDate
	}
	if clock == nil {
		clock = &curTime
	}

	rm, err := uc.repo.UpdateReminder(ctx, repo.UpdateReminderOptions{
		ID:           existing.ID,
		Message:      msg,
		ReminderTime: uc.zone.Build(date, clock),
		Status:       model.StatusPending,
		UpdatedAt:    uc.zone.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateReminder: %v", err)
		return reminder.UpdateOutput{}, err
	}
	if rm.ID == "" {
		return reminder.UpdateOutput{}, reminder.ErrNotFound
	}
	return reminder.UpdateOutput{Reminder: rm}, nil
}

// Archive soft-deletes a reminder. Archiving an archived reminder is a no-op.
func (uc *implUseCase) Archive(ctx context.Context, id string) error {
	existing, err := uc.getExisting(ctx, "Archive", id)
	if err != nil {
		return err
	}
	if existing.Archived() {
		return nil
	}

	now := uc.zone.Now()
	if err := uc.repo.SetDeletedAt(ctx, repo.SetDeletedAtOptions{ID: existing.ID, DeletedAt: &now}); err != nil {
		uc.l.Errorf(ctx, "uc.Archive SetDeletedAt: %v", err)
		return err
	}
	return nil
}

// Restore brings an archived reminder back to the active list.
func (uc *implUseCase) Restore(ctx context.Context, id string) error {
	existing, err := uc.getExisting(ctx, "Restore", id)
	if err != nil {
		return err
	}
	if !existing.Archived() {
		return reminder.ErrNotArchived
	}

	if err := uc.repo.SetDeletedAt(ctx, repo.SetDeletedAtOptions{ID: existing.ID}); err != nil {
		uc.l.Errorf(ctx, "uc.Restore SetDeletedAt: %v", err)
		return err
	}
	return nil
}
