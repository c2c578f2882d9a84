package usecase

import (
	"context"

	"memory-mob/internal/model"
	"memory-mob/internal/reminder"
	repo "memory-mob/internal/reminder/repository"
)

// List returns active reminders ordered by reminder time, plus the per-status counts.
func (uc *implUseCase) List(ctx context.Context, input reminder.ListInput) (reminder.ListOutput, error) {
	if !input.Filter.IsValid() {
		return reminder.ListOutput{}, reminder.ErrInvalidFilter
	}

	var status model.ReminderStatus
	if input.Filter != "" && input.Filter != reminder.FilterAll {
		status = model.ReminderStatus(input.Filter)
	}

	reminders, err := uc.repo.ListReminders(ctx, repo.ListRemindersOptions{Status: status})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListReminders: %v", err)
		return reminder.ListOutput{}, err
	}

	counts, err := uc.repo.CountReminders(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List CountReminders: %v", err)
		return reminder.ListOutput{}, err
	}

	return reminder.ListOutput{Reminders: reminders, Counts: counts}, nil
}

// ListArchived returns soft-deleted reminders, most recently archived first.
func (uc *implUseCase) ListArchived(ctx context.Context) (reminder.ListOutput, error) {
	reminders, err := uc.repo.ListReminders(ctx, repo.ListRemindersOptions{Archived: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListArchived ListReminders: %v", err)
		return reminder.ListOutput{}, err
	}
	return reminder.ListOutput{
		Reminders: reminders,
		Counts:    model.StatusCounts{All: len(reminders)},
	}, nil
}
