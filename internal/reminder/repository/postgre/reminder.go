package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"memory-mob/internal/model"
	repo "memory-mob/internal/reminder/repository"
)

const reminderColumns = `id, chat_id, message, reminder_time, status, deleted_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(s rowScanner) (model.Reminder, error) {
	var (
		rm        model.Reminder
		status    string
		deletedAt sql.NullTime
	)
	if err := s.Scan(&rm.ID, &rm.ChatID, &rm.Message, &rm.ReminderTime, &status, &deletedAt, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
		return model.Reminder{}, err
	}
	rm.Status = model.ReminderStatus(status)
	rm.ReminderTime = rm.ReminderTime.UTC()
	rm.CreatedAt = rm.CreatedAt.UTC()
	rm.UpdatedAt = rm.UpdatedAt.UTC()
	if deletedAt.Valid {
		t := deletedAt.Time.UTC()
		rm.DeletedAt = &t
	}
	return rm, nil
}

// CreateReminder inserts a new reminder row and returns the stored entity.
func (r *implRepository) CreateReminder(ctx context.Context, opt repo.CreateReminderOptions) (model.Reminder, error) {
	query := `
		INSERT INTO reminders (id, chat_id, message, reminder_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING ` + reminderColumns

	rm, err := scanReminder(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.ChatID, opt.Message, opt.ReminderTime.UTC(), string(opt.Status), opt.CreatedAt.UTC(),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReminder"), err)
		return model.Reminder{}, repo.ErrFailedToInsert
	}
	return rm, nil
}

// GetOneReminder retrieves a single reminder, archived or not.
// Returns zero-value Reminder (ID == "") when not found.
func (r *implRepository) GetOneReminder(ctx context.Context, opt repo.GetOneReminderOptions) (model.Reminder, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM reminders WHERE %s LIMIT 1", reminderColumns, mods)

	rm, err := scanReminder(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reminder{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneReminder"), err)
		return model.Reminder{}, repo.ErrFailedToGet
	}
	return rm, nil
}

// ListReminders returns active or archived reminders in their display order.
func (r *implRepository) ListReminders(ctx context.Context, opt repo.ListRemindersOptions) ([]model.Reminder, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM reminders %s", reminderColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReminders"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	reminders := make([]model.Reminder, 0)
	for rows.Next() {
		rm, err := scanReminder(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListReminders"), err)
			return nil, repo.ErrFailedToList
		}
		reminders = append(reminders, rm)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListReminders"), err)
		return nil, repo.ErrFailedToList
	}
	return reminders, nil
}

// CountReminders tallies active reminders per status.
func (r *implRepository) CountReminders(ctx context.Context) (model.StatusCounts, error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'sent')
		FROM reminders
		WHERE deleted_at IS NULL`

	var c model.StatusCounts
	if err := r.db.QueryRowContext(ctx, query).Scan(&c.All, &c.Pending, &c.Sent); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountReminders"), err)
		return model.StatusCounts{}, repo.ErrFailedToCount
	}
	return c, nil
}

// UpdateReminder writes the editable columns and returns the updated entity.
// Returns zero-value Reminder when the id does not exist.
func (r *implRepository) UpdateReminder(ctx context.Context, opt repo.UpdateReminderOptions) (model.Reminder, error) {
	query := `
		UPDATE reminders
		SET message = $1, reminder_time = $2, status = $3, updated_at = $4
		WHERE id = $5
		RETURNING ` + reminderColumns

	rm, err := scanReminder(r.db.QueryRowContext(ctx, query,
		opt.Message, opt.ReminderTime.UTC(), string(opt.Status), opt.UpdatedAt.UTC(), opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reminder{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateReminder"), err)
		return model.Reminder{}, repo.ErrFailedToUpdate
	}
	return rm, nil
}

// SetDeletedAt archives or restores a reminder.
func (r *implRepository) SetDeletedAt(ctx context.Context, opt repo.SetDeletedAtOptions) error {
	const query = `UPDATE reminders SET deleted_at = $1 WHERE id = $2`

	var deletedAt any
	if opt.DeletedAt != nil {
		deletedAt = opt.DeletedAt.UTC()
	}
	if _, err := r.db.ExecContext(ctx, query, deletedAt, opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetDeletedAt"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
