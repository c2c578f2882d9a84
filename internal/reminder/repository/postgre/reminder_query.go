package postgre

import (
	"fmt"
	"strings"

	repo "memory-mob/internal/reminder/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneReminder.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneReminderOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER clause for ListReminders.
func (r *implRepository) buildListQuery(opt repo.ListRemindersOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Archived {
		conditions = append(conditions, "deleted_at IS NOT NULL")
	} else {
		conditions = append(conditions, "deleted_at IS NULL")
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, string(opt.Status))
	}

	orderBy := "reminder_time ASC"
	if opt.Archived {
		orderBy = "deleted_at DESC"
	}

	return fmt.Sprintf("WHERE %s ORDER BY %s", strings.Join(conditions, " AND "), orderBy), args
}
