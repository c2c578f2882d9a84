package http

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"memory-mob/internal/model"
	"memory-mob/internal/reminder"
	"memory-mob/pkg/datemath"
	pkgErrors "memory-mob/pkg/errors"
	"memory-mob/pkg/response"
)

// --- Request DTOs ---

// createReq carries local Helsinki-style parts. Empty date means today and
// empty time means the default reminder clock.
type createReq struct {
	Message string `json:"message" binding:"required,max=2000"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	ChatID  string `json:"chat_id"`
}

func (r createReq) toInput() (reminder.CreateInput, error) {
	date, clock, err := parseParts(r.Date, r.Time)
	if err != nil {
		return reminder.CreateInput{}, err
	}
	return reminder.CreateInput{
		Message: r.Message,
		Date:    date,
		Time:    clock,
		ChatID:  strings.TrimSpace(r.ChatID),
	}, nil
}

type listReq struct {
	Filter string `form:"filter"`
}

func (r listReq) toInput() reminder.ListInput {
	return reminder.ListInput{Filter: reminder.Filter(strings.ToLower(r.Filter))}
}

// updateReq leaves empty fields unchanged.
type updateReq struct {
	ID      string `json:"-"`
	Message string `json:"message" binding:"max=2000"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

func (r updateReq) toInput() (reminder.UpdateInput, error) {
	date, clock, err := parseParts(r.Date, r.Time)
	if err != nil {
		return reminder.UpdateInput{}, err
	}
	return reminder.UpdateInput{
		ID:      r.ID,
		Message: r.Message,
		Date:    date,
		Time:    clock,
	}, nil
}

func parseParts(date, clock string) (*civil.Date, *civil.Time, error) {
	var d *civil.Date
	var t *civil.Time
	if s := strings.TrimSpace(date); s != "" {
		v, err := civil.ParseDate(s)
		if err != nil {
			return nil, nil, pkgErrors.NewValidationError("date", "must be YYYY-MM-DD")
		}
		d = &v
	}
	if s := strings.TrimSpace(clock); s != "" {
		v, err := datemath.ParseClock(s)
		if err != nil {
			return nil, nil, pkgErrors.NewValidationError("time", "must be HH:MM")
		}
		t = &v
	}
	return d, t, nil
}

// --- Response DTOs ---

type reminderResp struct {
	ID           string         `json:"id"`
	ChatID       string         `json:"chat_id"`
	Message      string         `json:"message"`
	ReminderTime time.Time      `json:"reminder_time"`
	LocalDate    response.Date  `json:"local_date"`
	LocalTime    response.Clock `json:"local_time"`
	Display      string         `json:"display"`
	Status       string         `json:"status"`
	DeletedAt    *time.Time     `json:"deleted_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type countsResp struct {
	All     int `json:"all"`
	Pending int `json:"pending"`
	Sent    int `json:"sent"`
}

type listResp struct {
	Reminders []reminderResp `json:"reminders"`
	Counts    countsResp     `json:"counts"`
}

func (h *handler) newReminderResp(rm model.Reminder) reminderResp {
	d, t := h.zone.UTCToLocal(rm.ReminderTime)
	return reminderResp{
		ID:           rm.ID,
		ChatID:       rm.ChatID,
		Message:      rm.Message,
		ReminderTime: rm.ReminderTime,
		LocalDate:    response.Date(d),
		LocalTime:    response.Clock(t),
		Display:      h.zone.FormatDisplay(rm.ReminderTime, h.locale),
		Status:       string(rm.Status),
		DeletedAt:    rm.DeletedAt,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func (h *handler) newListResp(o reminder.ListOutput) listResp {
	out := listResp{
		Reminders: make([]reminderResp, 0, len(o.Reminders)),
		Counts:    countsResp{All: o.Counts.All, Pending: o.Counts.Pending, Sent: o.Counts.Sent},
	}
	for _, rm := range o.Reminders {
		out.Reminders = append(out.Reminders, h.newReminderResp(rm))
	}
	return out
}
