package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"memory-mob/internal/model"
	"memory-mob/internal/reminder"
	repo "memory-mob/internal/reminder/repository"
	"memory-mob/pkg/datemath"
	pkgErrors "memory-mob/pkg/errors"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	rows       map[string]model.Reminder
	createCall int
	lastCreate repo.CreateReminderOptions
	lastUpdate repo.UpdateReminderOptions
	lastList   repo.ListRemindersOptions
	lastDelete repo.SetDeletedAtOptions
	counts     model.StatusCounts
	failGet    error
	getCalls   int
}

func newMockRepo(rows ...model.Reminder) *mockRepo {
	m := &mockRepo{rows: map[string]model.Reminder{}}
	for _, r := range rows {
		m.rows[r.ID] = r
	}
	return m
}

func (m *mockRepo) CreateReminder(ctx context.Context, opt repo.CreateReminderOptions) (model.Reminder, error) {
	m.createCall++
	m.lastCreate = opt
	rm := model.Reminder{
		ID: opt.ID, ChatID: opt.ChatID, Message: opt.Message, ReminderTime: opt.ReminderTime,
		Status: opt.Status, CreatedAt: opt.CreatedAt, UpdatedAt: opt.CreatedAt,
	}
	m.rows[rm.ID] = rm
	return rm, nil
}

func (m *mockRepo) GetOneReminder(ctx context.Context, opt repo.GetOneReminderOptions) (model.Reminder, error) {
	m.getCalls++
	if m.failGet != nil {
		return model.Reminder{}, m.failGet
	}
	return m.rows[opt.ID], nil
}

func (m *mockRepo) ListReminders(ctx context.Context, opt repo.ListRemindersOptions) ([]model.Reminder, error) {
	m.lastList = opt
	var out []model.Reminder
	for _, r := range m.rows {
		if r.Archived() == opt.Archived && (opt.Status == "" || r.Status == opt.Status) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepo) CountReminders(ctx context.Context) (model.StatusCounts, error) {
	return m.counts, nil
}

func (m *mockRepo) UpdateReminder(ctx context.Context, opt repo.UpdateReminderOptions) (model.Reminder, error) {
	m.lastUpdate = opt
	rm, ok := m.rows[opt.ID]
	if !ok {
		return model.Reminder{}, nil
	}
	rm.Message, rm.ReminderTime, rm.Status, rm.UpdatedAt = opt.Message, opt.ReminderTime, opt.Status, opt.UpdatedAt
	m.rows[opt.ID] = rm
	return rm, nil
}

func (m *mockRepo) SetDeletedAt(ctx context.Context, opt repo.SetDeletedAtOptions) error {
	m.lastDelete = opt
	rm := m.rows[opt.ID]
	rm.DeletedAt = opt.DeletedAt
	m.rows[opt.ID] = rm
	return nil
}

const (
	reminderID = "6f1c2a9e-4b7d-4c2e-9a61-0d3f5b8e7c21"
	missingID  = "0b0e8c4d-2f6a-4d9b-8e1c-5a7f3c2d1e90"
)

// now is Thursday 2026-02-19 12:00 Helsinki.
var now = time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, r *mockRepo, defaultChat string) *implUseCase {
	t.Helper()
	z, err := datemath.NewZone("Europe/Helsinki")
	if err != nil {
		t.Fatalf("NewZone: %v", err)
	}
	return New(r, z.WithClock(func() time.Time { return now }), defaultChat, &mockLogger{})
}

func datePtr(y int, m time.Month, d int) *civil.Date { return &civil.Date{Year: y, Month: m, Day: d} }
func clockPtr(h, m int) *civil.Time                 { return &civil.Time{Hour: h, Minute: m} }

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		input    reminder.CreateInput
		wantTime time.Time
		wantErr  error
		wantChat string
		wantMsg  string
		defChat  string
	}{
		{
			name:      "defaults to today 21:00",
			input:     reminder.CreateInput{Message: "  buy milk  "},
			wantTime: time.Date(2026, 2, 19, 19, 0, 0, 0, time.UTC),
			wantChat: "default-chat",
			wantMsg:  "buy milk",
			defChat:  "default-chat",
		},
		{
			name:      "date only",
			input:     reminder.CreateInput{Message: "dentist", Date: datePtr(2026, 2, 20), ChatID: "42"},
			wantTime: time.Date(2026, 2, 20, 19, 0, 0, 0, time.UTC),
			wantChat: "42",
			wantMsg:  "dentist",
		},
		{
			name:      "time only later today",
			input:     reminder.CreateInput{Message: "call mom", Time: clockPtr(13, 30), ChatID: "42"},
			wantTime: time.Date(2026, 2, 19, 11, 30, 0, 0, time.UTC),
			wantChat: "42",
			wantMsg:  "call mom",
		},
		{
			name:    "time already passed today",
			input:   reminder.CreateInput{Message: "breakfast", Time: clockPtr(8, 30)},
			wantErr: pkgErrors.ErrValidation,
		},
		{
			name:    "exactly now is not the future",
			input:   reminder.CreateInput{Message: "now", Time: clockPtr(12, 0)},
			wantErr: pkgErrors.ErrValidation,
		},
		{
			name:    "empty message",
			input:   reminder.CreateInput{Message: "   ", Date: datePtr(2026, 3, 1)},
			wantErr: pkgErrors.ErrValidation,
		},
		{
			name:    "invalid date",
			input:   reminder.CreateInput{Message: "x", Date: datePtr(2026, 2, 30)},
			wantErr: pkgErrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMockRepo()
			uc := newTestUseCase(t, r, tt.defChat)

			out, err := uc.Create(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
				}
				if r.createCall != 0 {
					t.Fatal("repository insert must not be called on validation failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.createCall != 1 {
				t.Fatalf("insert called %d times", r.createCall)
			}
			if !out.Reminder.ReminderTime.Equal(tt.wantTime) {
				t.Errorf("reminder time = %v, want %v", out.Reminder.ReminderTime, tt.wantTime)
			}
			if out.Reminder.Status != model.StatusPending {
				t.Errorf("status = %s", out.Reminder.Status)
			}
			if out.Reminder.ChatID != tt.wantChat {
				t.Errorf("chat id = %q, want %q", out.Reminder.ChatID, tt.wantChat)
			}
			if out.Reminder.ID == "" || !r.lastCreate.CreatedAt.Equal(now) {
				t.Errorf("id/created_at not set: %+v", r.lastCreate)
			}
			if out.Reminder.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", out.Reminder.Message, tt.wantMsg)
			}
		})
	}
}

func TestCreateWithoutChatUsesUUID(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(t, r, "")
	out, err := uc.Create(context.Background(), reminder.CreateInput{Message: "x", Date: datePtr(2026, 3, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Reminder.ChatID) != 36 {
		t.Errorf("expected a uuid chat id, got %q", out.Reminder.ChatID)
	}
}

func TestList(t *testing.T) {
	deleted := now.Add(-time.Hour)
	r := newMockRepo(
		model.Reminder{ID: "a", Status: model.StatusPending},
		model.Reminder{ID: "b", Status: model.StatusSent},
		model.Reminder{ID: "c", Status: model.StatusPending, DeletedAt: &deleted},
	)
	r.counts = model.StatusCounts{All: 2, Pending: 1, Sent: 1}
	uc := newTestUseCase(t, r, "")

	out, err := uc.List(context.Background(), reminder.ListInput{Filter: reminder.FilterSent})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Reminders) != 1 || out.Reminders[0].ID != "b" {
		t.Errorf("sent filter returned %+v", out.Reminders)
	}
	if out.Counts != r.counts {
		t.Errorf("counts = %+v", out.Counts)
	}

	if _, err := uc.List(context.Background(), reminder.ListInput{Filter: reminder.FilterAll}); err != nil || r.lastList.Status != "" {
		t.Errorf("all filter should not constrain status: %+v, %v", r.lastList, err)
	}

	if _, err := uc.List(context.Background(), reminder.ListInput{Filter: "archived"}); !errors.Is(err, reminder.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}

	archived, err := uc.ListArchived(context.Background())
	if err != nil || len(archived.Reminders) != 1 || archived.Reminders[0].ID != "c" {
		t.Errorf("ListArchived = %+v, %v", archived, err)
	}
	if !r.lastList.Archived {
		t.Error("ListArchived must ask for archived rows")
	}
}

func TestUpdate(t *testing.T) {
	existing := model.Reminder{
		ID:           reminderID,
		Message:      "old",
		ReminderTime: time.Date(2026, 2, 18, 19, 0, 0, 0, time.UTC), // yesterday 21:00 local
		Status:       model.StatusSent,
	}

	t.Run("keeps unspecified parts and resets status", func(t *testing.T) {
		r := newMockRepo(existing)
		uc := newTestUseCase(t, r, "")

		out, err := uc.Update(context.Background(), reminder.UpdateInput{ID: reminderID, Time: clockPtr(8, 0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Past instants are allowed on edit.
		want := time.Date(2026, 2, 18, 6, 0, 0, 0, time.UTC)
		if !out.Reminder.ReminderTime.Equal(want) {
			t.Errorf("reminder time = %v, want %v", out.Reminder.ReminderTime, want)
		}
		if out.Reminder.Message != "old" || out.Reminder.Status != model.StatusPending {
			t.Errorf("unexpected reminder: %+v", out.Reminder)
		}
		if !r.lastUpdate.UpdatedAt.Equal(now) {
			t.Errorf("updated_at = %v", r.lastUpdate.UpdatedAt)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(t, newMockRepo(), "")
		if _, err := uc.Update(context.Background(), reminder.UpdateInput{ID: missingID}); !errors.Is(err, reminder.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("archived", func(t *testing.T) {
		at := now
		archived := existing
		archived.DeletedAt = &at
		uc := newTestUseCase(t, newMockRepo(archived), "")
		if _, err := uc.Update(context.Background(), reminder.UpdateInput{ID: reminderID, Message: "x"}); !errors.Is(err, reminder.ErrArchived) {
			t.Errorf("expected ErrArchived, got %v", err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		r := newMockRepo(existing)
		r.failGet = repo.ErrFailedToGet
		uc := newTestUseCase(t, r, "")
		if _, err := uc.Update(context.Background(), reminder.UpdateInput{ID: reminderID}); !errors.Is(err, repo.ErrFailedToGet) {
			t.Errorf("expected ErrFailedToGet, got %v", err)
		}
	})
}

func TestArchiveRestore(t *testing.T) {
	r := newMockRepo(model.Reminder{ID: reminderID, Status: model.StatusPending})
	uc := newTestUseCase(t, r, "")
	ctx := context.Background()

	if err := uc.Restore(ctx, reminderID); !errors.Is(err, reminder.ErrNotArchived) {
		t.Fatalf("Restore active: %v", err)
	}

	if err := uc.Archive(ctx, reminderID); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if r.lastDelete.DeletedAt == nil || !r.lastDelete.DeletedAt.Equal(now) {
		t.Fatalf("deleted_at = %v", r.lastDelete.DeletedAt)
	}

	if err := uc.Restore(ctx, reminderID); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if r.rows[reminderID].DeletedAt != nil {
		t.Error("restore must clear deleted_at")
	}

	if err := uc.Archive(ctx, missingID); !errors.Is(err, reminder.ErrNotFound) {
		t.Errorf("Archive missing: %v", err)
	}
	if _, err := uc.Detail(ctx, ""); !errors.Is(err, reminder.ErrNotFound) {
		t.Errorf("Detail empty id: %v", err)
	}
}

func TestMalformedIDIsNotFound(t *testing.T) {
	r := newMockRepo(model.Reminder{ID: reminderID, Status: model.StatusPending})
	uc := newTestUseCase(t, r, "")
	ctx := context.Background()

	for _, id := range []string{"abc", "r1", "6f1c2a9e", "' OR 1=1 --"} {
		t.Run(id, func(t *testing.T) {
			if _, err := uc.Detail(ctx, id); !errors.Is(err, reminder.ErrNotFound) {
				t.Errorf("Detail: %v", err)
			}
			if _, err := uc.Update(ctx, reminder.UpdateInput{ID: id, Message: "x"}); !errors.Is(err, reminder.ErrNotFound) {
				t.Errorf("Update: %v", err)
			}
			if err := uc.Archive(ctx, id); !errors.Is(err, reminder.ErrNotFound) {
				t.Errorf("Archive: %v", err)
			}
			if err := uc.Restore(ctx, id); !errors.Is(err, reminder.ErrNotFound) {
				t.Errorf("Restore: %v", err)
			}
		})
	}
	if r.getCalls != 0 {
		t.Errorf("repository queried %d times for malformed ids", r.getCalls)
	}
}
