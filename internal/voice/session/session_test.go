package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"memory-mob/internal/credential"
	"memory-mob/internal/model"
	"memory-mob/internal/reminder"
	"memory-mob/internal/voice"
	voiceUC "memory-mob/internal/voice/usecase"
	"memory-mob/pkg/audio"
	"memory-mob/pkg/datemath"
	"memory-mob/pkg/deepgram"
	pkgErrors "memory-mob/pkg/errors"
	"memory-mob/pkg/llmprovider"
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

type fakeRecorder struct {
	recording bool
	startErr  error
	stopErr   error
	cancels   int
}

func (r *fakeRecorder) Start(ctx context.Context) error {
	if r.startErr != nil {
		return r.startErr
	}
	r.recording = true
	return nil
}

func (r *fakeRecorder) Stop(ctx context.Context) (audio.Clip, error) {
	r.recording = false
	if r.stopErr != nil {
		return audio.Clip{}, r.stopErr
	}
	return audio.Clip{Data: []byte("pcm"), ContentType: audio.ContentTypeWAV}, nil
}

func (r *fakeRecorder) Cancel() {
	r.cancels++
	r.recording = false
}

func (r *fakeRecorder) Recording() bool { return r.recording }

type memCreds struct {
	keys map[model.CredentialSlot]string
}

func (m *memCreds) Get(ctx context.Context, slot model.CredentialSlot) (string, error) {
	if k := m.keys[slot]; k != "" {
		return k, nil
	}
	return "", &pkgErrors.CredentialError{Slot: string(slot), Err: pkgErrors.ErrCredentialMissing}
}

func (m *memCreds) Set(ctx context.Context, slot model.CredentialSlot, key string) error {
	m.keys[slot] = key
	return nil
}

func (m *memCreds) Clear(ctx context.Context, slot model.CredentialSlot) error {
	delete(m.keys, slot)
	return nil
}

func (m *memCreds) Status(ctx context.Context) ([]credential.SlotStatus, error) { return nil, nil }

// fakeSTT answers with a transcript or an error. When gate is set the call
// blocks until it is closed.
type fakeSTT struct {
	calls      int
	transcript string
	err        error
	gate       chan struct{}
	entered    chan struct{}
}

func (f *fakeSTT) Transcribe(ctx context.Context, apiKey string, a deepgram.Audio, opts deepgram.Options) (deepgram.Result, error) {
	f.calls++
	if f.entered != nil {
		close(f.entered)
	}
	if f.gate != nil {
		<-f.gate
	}
	return deepgram.Result{Transcript: f.transcript}, f.err
}

func (f *fakeSTT) Options() deepgram.Options { return deepgram.DefaultOptions }

type fakeLLM struct {
	text string
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{Content: llmprovider.TextMessage("assistant", f.text)}, nil
}

type fakeReminders struct {
	reminder.UseCase
	created []reminder.CreateInput
	err     error
}

func (f *fakeReminders) Create(ctx context.Context, in reminder.CreateInput) (reminder.CreateOutput, error) {
	if f.err != nil {
		return reminder.CreateOutput{}, f.err
	}
	f.created = append(f.created, in)
	return reminder.CreateOutput{Reminder: model.Reminder{ID: "r1", Message: in.Message}}, nil
}

type fixture struct {
	rec   *fakeRecorder
	stt   *fakeSTT
	llm   *fakeLLM
	creds *memCreds
	rems  *fakeReminders
	s     *Session
}

func newFixture(t *testing.T, mode voice.Mode) *fixture {
	t.Helper()
	zone, err := datemath.NewZone("")
	if err != nil {
		t.Fatalf("NewZone: %v", err)
	}
	zone = zone.WithClock(func() time.Time { return time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC) })

	f := &fixture{
		rec:   &fakeRecorder{},
		stt:   &fakeSTT{transcript: "buy milk"},
		llm:   &fakeLLM{text: `{"message":"buy milk","date":null,"time":null}`},
		creds: &memCreds{keys: map[model.CredentialSlot]string{model.SlotTranscription: "dg", model.SlotLLM: "gq"}},
		rems:  &fakeReminders{},
	}
	uc := voiceUC.New(f.stt, f.llm, f.creds, zone, voiceUC.DefaultConfig, nil, &mockLogger{})
	f.s, err = New(f.rec, uc, f.creds, f.rems, mode, &mockLogger{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestStopMergesExtraction(t *testing.T) {
	f := newFixture(t, voice.ModeExtract)
	ctx := context.Background()

	if err := f.s.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if f.s.State() != voice.StateRecording {
		t.Fatalf("state = %s", f.s.State())
	}

	d, err := f.s.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if d.Message != "buy milk" || d.Date != nil || d.Time != nil {
		t.Errorf("draft = %+v, want message only", d)
	}
	if f.s.State() != voice.StateIdle {
		t.Errorf("state = %s", f.s.State())
	}
}

func TestStopWithoutRecording(t *testing.T) {
	f := newFixture(t, voice.ModeExtract)
	if _, err := f.s.Stop(context.Background()); !errors.Is(err, pkgErrors.ErrNoActiveSession) {
		t.Errorf("err = %v", err)
	}
}

func TestStartTwice(t *testing.T) {
	f := newFixture(t, voice.ModeExtract)
	ctx := context.Background()
	_ = f.s.Start(ctx)
	if err := f.s.Start(ctx); !errors.Is(err, audio.ErrAlreadyRecording) {
		t.Errorf("err = %v", err)
	}
}

func TestStartPermissionDenied(t *testing.T) {
	f := newFixture(t, voice.ModeExtract)
	f.rec.startErr = pkgErrors.ErrPermissionDenied

	if err := f.s.Start(context.Background()); !errors.Is(err, pkgErrors.ErrPermissionDenied) {
		t.Fatalf("err = %v", err)
	}
	if f.s.State() != voice.StateIdle {
		t.Errorf("state = %s", f.s.State())
	}
}

func TestMissingCredentialPrompts(t *testing.T) {
	f := newFixture(t, voice.ModeExtract)
	delete(f.creds.keys, model.SlotTranscription)
	ctx := context.Background()
	_ = f.s.SetDraft(voice.Draft{Message: "keep me"})

	_ = f.s.Start(ctx)
	_, err := f.s.Stop(ctx)
	if !errors.Is(err, pkgErrors.ErrCredentialMissing) {
		t.Fatalf("err = %v", err)
	}
	if f.stt.calls != 0 {
		t.Error("transcription called without a key")
	}
	slot, prompting := f.s.PendingSlot()
	if !prompting || slot != model.SlotTranscription {
		t.Fatalf("prompt = %v %q", prompting, slot)
	}
	if f.s.Draft().Message != "keep me" {
		t.Errorf("draft changed on failure: %+v", f.s.Draft())
	}
	if err := f.s.Start(ctx); !errors.Is(err, voice.ErrCredentialPending) {
		t.Errorf("Start during prompt = %v", err)
	}

	if err := f.s.SubmitCredential(ctx, "new-key"); err != nil {
		t.Fatalf("SubmitCredential: %v", err)
	}
	if f.creds.keys[model.SlotTranscription] != "new-key" {
		t.Error("key not stored")
	}
	if f.s.State() != voice.StateIdle {
		t.Errorf("state = %s", f.s.State())
	}
	if f.stt.calls != 0 {
		t.Error("failed operation must not be re-run")
	}
}

func TestRejectedCredentialClearsAndPrompts(t *testing.T) {
	f := newFixture(t, voice.ModeExtract)
	f.stt.err = &pkgErrors.ProviderError{Provider: "deepgram", StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
	ctx := context.Background()

	_ = f.s.Start(ctx)
	_, err := f.s.Stop(ctx)
	if !errors.Is(err, pkgErrors.ErrCredentialRejected) {
		t.Fatalf("err = %v", err)
	}
	if _, ok := f.creds.keys[model.SlotTranscription]; ok {
		t.Error("rejected key still stored")
	}
	if f.s.State() != voice.StateCredentialPrompt {
		t.Errorf("state = %s", f.s.State())
	}
}

func TestProviderErrorRollsBack(t *testing.T) {
	f := newFixture(t, voice.ModeExtract)
	f.llm.text = "not json"
	ctx := context.Background()
	date := civil.Date{Year: 2026, Month: 3, Day: 1}
	_ = f.s.SetDraft(voice.Draft{Message: "before", Date: &date})

	_ = f.s.Start(ctx)
	if _, err := f.s.Stop(ctx); !errors.Is(err, pkgErrors.ErrMalformedResponse) {
		t.Fatalf("err = %v", err)
	}
	if f.s.State() != voice.StateIdle {
		t.Errorf("state = %s", f.s.State())
	}
	d := f.s.Draft()
	if d.Message != "before" || d.Date == nil || *d.Date != date {
		t.Errorf("draft = %+v", d)
	}
}

func TestCloseDiscardsInFlightResult(t *testing.T) {
	f := newFixture(t, voice.ModeTranscript)
	f.stt.gate = make(chan struct{})
	f.stt.entered = make(chan struct{})
	ctx := context.Background()
	_ = f.s.Start(ctx)

	var (
		wg   sync.WaitGroup
		err  error
		got  voice.Draft
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		got, err = f.s.Stop(ctx)
	}()

	<-f.stt.entered
	if _, busy := f.s.Stop(ctx); !errors.Is(busy, voice.ErrBusy) {
		t.Errorf("re-entrant Stop = %v", busy)
	}
	if serr := f.s.SetDraft(voice.Draft{Message: "x"}); !errors.Is(serr, voice.ErrBusy) {
		t.Errorf("SetDraft while transcribing = %v", serr)
	}
	f.s.Close()
	close(f.stt.gate)
	wg.Wait()

	if !errors.Is(err, voice.ErrSessionClosed) {
		t.Fatalf("err = %v", err)
	}
	if got.Message != "" || f.s.Draft().Message != "" {
		t.Errorf("result merged after close: %+v / %+v", got, f.s.Draft())
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t, voice.ModeExtract)
	f.s.Cancel()
	if f.rec.cancels != 1 || f.s.State() != voice.StateIdle {
		t.Errorf("idle cancel: cancels=%d state=%s", f.rec.cancels, f.s.State())
	}

	_ = f.s.Start(context.Background())
	f.s.Cancel()
	if f.rec.Recording() || f.s.State() != voice.StateIdle {
		t.Errorf("recording cancel: state=%s", f.s.State())
	}
}

func TestSubmit(t *testing.T) {
	f := newFixture(t, voice.ModeExtract)
	ctx := context.Background()
	clock := civil.Time{Hour: 8, Minute: 30}
	_ = f.s.SetDraft(voice.Draft{Message: "walk the dog", Time: &clock})

	out, err := f.s.Submit(ctx, "chat-1")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out.Reminder.ID != "r1" || len(f.rems.created) != 1 {
		t.Fatalf("created = %+v", f.rems.created)
	}
	in := f.rems.created[0]
	if in.Message != "walk the dog" || in.ChatID != "chat-1" || in.Date != nil || *in.Time != clock {
		t.Errorf("create input = %+v", in)
	}
	if f.s.Draft().Message != "" {
		t.Error("draft not cleared after submit")
	}
}

func TestSubmitValidationKeepsDraft(t *testing.T) {
	f := newFixture(t, voice.ModeExtract)
	f.rems.err = pkgErrors.NewValidationError("reminder_time", "must be in the future")
	_ = f.s.SetDraft(voice.Draft{Message: "late"})

	if _, err := f.s.Submit(context.Background(), ""); !errors.Is(err, pkgErrors.ErrValidation) {
		t.Fatalf("err = %v", err)
	}
	if f.s.Draft().Message != "late" {
		t.Error("draft lost on validation failure")
	}
}

func TestNewInvalidMode(t *testing.T) {
	if _, err := New(&fakeRecorder{}, nil, nil, nil, "loud", &mockLogger{}); !errors.Is(err, voice.ErrInvalidMode) {
		t.Errorf("err = %v", err)
	}
}
