// Package session holds the stateful voice orchestrator behind one open
// reminder form.
package session

import (
	"context"
	"errors"
	"sync"

	"memory-mob/internal/credential"
	"memory-mob/internal/model"
	"memory-mob/internal/reminder"
	"memory-mob/internal/voice"
	"memory-mob/pkg/audio"
	pkgErrors "memory-mob/pkg/errors"
	"memory-mob/pkg/log"
)

// Recorder is the microphone lifecycle, normally *audio.Recorder.
type Recorder interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) (audio.Clip, error)
	Cancel()
	Recording() bool
}

// Session sequences recording, transcription and extraction for one draft.
// States move idle -> recording -> transcribing -> idle. Credential failures
// park it in credential_prompt until SubmitCredential is called.
type Session struct {
	rec       Recorder
	voice     voice.UseCase
	creds     credential.UseCase
	reminders reminder.UseCase
	mode      voice.Mode
	l         log.Logger

	mu          sync.Mutex
	state       voice.State
	draft       voice.Draft
	pendingSlot model.CredentialSlot
	lastErr     error
	closed      bool
}

// New creates an idle session with an empty draft.
func New(rec Recorder, v voice.UseCase, creds credential.UseCase, reminders reminder.UseCase, mode voice.Mode, l log.Logger) (*Session, error) {
	if mode == "" {
		mode = voice.ModeExtract
	}
	if !mode.IsValid() {
		return nil, voice.ErrInvalidMode
	}
	return &Session{
		rec:       rec,
		voice:     v,
		creds:     creds,
		reminders: reminders,
		mode:      mode,
		l:         l,
		state:     voice.StateIdle,
	}, nil
}

// State reports the current orchestrator state.
func (s *Session) State() voice.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// PendingSlot names the credential the session is waiting for, if any.
func (s *Session) PendingSlot() (model.CredentialSlot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingSlot, s.state == voice.StateCredentialPrompt
}

// LastError returns the error of the most recent failed attempt.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Draft returns a copy of the current draft.
func (s *Session) Draft() voice.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetDraft replaces the draft. It is refused while a transcription is running.
func (s *Session) SetDraft(d voice.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return voice.ErrSessionClosed
	}
	if s.state == voice.StateTranscribing {
		return voice.ErrBusy
	}
	s.draft = d
	return nil
}

// Start opens the microphone.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.closed:
		return voice.ErrSessionClosed
	case s.state == voice.StateCredentialPrompt:
		return voice.ErrCredentialPending
	case s.state == voice.StateTranscribing:
		return voice.ErrBusy
	case s.state == voice.StateRecording:
		return audio.ErrAlreadyRecording
	}

	if err := s.rec.Start(ctx); err != nil {
		s.lastErr = err
		s.l.Warnf(ctx, "voice.session.Start: %v", err)
		return err
	}
	s.state = voice.StateRecording
	s.lastErr = nil
	return nil
}

// Stop finishes the recording and runs the pipeline. The merged draft is
// returned and kept. On failure the draft is left as it was before the
// attempt. Results that arrive after Close are discarded.
func (s *Session) Stop(ctx context.Context) (voice.Draft, error) {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return voice.Draft{}, voice.ErrSessionClosed
	case s.state == voice.StateTranscribing:
		s.mu.Unlock()
		return voice.Draft{}, voice.ErrBusy
	case s.state != voice.StateRecording:
		s.mu.Unlock()
		return voice.Draft{}, pkgErrors.ErrNoActiveSession
	}
	s.state = voice.StateTranscribing
	snapshot := s.draft
	s.mu.Unlock()

	clip, err := s.rec.Stop(ctx)
	if err != nil {
		return voice.Draft{}, s.fail(ctx, err)
	}

	out, err := s.voice.Process(ctx, voice.ProcessInput{Clip: clip, Draft: snapshot, Mode: s.mode})
	if err != nil {
		return voice.Draft{}, s.fail(ctx, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return voice.Draft{}, voice.ErrSessionClosed
	}
	s.draft = out.Draft
	s.state = voice.StateIdle
	s.lastErr = nil
	return out.Draft, nil
}

// fail rolls the session back after a failed Stop.
func (s *Session) fail(ctx context.Context, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return voice.ErrSessionClosed
	}

	s.lastErr = err
	s.state = voice.StateIdle
	if slot, ok := credentialSlot(err); ok {
		s.state = voice.StateCredentialPrompt
		s.pendingSlot = slot
	}
	s.l.Warnf(ctx, "voice.session.Stop: state=%s: %v", s.state, err)
	return err
}

// Cancel drops the recording without producing a clip. Safe in every state.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.Cancel()
	if s.state == voice.StateRecording {
		s.state = voice.StateIdle
	}
}

// Close releases the microphone. Any in-flight result is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.rec.Cancel()
}

// SubmitCredential stores key for the slot that failed and returns to idle.
// The failed operation is not re-run.
func (s *Session) SubmitCredential(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return voice.ErrSessionClosed
	}
	if s.state != voice.StateCredentialPrompt {
		return voice.ErrNoCredentialPrompt
	}
	if err := s.creds.Set(ctx, s.pendingSlot, key); err != nil {
		return err
	}
	s.state = voice.StateIdle
	s.pendingSlot = ""
	s.lastErr = nil
	return nil
}

// DismissCredential leaves the credential prompt without storing a key.
func (s *Session) DismissCredential() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == voice.StateCredentialPrompt {
		s.state = voice.StateIdle
		s.pendingSlot = ""
	}
}

// Submit creates a reminder from the draft. The draft is cleared on success
// and kept on failure.
func (s *Session) Submit(ctx context.Context, chatID string) (reminder.CreateOutput, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return reminder.CreateOutput{}, voice.ErrSessionClosed
	}
	if s.state != voice.StateIdle {
		s.mu.Unlock()
		return reminder.CreateOutput{}, voice.ErrBusy
	}
	d := s.draft
	s.mu.Unlock()

	out, err := s.reminders.Create(ctx, reminder.CreateInput{
		Message: d.Message,
		Date:    d.Date,
		Time:    d.Time,
		ChatID:  chatID,
	})
	if err != nil {
		return reminder.CreateOutput{}, err
	}

	s.mu.Lock()
	s.draft = voice.Draft{}
	s.mu.Unlock()
	return out, nil
}

func credentialSlot(err error) (model.CredentialSlot, bool) {
	if !errors.Is(err, pkgErrors.ErrCredentialMissing) && !errors.Is(err, pkgErrors.ErrCredentialRejected) {
		return "", false
	}
	slot, ok := pkgErrors.SlotOf(err)
	if !ok {
		return "", false
	}
	cs := model.CredentialSlot(slot)
	return cs, cs.IsValid()
}
