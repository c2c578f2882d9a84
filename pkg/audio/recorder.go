package audio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"
)

// drainTimeout bounds how long Stop waits for a stream to flush after it was
// asked to finish.
const drainTimeout = 3 * time.Second

// Recorder owns at most one recording session at a time.
type Recorder struct {
	device      Device
	constraints Constraints

	mu      sync.Mutex
	session *session
}

type session struct {
	stream Stream
	buf    bytes.Buffer
	done   chan struct{}
	err    error
}

func NewRecorder(device Device, c Constraints) *Recorder {
	return &Recorder{device: device, constraints: c}
}

// Recording reports whether a session is open.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session != nil
}

// Start opens the device and begins buffering audio.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session != nil {
		return ErrAlreadyRecording
	}

	stream, err := r.device.Open(ctx, r.constraints)
	if err != nil {
		return err
	}

	s := &session{stream: stream, done: make(chan struct{})}
	go s.pump()
	r.session = s
	return nil
}

// Stop ends the session and returns the captured audio as a WAV clip.
func (r *Recorder) Stop(ctx context.Context) (Clip, error) {
	s, err := r.detach()
	if err != nil {
		return Clip{}, err
	}

	if err := s.finish(ctx); err != nil {
		return Clip{}, err
	}

	if s.err != nil {
		return Clip{}, s.err
	}

	pcm := s.buf.Bytes()
	return Clip{
		Data:        EncodeWAV(pcm, r.constraints),
		ContentType: ContentTypeWAV,
		Duration:    pcmDuration(len(pcm), r.constraints),
	}, nil
}

// Cancel discards the current session, if any.
func (r *Recorder) Cancel() {
	s, err := r.detach()
	if err != nil {
		return
	}
	_ = s.stream.Close()
	<-s.done
}

func (r *Recorder) detach() (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session
	if s == nil {
		return nil, ErrNoActiveSession
	}
	r.session = nil
	return s, nil
}

// finish lets a Stopper stream flush to EOF before closing it. Streams
// without Stop are closed right away.
func (s *session) finish(ctx context.Context) error {
	if st, ok := s.stream.(Stopper); ok && st.Stop() == nil {
		timer := time.NewTimer(drainTimeout)
		defer timer.Stop()
		select {
		case <-s.done:
		case <-timer.C:
		case <-ctx.Done():
			_ = s.stream.Close()
			return ctx.Err()
		}
	}

	_ = s.stream.Close()
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// pump copies the stream into the buffer until the stream ends or is closed.
func (s *session) pump() {
	defer close(s.done)
	_, err := io.Copy(&s.buf, s.stream)
	if err != nil && !errors.Is(err, io.ErrClosedPipe) && !errors.Is(err, io.EOF) && !isClosedErr(err) {
		s.err = err
	}
}
