package audio

import (
	"context"
	"errors"
	"io"
	"time"

	pkgErrors "memory-mob/pkg/errors"
)

// Constraints is the capture profile requested from the microphone.
type Constraints struct {
	ChannelCount     int
	SampleRate       int
	EchoCancellation bool
	NoiseSuppression bool
}

// DefaultConstraints is the fixed voice profile: mono, 16 kHz, with echo
// cancellation and noise suppression requested.
var DefaultConstraints = Constraints{
	ChannelCount:     1,
	SampleRate:       16000,
	EchoCancellation: true,
	NoiseSuppression: true,
}

// Stream is an open microphone producing signed 16-bit little-endian PCM.
// Closing it releases the device.
type Stream interface {
	io.ReadCloser
}

// Stopper is implemented by streams that can finish gracefully: after Stop
// the stream flushes pending audio and then reports EOF.
type Stopper interface {
	Stop() error
}

// Device opens microphone streams.
type Device interface {
	Open(ctx context.Context, c Constraints) (Stream, error)
}

// Clip is one finished recording.
type Clip struct {
	Data        []byte
	ContentType string
	Duration    time.Duration
}

var (
	ErrAlreadyRecording = errors.New("recording already in progress")
	ErrNoDevice         = errors.New("no capture device available")
	ErrPermissionDenied = pkgErrors.ErrPermissionDenied
	ErrNoActiveSession  = pkgErrors.ErrNoActiveSession
)
