package voice

import "errors"

var (
	ErrBusy               = errors.New("voice: transcription in progress")
	ErrSessionClosed      = errors.New("voice: session closed")
	ErrInvalidMode        = errors.New("voice: invalid mode")
	ErrEmptyClip          = errors.New("voice: empty audio clip")
	ErrCredentialPending  = errors.New("voice: waiting for a credential")
	ErrNoCredentialPrompt = errors.New("voice: no credential requested")
)
