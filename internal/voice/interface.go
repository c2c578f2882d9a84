package voice

import (
	"context"

	"cloud.google.com/go/civil"

	"memory-mob/pkg/audio"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Transcribe sends clip to the transcription provider once.
	Transcribe(ctx context.Context, clip audio.Clip) (Transcript, error)
	// Extract asks the language model for message, date and time in text.
	Extract(ctx context.Context, text string, today civil.Date) (Extraction, error)
	// Process runs transcription, optional extraction and the merge into the draft.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}

// Transcript is the transcription provider's best alternative.
type Transcript struct {
	Text       string
	Confidence float64
}
