package usecase

import (
	"context"

	"memory-mob/internal/voice"
)

// Process runs the voice pipeline over one clip and merges the result into
// input.Draft. On failure the returned error is the failing stage's and no
// draft is produced.
func (uc *implUseCase) Process(ctx context.Context, input voice.ProcessInput) (voice.ProcessOutput, error) {
	mode := input.Mode
	if mode == "" {
		mode = voice.ModeExtract
	}
	if !mode.IsValid() {
		return voice.ProcessOutput{}, voice.ErrInvalidMode
	}

	tr, err := uc.Transcribe(ctx, input.Clip)
	if err != nil {
		return voice.ProcessOutput{}, err
	}

	out := voice.ProcessOutput{Transcript: tr.Text, Confidence: tr.Confidence}
	if mode == voice.ModeExtract {
		ext, err := uc.Extract(ctx, tr.Text, uc.zone.Today())
		if err != nil {
			return voice.ProcessOutput{}, err
		}
		out.Extraction = &ext
	}

	out.Draft = voice.Merge(input.Draft, tr.Text, out.Extraction, mode)
	return out, nil
}
