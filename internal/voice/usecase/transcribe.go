package usecase

import (
	"context"
	"time"

	"memory-mob/internal/model"
	"memory-mob/internal/voice"
	"memory-mob/pkg/audio"
	"memory-mob/pkg/deepgram"
	pkgErrors "memory-mob/pkg/errors"
)

const stageTranscribe = "transcribe"

// Transcribe sends clip to the transcription provider. A missing key fails
// before any request is made.
func (uc *implUseCase) Transcribe(ctx context.Context, clip audio.Clip) (out voice.Transcript, err error) {
	start := time.Now()
	defer func() { uc.metrics.ObserveStage(stageTranscribe, time.Since(start), err) }()

	if len(clip.Data) == 0 {
		return voice.Transcript{}, voice.ErrEmptyClip
	}

	key, err := uc.apiKey(ctx, model.SlotTranscription)
	if err != nil {
		return voice.Transcript{}, err
	}

	res, err := uc.stt.Transcribe(ctx, key, deepgram.Audio{Data: clip.Data, ContentType: clip.ContentType}, uc.stt.Options())
	if err != nil {
		uc.l.Warnf(ctx, "voice.usecase.Transcribe: %v", err)
		return voice.Transcript{}, uc.credentialFailure(ctx, model.SlotTranscription, err)
	}
	if res.Transcript == "" {
		return voice.Transcript{}, pkgErrors.ErrEmptyResponse
	}

	uc.l.Infof(ctx, "transcribed %s of audio, confidence=%.2f request_id=%s", clip.Duration, res.Confidence, res.RequestID)
	return voice.Transcript{Text: res.Transcript, Confidence: res.Confidence}, nil
}
