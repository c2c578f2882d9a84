package usecase

import (
	"context"

	"memory-mob/internal/credential"
	"memory-mob/internal/voice"
	"memory-mob/pkg/datemath"
	"memory-mob/pkg/deepgram"
	"memory-mob/pkg/llmprovider"
	"memory-mob/pkg/log"
	"memory-mob/pkg/metrics"
)

// Transcription is the speech-to-text client used by the pipeline.
type Transcription interface {
	Transcribe(ctx context.Context, apiKey string, audio deepgram.Audio, opts deepgram.Options) (deepgram.Result, error)
	Options() deepgram.Options
}

// Generator is the language-model entry point, normally *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes the extraction request.
type Config struct {
	Temperature float64
	MaxTokens   int
}

// DefaultConfig pins the extraction request to deterministic output.
var DefaultConfig = Config{Temperature: 0, MaxTokens: 400}

// implUseCase is the private implementation of voice.UseCase.
type implUseCase struct {
	stt     Transcription
	llm     Generator
	creds   credential.UseCase
	zone    *datemath.Zone
	cfg     Config
	metrics *metrics.Metrics
	l       log.Logger
}

var _ voice.UseCase = (*implUseCase)(nil)

// New creates the voice UseCase. Provider keys are looked up in creds on every call.
// m may be nil.
func New(stt Transcription, llm Generator, creds credential.UseCase, zone *datemath.Zone, cfg Config, m *metrics.Metrics, l log.Logger) *implUseCase {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig.MaxTokens
	}
	return &implUseCase{
		stt:     stt,
		llm:     llm,
		creds:   creds,
		zone:    zone,
		cfg:     cfg,
		metrics: m,
		l:       l,
	}
}
