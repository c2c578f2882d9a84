package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/kaptinlin/jsonrepair"

	"memory-mob/internal/model"
	"memory-mob/internal/voice"
	"memory-mob/pkg/datemath"
	pkgErrors "memory-mob/pkg/errors"
	"memory-mob/pkg/llmprovider"
)

const stageExtract = "extract"

// extractionPayload is the JSON object the model is asked for. Date and time
// are strings so that relative phrases can still be normalised.
type extractionPayload struct {
	Message *string `json:"message"`
	Date    *string `json:"date"`
	Time    *string `json:"time"`
}

// Extract asks the language model for the message, date and time in text.
func (uc *implUseCase) Extract(ctx context.Context, text string, today civil.Date) (out voice.Extraction, err error) {
	start := time.Now()
	defer func() { uc.metrics.ObserveStage(stageExtract, time.Since(start), err) }()

	if strings.TrimSpace(text) == "" {
		return voice.Extraction{}, pkgErrors.NewValidationError("text", "must not be empty")
	}

	key, err := uc.apiKey(ctx, model.SlotLLM)
	if err != nil {
		return voice.Extraction{}, err
	}

	sys := llmprovider.TextMessage("system", extractionSystemPrompt)
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		APIKey:            key,
		SystemInstruction: &sys,
		Messages:          []llmprovider.Message{llmprovider.TextMessage("user", buildUserMessage(text, today))},
		Temperature:       uc.cfg.Temperature,
		MaxTokens:         uc.cfg.MaxTokens,
	})
	if err != nil {
		return voice.Extraction{}, uc.credentialFailure(ctx, model.SlotLLM, err)
	}

	raw := strings.TrimSpace(resp.Text())
	if raw == "" {
		return voice.Extraction{}, pkgErrors.ErrEmptyResponse
	}

	payload, err := decodeExtraction(raw)
	if err != nil {
		uc.l.Errorf(ctx, "Failed to parse LLM response. Raw=%q: %v", raw, err)
		return voice.Extraction{}, err
	}

	return uc.normalize(ctx, payload, today), nil
}

// decodeExtraction parses the completion, running one jsonrepair pass over
// near-JSON output before giving up. Anything that is not an object with a
// message field is malformed.
func decodeExtraction(raw string) (extractionPayload, error) {
	cleaned := sanitizeJSONResponse(raw)

	var p extractionPayload
	if err := json.Unmarshal([]byte(cleaned), &p); err == nil {
		return checkPayload(p)
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return extractionPayload{}, pkgErrors.ErrMalformedResponse
	}
	p = extractionPayload{}
	if err := json.Unmarshal([]byte(repaired), &p); err != nil {
		return extractionPayload{}, pkgErrors.ErrMalformedResponse
	}
	return checkPayload(p)
}

func checkPayload(p extractionPayload) (extractionPayload, error) {
	if p.Message == nil {
		return extractionPayload{}, pkgErrors.ErrMalformedResponse
	}
	return p, nil
}

// normalize turns the payload into civil values. Values that cannot be read
// become nil so that the builder defaults apply.
func (uc *implUseCase) normalize(ctx context.Context, p extractionPayload, today civil.Date) voice.Extraction {
	var out voice.Extraction
	if s, ok := nonNull(p.Message); ok {
		out.Message = s
	}
	if s, ok := nonNull(p.Date); ok {
		if d, err := datemath.ResolveDate(s, today); err == nil {
			out.Date = &d
		} else {
			uc.l.Warnf(ctx, "ignoring unreadable date %q from LLM: %v", s, err)
		}
	}
	if s, ok := nonNull(p.Time); ok {
		if t, err := datemath.ParseClock(s); err == nil {
			out.Time = &t
		} else {
			uc.l.Warnf(ctx, "ignoring unreadable time %q from LLM: %v", s, err)
		}
	}
	return out
}

func nonNull(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	if v == "" || strings.EqualFold(v, "null") {
		return "", false
	}
	return v, true
}
