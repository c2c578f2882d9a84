package deepgram

import (
	"fmt"
	"time"
)

// Config holds Deepgram client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Options Options
}

// Options are the /v1/listen query parameters.
type Options struct {
	Language    string
	Model       string
	Punctuate   bool
	SmartFormat bool
}

// DefaultOptions mirrors the provider defaults used by the service.
var DefaultOptions = Options{
	Language:    DefaultLanguage,
	Model:       DefaultModel,
	Punctuate:   true,
	SmartFormat: true,
}

// Validate fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout < 0 {
		return fmt.Errorf("deepgram: negative timeout")
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Options.Language == "" {
		c.Options.Language = DefaultLanguage
	}
	if c.Options.Model == "" {
		c.Options.Model = DefaultModel
	}
	return nil
}

// Audio is one clip to transcribe.
type Audio struct {
	Data        []byte
	ContentType string
}

// Result is the best alternative of the first channel.
type Result struct {
	Transcript string
	Confidence float64
	RequestID  string
	Duration   float64
}

type listenResponse struct {
	Metadata struct {
		RequestID string  `json:"request_id"`
		Duration  float64 `json:"duration"`
	} `json:"metadata"`
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

type errorResponse struct {
	ErrCode  string `json:"err_code"`
	ErrMsg   string `json:"err_msg"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

func (e errorResponse) text() string {
	switch {
	case e.ErrMsg != "":
		return e.ErrMsg
	case e.Message != "":
		return e.Message
	default:
		return e.ErrCode
	}
}
