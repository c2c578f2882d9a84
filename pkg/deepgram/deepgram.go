package deepgram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	pkgErrors "memory-mob/pkg/errors"
)

// ErrMissingKey is returned when Transcribe is called without an API key.
var ErrMissingKey = errors.New("deepgram: API key is required")

// Client calls the Deepgram pre-recorded transcription API.
type Client struct {
	client  *resty.Client
	options Options
}

// New creates a Deepgram client. The API key is passed per call.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: c, options: cfg.Options}, nil
}

// Options returns the client's default listen options.
func (c *Client) Options() Options {
	return c.options
}

// Transcribe uploads audio and returns the first channel's best transcript.
// Non-2xx answers come back as *errors.ProviderError.
func (c *Client) Transcribe(ctx context.Context, apiKey string, audio Audio, opts Options) (Result, error) {
	if apiKey == "" {
		return Result{}, ErrMissingKey
	}
	if opts.Language == "" {
		opts.Language = c.options.Language
	}
	if opts.Model == "" {
		opts.Model = c.options.Model
	}

	contentType := audio.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Token "+apiKey).
		SetHeader("Content-Type", contentType).
		SetQueryParams(map[string]string{
			"language":     opts.Language,
			"model":        opts.Model,
			"punctuate":    strconv.FormatBool(opts.Punctuate),
			"smart_format": strconv.FormatBool(opts.SmartFormat),
		}).
		SetBody(audio.Data).
		Post("/v1/listen")
	if err != nil {
		return Result{}, fmt.Errorf("deepgram request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		msg := resp.String()
		var er errorResponse
		if json.Unmarshal(resp.Body(), &er) == nil && er.text() != "" {
			msg = er.text()
		}
		return Result{}, &pkgErrors.ProviderError{Provider: providerName, StatusCode: resp.StatusCode(), Message: msg}
	}

	var lr listenResponse
	if err := json.Unmarshal(resp.Body(), &lr); err != nil {
		return Result{}, fmt.Errorf("deepgram: decode response: %w", err)
	}

	result := Result{RequestID: lr.Metadata.RequestID, Duration: lr.Metadata.Duration}
	if len(lr.Results.Channels) > 0 && len(lr.Results.Channels[0].Alternatives) > 0 {
		alt := lr.Results.Channels[0].Alternatives[0]
		result.Transcript = strings.TrimSpace(alt.Transcript)
		result.Confidence = alt.Confidence
	}
	return result, nil
}
