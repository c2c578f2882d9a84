package groq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	pkgErrors "memory-mob/pkg/errors"
)

// ErrMissingKey is returned when GenerateContent is called without an API key.
var ErrMissingKey = errors.New("groq: API key is required")

// Client implements IGroq.
type Client struct {
	model  string
	client *resty.Client
}

// New creates a new Groq client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &Client{model: cfg.Model, client: c}, nil
}

func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a chat completion request.
func (c *Client) GenerateContent(ctx context.Context, apiKey string, req *Request) (*Response, error) {
	if apiKey == "" {
		return nil, ErrMissingKey
	}
	if req.Model == "" {
		req.Model = c.model
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		msg := resp.String()
		var errResp ErrorResponse
		if json.Unmarshal(resp.Body(), &errResp) == nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		return nil, &pkgErrors.ProviderError{Provider: providerName, StatusCode: resp.StatusCode(), Message: msg}
	}

	var result Response
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &result, nil
}
