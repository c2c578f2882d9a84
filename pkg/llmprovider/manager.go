package llmprovider

import (
	"context"
	"time"

	"memory-mob/pkg/log"
)

// Observer is told about every generation attempt.
type Observer func(provider string, elapsed time.Duration, err error)

// Manager runs a single generation attempt against the configured provider.
// Failures are logged and returned as is; nothing is retried.
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
	observe  Observer
}

// Config defines configuration for the Provider Manager
type Config struct {
	Timeout time.Duration
}

// NewManager creates a new Provider Manager with the given provider, config, and logger
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// SetObserver registers fn to receive attempt outcomes.
func (m *Manager) SetObserver(fn Observer) {
	m.observe = fn
}

// GenerateContent sends req to the provider once.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.provider == nil {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := m.provider.GenerateContent(ctx, req)
	if m.observe != nil {
		m.observe(m.provider.Name(), time.Since(start), err)
	}
	if err != nil {
		m.logFailure(ctx, err)
		return nil, err
	}

	m.logSuccess(ctx, resp)
	return resp, nil
}

func (m *Manager) logSuccess(ctx context.Context, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		m.provider.Name(), m.provider.Model(), in, out)
}

func (m *Manager) logFailure(ctx context.Context, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		m.provider.Name(), m.provider.Model(), err)
}
