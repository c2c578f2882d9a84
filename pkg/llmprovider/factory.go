package llmprovider

import (
	"fmt"
	"strings"

	"memory-mob/config"
	"memory-mob/pkg/groq"
)

// NewProvider creates the Provider named by cfg.Provider.
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "groq":
		client, err := groq.New(groq.Config{
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		return NewGroqAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
