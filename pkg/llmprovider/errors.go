package llmprovider

import "errors"

var (
	// ErrNoProvidersConfigured indicates the manager has no provider
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrUnknownProvider indicates the configured provider name is not supported
	ErrUnknownProvider = errors.New("unknown provider")
)
