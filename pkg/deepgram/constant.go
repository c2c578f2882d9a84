package deepgram

import "time"

const (
	// DefaultBaseURL is the Deepgram API endpoint.
	DefaultBaseURL = "https://api.deepgram.com"

	DefaultLanguage = "en-US"
	DefaultModel    = "nova-2"
	DefaultTimeout  = 60 * time.Second

	// DefaultContentType is sent when a clip does not name its encoding.
	DefaultContentType = "audio/webm"

	providerName = "deepgram"
)
