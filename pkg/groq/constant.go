package groq

import "time"

const (
	// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default chat model.
	DefaultModel = "llama-3.3-70b-versatile"

	DefaultTimeout = 30 * time.Second

	providerName = "groq"
)
