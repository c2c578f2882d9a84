package groq

import "context"

// IGroq defines the interface for the Groq chat-completion client.
type IGroq interface {
	GenerateContent(ctx context.Context, apiKey string, req *Request) (*Response, error)
	Model() string
}
