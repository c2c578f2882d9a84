package llmprovider

import (
	"context"
	"fmt"

	"memory-mob/pkg/groq"
)

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		Messages:    convertToGroqMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// System instruction goes first
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		systemMsg := groq.Message{Role: "system", Content: req.SystemInstruction.Parts[0].Text}
		groqReq.Messages = append([]groq.Message{systemMsg}, groqReq.Messages...)
	}

	resp, err := a.client.GenerateContent(ctx, req.APIKey, groqReq)
	if err != nil {
		return nil, fmt.Errorf("groq: %w", err)
	}

	return convertFromGroqResponse(resp), nil
}

// Name returns the provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns the model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

func convertToGroqMessages(msgs []Message) []groq.Message {
	messages := make([]groq.Message, 0, len(msgs))
	for _, msg := range msgs {
		m := groq.Message{Role: msg.Role}
		for _, p := range msg.Parts {
			m.Content += p.Text
		}
		messages = append(messages, m)
	}
	return messages
}

func convertFromGroqResponse(resp *groq.Response) *Response {
	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{}},
		ProviderName: "groq",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: resp.Choices[0].Message.Content})
	}
	return out
}
