package llmprovider

import (
	"context"
	"testing"

	"memory-mob/pkg/groq"
)

type fakeGroq struct {
	gotKey string
	gotReq *groq.Request
	resp   *groq.Response
}

func (f *fakeGroq) GenerateContent(ctx context.Context, apiKey string, req *groq.Request) (*groq.Response, error) {
	f.gotKey = apiKey
	f.gotReq = req
	return f.resp, nil
}

func (f *fakeGroq) Model() string { return "llama-test" }

func TestGroqAdapter(t *testing.T) {
	fake := &fakeGroq{resp: &groq.Response{
		Model:   "llama-test",
		Choices: []groq.Choice{{Message: groq.Message{Role: "assistant", Content: "out"}}},
		Usage:   groq.Usage{PromptTokens: 1, CompletionTokens: 2, TotalTokens: 3},
	}}
	adapter := NewGroqAdapter(fake)

	sys := TextMessage("system", "rules")
	resp, err := adapter.GenerateContent(context.Background(), &Request{
		APIKey:            "key",
		SystemInstruction: &sys,
		Messages:          []Message{TextMessage("user", "hello")},
		MaxTokens:         400,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fake.gotKey != "key" {
		t.Errorf("key = %q", fake.gotKey)
	}
	msgs := fake.gotReq.Messages
	if len(msgs) != 2 || msgs[0].Role != "system" || msgs[0].Content != "rules" || msgs[1].Content != "hello" {
		t.Errorf("messages = %+v", msgs)
	}
	if fake.gotReq.MaxTokens != 400 {
		t.Errorf("max tokens = %d", fake.gotReq.MaxTokens)
	}
	if resp.Text() != "out" || resp.Usage.TotalTokens != 3 || resp.ProviderName != "groq" {
		t.Errorf("response = %+v", resp)
	}
	if adapter.Name() != "groq" || adapter.Model() != "llama-test" {
		t.Error("name/model mismatch")
	}
}

func TestGroqAdapter_EmptyChoices(t *testing.T) {
	adapter := NewGroqAdapter(&fakeGroq{resp: &groq.Response{}})
	resp, err := adapter.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "" {
		t.Errorf("expected empty text, got %q", resp.Text())
	}
}
