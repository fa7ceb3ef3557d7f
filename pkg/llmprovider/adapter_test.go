package llmprovider

import (
	"context"
	"errors"
	"testing"

	"voice-chat-skill/pkg/openai"
)

type mockOpenAIClient struct {
	lastReq  *openai.ChatRequest
	response *openai.ChatResponse
	err      error
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req *openai.ChatRequest) (*openai.ChatResponse, error) {
	m.lastReq = req
	return m.response, m.err
}

func (m *mockOpenAIClient) Model() string {
	return "gpt-test"
}

func TestOpenAIAdapter_GenerateContent(t *testing.T) {
	client := &mockOpenAIClient{
		response: &openai.ChatResponse{
			Choices: []openai.Choice{{Message: openai.Message{Role: "assistant", Content: "hi there"}}},
			Usage:   openai.Usage{PromptTokens: 5, CompletionTokens: 2, TotalTokens: 7},
		},
	}
	a := NewOpenAIAdapter("deepseek", client)

	system := NewTextMessage("system", "rules")
	resp, err := a.GenerateContent(context.Background(), &Request{
		SystemInstruction: &system,
		Messages:          []Message{NewTextMessage("user", "hello")},
		Temperature:       0.2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text() != "hi there" || resp.ProviderName != "deepseek" || resp.ModelName != "gpt-test" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Usage.TotalTokens != 7 {
		t.Errorf("expected 7 tokens, got %d", resp.Usage.TotalTokens)
	}

	msgs := client.lastReq.Messages
	if len(msgs) != 2 || msgs[0].Role != openai.RoleSystem || msgs[0].Content != "rules" || msgs[1].Content != "hello" {
		t.Errorf("unexpected outbound messages: %+v", msgs)
	}
	if client.lastReq.Temperature != 0.2 {
		t.Errorf("temperature not forwarded")
	}
}

func TestOpenAIAdapter_Errors(t *testing.T) {
	t.Run("client error", func(t *testing.T) {
		boom := errors.New("boom")
		a := NewOpenAIAdapter("openai", &mockOpenAIClient{err: boom})
		if _, err := a.GenerateContent(context.Background(), helloRequest()); !errors.Is(err, boom) {
			t.Errorf("expected wrapped client error, got %v", err)
		}
	})

	t.Run("no choices", func(t *testing.T) {
		a := NewOpenAIAdapter("openai", &mockOpenAIClient{response: &openai.ChatResponse{}})
		if _, err := a.GenerateContent(context.Background(), helloRequest()); !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})
}
