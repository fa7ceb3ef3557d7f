package llmprovider

import (
	"context"
	"fmt"

	"voice-chat-skill/pkg/openai"
)

// OpenAIAdapter adapts any OpenAI-compatible pkg/openai client to the Provider interface.
// The name distinguishes vendors that share the wire format (openai, deepseek, qwen).
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new adapter reporting itself as name
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &openai.ChatRequest{
		Messages:    convertToOpenAIMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: %w", a.name, ErrEmptyResponse)
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	choice := resp.Choices[0]
	return &Response{
		Content:      NewTextMessage(choice.Message.Role, choice.Message.Content),
		ProviderName: a.name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// convertToOpenAIMessages flattens the system instruction into the leading system message.
func convertToOpenAIMessages(req *Request) []openai.Message {
	messages := make([]openai.Message, 0, len(req.Messages)+1)

	if req.SystemInstruction != nil {
		if text := req.SystemInstruction.Text(); text != "" {
			messages = append(messages, openai.Message{Role: openai.RoleSystem, Content: text})
		}
	}

	for _, msg := range req.Messages {
		messages = append(messages, openai.Message{Role: msg.Role, Content: msg.Text()})
	}
	return messages
}
