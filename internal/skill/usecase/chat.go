package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-chat-skill/internal/metrics"
	"voice-chat-skill/internal/skill"
	"voice-chat-skill/pkg/llmprovider"
	"voice-chat-skill/pkg/openai"
)

// chat answers the user's utterance with one chat completion and asks for
// the next utterance.
func (uc *implUseCase) chat(ctx context.Context, req skill.Request) (skill.Response, error) {
	text := req.Slot(uc.slotName)
	if strings.TrimSpace(text) == "" {
		text = msgDefaultInput
	}

	reply, err := uc.complete(ctx, text)
	if err != nil {
		return skill.Response{}, err
	}

	return skill.Response{
		Speech:     reply,
		Reprompt:   msgAskAnything,
		ElicitSlot: uc.elicitChat(),
		Session:    skill.SessionKeepOpen,
	}, nil
}

func (uc *implUseCase) complete(ctx context.Context, text string) (string, error) {
	system := llmprovider.NewTextMessage(openai.RoleSystem, systemPrompt)
	req := &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          []llmprovider.Message{llmprovider.NewTextMessage(openai.RoleUser, text)},
	}

	start := time.Now()
	resp, err := uc.llm.GenerateContent(ctx, req)

	var provider string
	if resp != nil {
		provider = resp.ProviderName
	}
	metrics.ObserveLLM(provider, err, time.Since(start))

	if err != nil {
		return "", fmt.Errorf("llm.GenerateContent: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", skill.ErrEmptyReply
	}

	uc.l.Debugf(ctx, "skill.usecase.chat: provider=%s model=%s", resp.ProviderName, resp.ModelName)
	return reply, nil
}
