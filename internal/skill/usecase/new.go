package usecase

import (
	"context"

	"voice-chat-skill/internal/skill"
	"voice-chat-skill/pkg/llmprovider"
	"voice-chat-skill/pkg/log"
)

// ChatCompleter generates the chat reply. *llmprovider.Manager satisfies it.
type ChatCompleter interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config assembles the dispatcher.
type Config struct {
	Logger log.Logger
	LLM    ChatCompleter

	// Entries are evaluated in order, first match wins. Nil means DefaultEntries(ChatIntent).
	Entries []skill.HandlerEntry

	ChatIntent string // defaults to DefaultChatIntent
	SlotName   string // defaults to DefaultSlotName
}

type implUseCase struct {
	l          log.Logger
	llm        ChatCompleter
	entries    []skill.HandlerEntry
	chatIntent string
	slotName   string
}

// New creates the skill dispatcher.
func New(cfg Config) (*implUseCase, error) {
	if cfg.ChatIntent == "" {
		cfg.ChatIntent = DefaultChatIntent
	}
	if cfg.SlotName == "" {
		cfg.SlotName = DefaultSlotName
	}
	if cfg.Entries == nil {
		cfg.Entries = DefaultEntries(cfg.ChatIntent)
	}

	uc := &implUseCase{
		l:          cfg.Logger,
		llm:        cfg.LLM,
		entries:    cfg.Entries,
		chatIntent: cfg.ChatIntent,
		slotName:   cfg.SlotName,
	}
	if err := uc.validate(); err != nil {
		return nil, err
	}
	return uc, nil
}

func (uc *implUseCase) validate() error {
	if uc.l == nil {
		return skill.ErrLoggerRequired
	}
	if uc.llm == nil {
		return skill.ErrLLMRequired
	}
	for _, e := range uc.entries {
		if e.Match == nil {
			return skill.ErrInvalidEntry
		}
	}
	return nil
}

var _ skill.UseCase = (*implUseCase)(nil)
