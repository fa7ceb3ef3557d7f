package app

import (
	"context"
	"fmt"

	"voice-chat-skill/config"
	"voice-chat-skill/internal/metrics"
	"voice-chat-skill/internal/skill"
	"voice-chat-skill/internal/skill/usecase"
	"voice-chat-skill/pkg/llmprovider"
	"voice-chat-skill/pkg/log"
)

// NewLogger builds the service logger from config.
func NewLogger(cfg config.LoggerConfig) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
	})
}

// NewLLMManager builds the provider chain: priority-ordered providers, each
// behind a circuit breaker when enabled.
func NewLLMManager(ctx context.Context, cfg *config.Config, l log.Logger) (*llmprovider.Manager, error) {
	opts := llmprovider.FactoryOptions{
		UserAgent: cfg.Skill.UserAgent,
		Logger:    l,
	}
	if cfg.CircuitBreaker.Enabled {
		opts.Breaker = &llmprovider.BreakerSettings{
			MaxRequests:  cfg.CircuitBreaker.MaxRequests,
			Interval:     cfg.CircuitBreaker.Interval,
			Timeout:      cfg.CircuitBreaker.Timeout,
			FailureRatio: cfg.CircuitBreaker.FailureRatio,
			MinRequests:  cfg.CircuitBreaker.MinRequests,
			OnStateChange: func(provider, from, to string) {
				l.Warnf(ctx, "llm circuit breaker %s: %s -> %s", provider, from, to)
				metrics.SetCircuitState(provider, to)
			},
		}
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM, opts)
	if err != nil {
		return nil, fmt.Errorf("llmprovider.InitializeProviders: %w", err)
	}

	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return nil, err
	}

	for _, p := range providers {
		l.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	return llmprovider.NewManager(providers, managerCfg, l), nil
}

// NewSkillUseCase wires the dispatcher with the default handler chain.
func NewSkillUseCase(ctx context.Context, cfg *config.Config, l log.Logger) (skill.UseCase, error) {
	manager, err := NewLLMManager(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	uc, err := usecase.New(usecase.Config{
		Logger: l,
		LLM:    manager,
	})
	if err != nil {
		return nil, fmt.Errorf("usecase.New: %w", err)
	}
	return uc, nil
}
