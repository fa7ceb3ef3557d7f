package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"voice-chat-skill/internal/skill"
	pkgLog "voice-chat-skill/pkg/log"
)

// Handler is the interface for the skill endpoint.
type Handler interface {
	HandleSkillRequest(c *gin.Context)
}

// Limiter throttles callers by key. *ratelimit.Limiter satisfies it.
type Limiter interface {
	Allow(key string) error
}

// Config holds the optional endpoint protections.
type Config struct {
	ApplicationID  string        // "" accepts any skill
	RequestTimeout time.Duration // 0 disables the per-request deadline
	Limiter        Limiter       // nil disables rate limiting
}

type handler struct {
	l              pkgLog.Logger
	uc             skill.UseCase
	applicationID  string
	requestTimeout time.Duration
	limiter        Limiter
}

// New creates a new skill delivery handler.
func New(l pkgLog.Logger, uc skill.UseCase, cfg Config) Handler {
	return &handler{
		l:              l,
		uc:             uc,
		applicationID:  cfg.ApplicationID,
		requestTimeout: cfg.RequestTimeout,
		limiter:        cfg.Limiter,
	}
}
