package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"voice-chat-skill/pkg/alexa"
)

// processRequest decodes the envelope and applies the skill-ID check and
// the per-user rate limit.
func (h *handler) processRequest(c *gin.Context) (*alexa.RequestEnvelope, error) {
	env, err := alexa.Decode(c.Request.Body)
	if err != nil {
		return nil, err
	}

	if h.applicationID != "" && env.ApplicationID() != h.applicationID {
		return nil, fmt.Errorf("%w: %q", errWrongApplication, env.ApplicationID())
	}

	if h.limiter != nil {
		key := env.UserID()
		if key == "" {
			key = c.ClientIP()
		}
		if err := h.limiter.Allow(key); err != nil {
			return nil, fmt.Errorf("%w: %w", errRateLimited, err)
		}
	}

	return env, nil
}
