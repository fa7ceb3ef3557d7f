package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-chat-skill/internal/metrics"
	pkgResponse "voice-chat-skill/pkg/response"
)

var (
	errWrongApplication = errors.New("request is for another skill")
	errRateLimited      = errors.New("caller is rate limited")
)

// writeError answers requests rejected before dispatch. Anything that is
// not a known rejection is a malformed envelope.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errWrongApplication):
		metrics.ObserveRejected("wrong_application")
		pkgResponse.Forbidden(c)
	case errors.Is(err, errRateLimited):
		metrics.ObserveRejected("rate_limited")
		pkgResponse.TooManyRequests(c)
	default:
		metrics.ObserveRejected("malformed")
		pkgResponse.Error(c, err, nil)
	}
}
