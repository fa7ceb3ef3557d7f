package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "voice-chat-skill/pkg/log"
)

// HandleSkillRequest is the Gin handler for voice platform requests.
// Once the envelope is accepted the reply is always 200: handler faults
// come back as the apology speech, not as an HTTP error.
func (h *handler) HandleSkillRequest(c *gin.Context) {
	ctx := c.Request.Context()

	env, err := h.processRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "skill.delivery.http.HandleSkillRequest: %v", err)
		h.writeError(c, err)
		return
	}

	req := NewSkillRequest(env)
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	ctx = pkgLog.SetTraceID(ctx, req.RequestID)

	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	h.l.Infof(ctx, "skill.delivery.http.HandleSkillRequest: type=%s intent=%s locale=%s",
		req.Type, req.IntentName, req.Locale)

	resp := h.uc.Dispatch(ctx, req)
	c.JSON(http.StatusOK, NewResponseEnvelope(resp))
}
