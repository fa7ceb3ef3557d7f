package http

import "github.com/gin-gonic/gin"

const SkillPath = "/alexa"

// RegisterRoutes mounts the skill endpoint.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.POST(SkillPath, h.HandleSkillRequest)
}
