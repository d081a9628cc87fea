package http

import "github.com/gin-gonic/gin"

// Register attaches the numerology route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/numerology", h.profile)
}
