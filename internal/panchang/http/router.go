package http

import "github.com/gin-gonic/gin"

// Register attaches the panchang routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/panchang", h.daily)
	rg.GET("/calendar", h.calendar)
}
