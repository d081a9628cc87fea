package http

import "github.com/gin-gonic/gin"

// Register attaches the horoscope route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/horoscope", h.chart)
}
