package http

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AstroMantra/astro-backend/internal/api/envelope"
	"github.com/AstroMantra/astro-backend/internal/format"
	"github.com/AstroMantra/astro-backend/internal/numerology"
)

func (h *Handler) profile(c *gin.Context) {
	req, err := parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	profile, err := h.svc.Profile(c.Request.Context(), req)
	if err != nil {
		log.Printf("[numerology] serving fallback: %v", err)
		c.JSON(http.StatusOK, envelope.Fallback(numerology.Fallback(), numerologyWarning))
		return
	}

	c.JSON(http.StatusOK, envelope.Success(profile))
}

// parseRequest validates the required name and date before any upstream call
// is attempted. An unknown system is rejected rather than silently mapped to
// the default.
func parseRequest(c *gin.Context) (numerology.Request, error) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return numerology.Request{}, fmt.Errorf("name is required")
	}

	rawDate := c.Query("date")
	if rawDate == "" {
		return numerology.Request{}, fmt.Errorf("date is required")
	}
	date, err := format.ParseDate(rawDate)
	if err != nil {
		return numerology.Request{}, err
	}

	system := c.DefaultQuery("system", numerology.SystemPythagorean)
	if system != numerology.SystemPythagorean && system != numerology.SystemChaldean {
		return numerology.Request{}, fmt.Errorf("unknown system %q", system)
	}

	return numerology.Request{Name: name, Date: date, System: system}, nil
}
