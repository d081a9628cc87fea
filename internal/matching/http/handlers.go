package http

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AstroMantra/astro-backend/internal/api/envelope"
	"github.com/AstroMantra/astro-backend/internal/format"
	"github.com/AstroMantra/astro-backend/internal/matching"
)

func (h *Handler) match(c *gin.Context) {
	var body matchReq
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Failure("invalid body"))
		return
	}

	req, err := h.buildRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	report, err := h.svc.Match(c.Request.Context(), req)
	if err != nil {
		log.Printf("[matching] serving fallback: %v", err)
		c.JSON(http.StatusOK, envelope.Fallback(matching.Fallback(), matchingWarning))
		return
	}

	c.JSON(http.StatusOK, envelope.Success(report))
}

// buildRequest validates both parties' birth details before any upstream
// call is attempted.
func (h *Handler) buildRequest(body matchReq) (matching.Request, error) {
	groom, err := birthMoment(body.GroomDOB, body.GroomBirthTime, "groom")
	if err != nil {
		return matching.Request{}, err
	}
	bride, err := birthMoment(body.BrideDOB, body.BrideBirthTime, "bride")
	if err != nil {
		return matching.Request{}, err
	}

	system := body.MatchingSystem
	if system == "" {
		system = defaultMatchingSystem
	}

	req := matching.Request{
		GroomBirth:       groom,
		GroomCoordinates: body.GroomCoordinates,
		BrideBirth:       bride,
		BrideCoordinates: body.BrideCoordinates,
		System:           system,
		Ayanamsa:         h.defaults.Ayanamsa,
	}

	defaultCoords := fmt.Sprintf("%.4f,%.4f", h.defaults.DefaultLatitude, h.defaults.DefaultLongitude)
	if req.GroomCoordinates == "" {
		req.GroomCoordinates = defaultCoords
	}
	if req.BrideCoordinates == "" {
		req.BrideCoordinates = defaultCoords
	}

	return req, nil
}

func birthMoment(dob, clock, party string) (time.Time, error) {
	if dob == "" {
		return time.Time{}, fmt.Errorf("%s_dob is required", party)
	}
	if clock == "" {
		return time.Time{}, fmt.Errorf("%s_birth_time is required", party)
	}

	date, err := format.ParseDate(dob)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := format.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC), nil
}
