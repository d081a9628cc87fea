package http

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AstroMantra/astro-backend/internal/api/envelope"
	"github.com/AstroMantra/astro-backend/internal/format"
	"github.com/AstroMantra/astro-backend/internal/panchang"
)

func (h *Handler) daily(c *gin.Context) {
	req, err := h.parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	p, err := h.svc.Daily(c.Request.Context(), req)
	if err != nil {
		log.Printf("[panchang] serving fallback: %v", err)
		c.JSON(http.StatusOK, envelope.Fallback(panchang.Fallback(), panchangWarning))
		return
	}

	c.JSON(http.StatusOK, envelope.Success(p))
}

func (h *Handler) calendar(c *gin.Context) {
	req, err := h.parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	calReq := panchang.CalendarRequest{Request: req, Type: c.DefaultQuery("type", defaultCalendarType)}

	day, err := h.svc.Calendar(c.Request.Context(), calReq)
	if err != nil {
		log.Printf("[calendar] serving fallback: %v", err)
		c.JSON(http.StatusOK, envelope.Fallback(panchang.CalendarFallback(), calendarWarning))
		return
	}

	c.JSON(http.StatusOK, envelope.Success(day))
}

// parseRequest reads date and coordinates, defaulting to today and the
// configured reference city.
func (h *Handler) parseRequest(c *gin.Context) (panchang.Request, error) {
	req := panchang.Request{
		Date:      time.Now(),
		Latitude:  h.defaults.DefaultLatitude,
		Longitude: h.defaults.DefaultLongitude,
		Ayanamsa:  h.defaults.Ayanamsa,
	}

	if raw := c.Query("date"); raw != "" {
		d, err := format.ParseDate(raw)
		if err != nil {
			return panchang.Request{}, err
		}
		req.Date = d
	}

	if raw := c.Query("latitude"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return panchang.Request{}, err
		}
		req.Latitude = lat
	}

	if raw := c.Query("longitude"); raw != "" {
		lon, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return panchang.Request{}, err
		}
		req.Longitude = lon
	}

	return req, nil
}
