package http

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AstroMantra/astro-backend/internal/api/envelope"
	"github.com/AstroMantra/astro-backend/internal/format"
	"github.com/AstroMantra/astro-backend/internal/horoscope"
)

func (h *Handler) chart(c *gin.Context) {
	req, err := h.parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Failure(err.Error()))
		return
	}

	chart, err := h.svc.Chart(c.Request.Context(), req)
	if err != nil {
		log.Printf("[horoscope] serving fallback: %v", err)
		c.JSON(http.StatusOK, envelope.Fallback(horoscope.Fallback(), chartWarning))
		return
	}

	c.JSON(http.StatusOK, envelope.Success(chart))
}

// parseRequest validates the required birth date and time before any
// upstream call is attempted.
func (h *Handler) parseRequest(c *gin.Context) (horoscope.Request, error) {
	rawDate := c.Query("date")
	rawTime := c.Query("time")
	if rawDate == "" {
		return horoscope.Request{}, fmt.Errorf("date is required")
	}
	if rawTime == "" {
		return horoscope.Request{}, fmt.Errorf("time is required")
	}

	date, err := format.ParseDate(rawDate)
	if err != nil {
		return horoscope.Request{}, err
	}
	hour, minute, err := format.ParseClock(rawTime)
	if err != nil {
		return horoscope.Request{}, err
	}

	req := horoscope.Request{
		BirthTime: time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC),
		Latitude:  h.defaults.DefaultLatitude,
		Longitude: h.defaults.DefaultLongitude,
		ChartType: c.DefaultQuery("chart_type", defaultChartType),
		Ayanamsa:  h.defaults.Ayanamsa,
	}

	if raw := c.Query("latitude"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return horoscope.Request{}, err
		}
		req.Latitude = lat
	}

	if raw := c.Query("longitude"); raw != "" {
		lon, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return horoscope.Request{}, err
		}
		req.Longitude = lon
	}

	return req, nil
}
