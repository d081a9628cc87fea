package http

import (
	"github.com/AstroMantra/astro-backend/config"
	"github.com/AstroMantra/astro-backend/internal/panchang"
)

// Handler bundles the dependencies for the panchang HTTP endpoints.
type Handler struct {
	svc      *panchang.Service
	defaults config.AstroConfig
}

func New(svc *panchang.Service, defaults config.AstroConfig) *Handler {
	return &Handler{svc: svc, defaults: defaults}
}

// defaultCalendarType is the calendar system variant used when the caller
// does not pick one.
const defaultCalendarType = "purnimanta"

const (
	panchangWarning = "Live panchang data is unavailable; showing reference data."
	calendarWarning = "Live calendar data is unavailable; showing reference data."
)
