package http

import (
	"github.com/AstroMantra/astro-backend/config"
	"github.com/AstroMantra/astro-backend/internal/horoscope"
)

// Handler bundles the dependencies for the horoscope HTTP endpoint.
type Handler struct {
	svc      *horoscope.Service
	defaults config.AstroConfig
}

func New(svc *horoscope.Service, defaults config.AstroConfig) *Handler {
	return &Handler{svc: svc, defaults: defaults}
}

const defaultChartType = "rasi"

const chartWarning = "Live birth chart data is unavailable; showing reference data."
