package http

import "github.com/AstroMantra/astro-backend/internal/numerology"

// Handler bundles the dependencies for the numerology HTTP endpoint.
type Handler struct {
	svc *numerology.Service
}

func New(svc *numerology.Service) *Handler {
	return &Handler{svc: svc}
}

const numerologyWarning = "Live numerology data is unavailable; showing reference data."
