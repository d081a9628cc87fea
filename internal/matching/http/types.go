package http

import (
	"github.com/AstroMantra/astro-backend/config"
	"github.com/AstroMantra/astro-backend/internal/matching"
)

// Handler bundles the dependencies for the matching HTTP endpoint.
type Handler struct {
	svc      *matching.Service
	defaults config.AstroConfig
}

func New(svc *matching.Service, defaults config.AstroConfig) *Handler {
	return &Handler{svc: svc, defaults: defaults}
}

const defaultMatchingSystem = "ashtakoota"

const matchingWarning = "Live compatibility data is unavailable; showing reference data."

// matchReq is the POST body. Coordinates are optional "lat,lon" pairs.
type matchReq struct {
	GroomDOB         string `json:"groom_dob"`
	GroomBirthTime   string `json:"groom_birth_time"`
	GroomCoordinates string `json:"groom_coordinates"`
	BrideDOB         string `json:"bride_dob"`
	BrideBirthTime   string `json:"bride_birth_time"`
	BrideCoordinates string `json:"bride_coordinates"`
	MatchingSystem   string `json:"matching_system"`
}
