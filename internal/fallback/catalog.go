// Package fallback aggregates the per-domain placeholder records into one
// catalog. Each entry shares its Go type with the real normalized record, so
// structural parity between live and fallback payloads holds by construction.
package fallback

import (
	"github.com/AstroMantra/astro-backend/internal/horoscope"
	"github.com/AstroMantra/astro-backend/internal/matching"
	"github.com/AstroMantra/astro-backend/internal/numerology"
	"github.com/AstroMantra/astro-backend/internal/panchang"
)

// Domain names one of the data domains served by the API.
type Domain string

const (
	DomainPanchang   Domain = "panchang"
	DomainCalendar   Domain = "calendar"
	DomainHoroscope  Domain = "horoscope"
	DomainMatching   Domain = "matching"
	DomainNumerology Domain = "numerology"
)

// Catalog returns the fallback record for every domain.
func Catalog() map[Domain]any {
	return map[Domain]any{
		DomainPanchang:   panchang.Fallback(),
		DomainCalendar:   panchang.CalendarFallback(),
		DomainHoroscope:  horoscope.Fallback(),
		DomainMatching:   matching.Fallback(),
		DomainNumerology: numerology.Fallback(),
	}
}
