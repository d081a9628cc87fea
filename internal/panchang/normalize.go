package panchang

import (
	"time"

	"github.com/AstroMantra/astro-backend/internal/format"
	"github.com/AstroMantra/astro-backend/internal/jsonutil"
	"github.com/AstroMantra/astro-backend/internal/panchang/domain"
)

// Request identifies the date and place a panchang is computed for.
type Request struct {
	Date      time.Time
	Latitude  float64
	Longitude float64
	Ayanamsa  string
}

// CalendarRequest adds the calendar system variant.
type CalendarRequest struct {
	Request
	Type string
}

// Normalize maps the provider's panchang payload into a fully-populated
// record. Pure: any shape of raw, including an empty object, yields a
// complete Panchang.
func Normalize(raw map[string]any, req Request) domain.Panchang {
	tithi := jsonutil.FirstMap(jsonutil.Slice(raw, "tithi"))
	ritu := jsonutil.NameOrStr(raw, "ritu", "N/A")
	weekday := req.Date.Format("Monday")

	events := make([]string, 0, 3)
	if special := jsonutil.Str(tithi, "special", ""); special != "" {
		events = append(events, special)
	}
	if ritu != "N/A" {
		events = append(events, ritu+" Season")
	}
	events = append(events, weekday+" (Hindu Weekday)")

	return domain.Panchang{
		Date:          format.DisplayDate(req.Date),
		Day:           weekday,
		Tithi:         jsonutil.Str(tithi, "name", "N/A"),
		Paksha:        jsonutil.Str(tithi, "paksha", "N/A"),
		Nakshatra:     jsonutil.Str(jsonutil.FirstMap(jsonutil.Slice(raw, "nakshatra")), "name", "N/A"),
		Yoga:          jsonutil.Str(jsonutil.FirstMap(jsonutil.Slice(raw, "yoga")), "name", "N/A"),
		Karana:        jsonutil.Str(jsonutil.FirstMap(jsonutil.Slice(raw, "karana")), "name", "N/A"),
		Ritu:          ritu,
		Sunrise:       format.TimeOfDay(jsonutil.Str(raw, "sunrise", "")),
		Sunset:        format.TimeOfDay(jsonutil.Str(raw, "sunset", "")),
		Moonrise:      format.TimeOfDay(jsonutil.Str(raw, "moonrise", "")),
		Moonset:       format.TimeOfDay(jsonutil.Str(raw, "moonset", "")),
		SpecialEvents: events,
	}
}

// NormalizeCalendar maps the provider's calendar payload for one date. The
// three provider lists are independently optional; SpecialDays is their
// concatenation in a stable order.
func NormalizeCalendar(raw map[string]any, req CalendarRequest) domain.CalendarDay {
	events := jsonutil.Names(jsonutil.Slice(raw, "events"))
	festivals := jsonutil.Names(jsonutil.Slice(raw, "festivals"))
	fasting := jsonutil.Names(jsonutil.Slice(raw, "fasting"))

	special := make([]string, 0, len(events)+len(festivals)+len(fasting))
	special = append(special, events...)
	special = append(special, festivals...)
	special = append(special, fasting...)

	return domain.CalendarDay{
		Date:        format.DisplayDate(req.Date),
		Tithi:       jsonutil.Str(jsonutil.FirstMap(jsonutil.Slice(raw, "tithi")), "name", "N/A"),
		Events:      events,
		Festivals:   festivals,
		Fasting:     fasting,
		SpecialDays: special,
	}
}
