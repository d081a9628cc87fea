package panchang

import "github.com/AstroMantra/astro-backend/internal/panchang/domain"

// Fallback returns the static almanac shown when the provider is
// unavailable. The record is internally consistent so the page still looks
// right; the route attaches a warning so callers can tell it apart from live
// data.
func Fallback() domain.Panchang {
	return domain.Panchang{
		Date:      "Wednesday, October 9, 2024",
		Day:       "Wednesday",
		Tithi:     "Shukla Saptami",
		Paksha:    "Shukla Paksha",
		Nakshatra: "Mula",
		Yoga:      "Sobhana",
		Karana:    "Vanija",
		Ritu:      "Sharad",
		Sunrise:   "6:18 AM",
		Sunset:    "5:52 PM",
		Moonrise:  "12:07 PM",
		Moonset:   "10:44 PM",
		SpecialEvents: []string{
			"Sharad Season",
			"Wednesday (Hindu Weekday)",
		},
	}
}

// CalendarFallback returns the static calendar record for fallback
// substitution.
func CalendarFallback() domain.CalendarDay {
	return domain.CalendarDay{
		Date:      "Wednesday, October 9, 2024",
		Tithi:     "Shukla Saptami",
		Events:    []string{"Durga Puja begins"},
		Festivals: []string{"Navaratri"},
		Fasting:   []string{"Navaratri Vrat"},
		SpecialDays: []string{
			"Durga Puja begins",
			"Navaratri",
			"Navaratri Vrat",
		},
	}
}
