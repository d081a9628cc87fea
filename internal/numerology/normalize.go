package numerology

import (
	"time"

	"github.com/AstroMantra/astro-backend/internal/jsonutil"
	"github.com/AstroMantra/astro-backend/internal/numerology/domain"
)

// Systems supported by the provider. The system selects the outbound
// endpoint as well as labelling the result.
const (
	SystemPythagorean = "pythagorean"
	SystemChaldean    = "chaldean"
)

// Request identifies the name and birth date a profile is computed for.
type Request struct {
	Name   string
	Date   time.Time
	System string
}

// Normalize maps the provider's numerology payload into a fully-populated
// profile. Each core number arrives as {number, meaning}; both parts default
// independently.
func Normalize(raw map[string]any, req Request) domain.Profile {
	lifePath := jsonutil.Map(raw, "life_path")
	destiny := jsonutil.Map(raw, "destiny")
	soulUrge := jsonutil.Map(raw, "soul_urge")
	personality := jsonutil.Map(raw, "personality")
	birthday := jsonutil.Map(raw, "birthday")

	return domain.Profile{
		Name:               req.Name,
		System:             req.System,
		LifePath:           jsonutil.Int(lifePath, "number", 0),
		LifePathMeaning:    jsonutil.Str(lifePath, "meaning", "N/A"),
		Destiny:            jsonutil.Int(destiny, "number", 0),
		DestinyMeaning:     jsonutil.Str(destiny, "meaning", "N/A"),
		SoulUrge:           jsonutil.Int(soulUrge, "number", 0),
		SoulUrgeMeaning:    jsonutil.Str(soulUrge, "meaning", "N/A"),
		Personality:        jsonutil.Int(personality, "number", 0),
		PersonalityMeaning: jsonutil.Str(personality, "meaning", "N/A"),
		Birthday:           jsonutil.Int(birthday, "number", 0),
		BirthdayMeaning:    jsonutil.Str(birthday, "meaning", "N/A"),
	}
}
