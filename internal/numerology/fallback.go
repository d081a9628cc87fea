package numerology

import "github.com/AstroMantra/astro-backend/internal/numerology/domain"

// Fallback returns a static numerology profile for fallback substitution.
func Fallback() domain.Profile {
	return domain.Profile{
		Name:               "Guest",
		System:             SystemPythagorean,
		LifePath:           7,
		LifePathMeaning:    "The seeker: analytical, introspective, drawn to deeper truths.",
		Destiny:            3,
		DestinyMeaning:     "The communicator: creative expression and social warmth.",
		SoulUrge:           9,
		SoulUrgeMeaning:    "The humanitarian: compassion and a drive to serve.",
		Personality:        1,
		PersonalityMeaning: "The leader: independent, original, self-directed.",
		Birthday:           5,
		BirthdayMeaning:    "The adventurer: adaptable and freedom-loving.",
	}
}
