package matching

import "github.com/AstroMantra/astro-backend/internal/matching/domain"

// Fallback returns a static, internally consistent matching report for
// fallback substitution. Scores sum to the stated total.
func Fallback() domain.MatchReport {
	return domain.MatchReport{
		Varna:         domain.Kuta{Score: 1, MaxScore: 1, Description: "Spiritual compatibility is complete."},
		Vasya:         domain.Kuta{Score: 2, MaxScore: 2, Description: "Mutual attraction is strong."},
		Tara:          domain.Kuta{Score: 1.5, MaxScore: 3, Description: "Health and well-being are moderately matched."},
		Yoni:          domain.Kuta{Score: 3, MaxScore: 4, Description: "Physical compatibility is good."},
		GrahaMaitri:   domain.Kuta{Score: 4, MaxScore: 5, Description: "Mental compatibility is favorable."},
		Gana:          domain.Kuta{Score: 6, MaxScore: 6, Description: "Temperaments align completely."},
		Bhakoot:       domain.Kuta{Score: 7, MaxScore: 7, Description: "Emotional bond and prosperity are well placed."},
		Nadi:          domain.Kuta{Score: 0, MaxScore: 8, Description: "Nadi dosha is present; remedies are advised."},
		TotalScore:    24.5,
		MaxTotal:      36,
		Compatibility: "Good",
		Conclusion:    "A favorable match overall; the nadi dosha calls for traditional remedies before proceeding.",
	}
}
