package horoscope

import "github.com/AstroMantra/astro-backend/internal/horoscope/domain"

// Fallback returns a static, plausible birth chart for fallback
// substitution. Positions are a fixed sample, not computed.
func Fallback() domain.BirthChart {
	houses := make([]domain.House, 0, 12)
	signs := []string{
		"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
		"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
	}
	lords := []string{
		"Mars", "Venus", "Mercury", "Moon", "Sun", "Mercury",
		"Venus", "Mars", "Jupiter", "Saturn", "Saturn", "Jupiter",
	}
	for i := 0; i < 12; i++ {
		houses = append(houses, domain.House{
			Number:  i + 1,
			Sign:    signs[i],
			Lord:    lords[i],
			Planets: []string{},
		})
	}
	houses[0].Planets = []string{"Sun", "Mercury"}
	houses[3].Planets = []string{"Moon"}
	houses[6].Planets = []string{"Mars", "Venus"}
	houses[8].Planets = []string{"Jupiter"}
	houses[9].Planets = []string{"Saturn"}

	return domain.BirthChart{
		ChartType: "rasi",
		Ascendant: "Aries",
		MoonSign:  "Cancer",
		SunSign:   "Aries",
		Planets: []domain.PlanetPosition{
			{Name: "Sun", Sign: "Aries", Degree: 14.2, House: 1, Nakshatra: "Bharani"},
			{Name: "Moon", Sign: "Cancer", Degree: 8.7, House: 4, Nakshatra: "Pushya"},
			{Name: "Mars", Sign: "Libra", Degree: 21.3, House: 7, Nakshatra: "Vishakha"},
			{Name: "Mercury", Sign: "Aries", Degree: 2.9, House: 1, Nakshatra: "Ashwini"},
			{Name: "Jupiter", Sign: "Sagittarius", Degree: 17.5, House: 9, Nakshatra: "Purva Ashadha"},
			{Name: "Venus", Sign: "Libra", Degree: 26.1, House: 7, Nakshatra: "Vishakha"},
			{Name: "Saturn", Sign: "Capricorn", Degree: 11.8, House: 10, Nakshatra: "Shravana"},
		},
		Houses: houses,
		CurrentDasha: domain.Dasha{
			Planet: "Venus",
			Start:  "2021-06-14",
			End:    "2041-06-14",
		},
	}
}
