package horoscope

import (
	"strconv"
	"strings"
	"time"

	"github.com/AstroMantra/astro-backend/internal/horoscope/domain"
	"github.com/AstroMantra/astro-backend/internal/jsonutil"
)

// Request identifies the birth moment and place a chart is computed for.
type Request struct {
	BirthTime time.Time
	Latitude  float64
	Longitude float64
	ChartType string
	Ayanamsa  string
}

// classicalPlanets is the fixed planet order of the normalized chart.
var classicalPlanets = []string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn"}

// Normalize maps the provider's kundli payload into a fully-populated birth
// chart. Planets absent from the payload get default positions; the houses
// array is synthesized for indexes 1..12 regardless of how many houses the
// provider returned.
func Normalize(raw map[string]any, req Request) domain.BirthChart {
	byName := planetsByName(jsonutil.Slice(raw, "planets"))

	planets := make([]domain.PlanetPosition, 0, len(classicalPlanets))
	for _, name := range classicalPlanets {
		p := byName[strings.ToLower(name)]
		planets = append(planets, domain.PlanetPosition{
			Name:      name,
			Sign:      jsonutil.NameOrStr(p, "sign", "N/A"),
			Degree:    jsonutil.Num(p, "degree", 0),
			House:     jsonutil.Int(p, "house", 0),
			Nakshatra: jsonutil.NameOrStr(p, "nakshatra", "N/A"),
		})
	}

	rawHouses := jsonutil.Map(raw, "houses")
	houses := make([]domain.House, 0, 12)
	for i := 1; i <= 12; i++ {
		h := jsonutil.Map(rawHouses, strconv.Itoa(i))
		occupants := jsonutil.Names(jsonutil.Slice(h, "planets"))
		if occupants == nil {
			occupants = []string{}
		}
		houses = append(houses, domain.House{
			Number:  i,
			Sign:    jsonutil.NameOrStr(h, "sign", "N/A"),
			Lord:    jsonutil.NameOrStr(h, "lord", "N/A"),
			Planets: occupants,
		})
	}

	dasha := jsonutil.Map(raw, "dasha")

	return domain.BirthChart{
		ChartType: req.ChartType,
		Ascendant: jsonutil.NameOrStr(raw, "ascendant", "N/A"),
		MoonSign:  jsonutil.NameOrStr(raw, "moon_sign", "N/A"),
		SunSign:   jsonutil.NameOrStr(raw, "sun_sign", "N/A"),
		Planets:   planets,
		Houses:    houses,
		CurrentDasha: domain.Dasha{
			Planet: jsonutil.NameOrStr(dasha, "planet", "N/A"),
			Start:  jsonutil.Str(dasha, "start", "N/A"),
			End:    jsonutil.Str(dasha, "end", "N/A"),
		},
	}
}

func planetsByName(arr []any) map[string]map[string]any {
	out := make(map[string]map[string]any, len(arr))
	for _, v := range arr {
		obj, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if name := jsonutil.Str(obj, "name", ""); name != "" {
			out[strings.ToLower(name)] = obj
		}
	}
	return out
}
