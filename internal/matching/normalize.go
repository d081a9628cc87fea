package matching

import (
	"time"

	"github.com/AstroMantra/astro-backend/internal/jsonutil"
	"github.com/AstroMantra/astro-backend/internal/matching/domain"
)

// Request carries both parties' birth details.
type Request struct {
	GroomBirth       time.Time
	GroomCoordinates string
	BrideBirth       time.Time
	BrideCoordinates string
	System           string
	Ayanamsa         string
}

// kutaCeilings are the standard ashtakoota point ceilings. They sum to 36.
var kutaCeilings = map[string]float64{
	"varna":        1,
	"vasya":        2,
	"tara":         3,
	"yoni":         4,
	"graha_maitri": 5,
	"gana":         6,
	"bhakoot":      7,
	"nadi":         8,
}

const maxTotal = 36

// Normalize maps the provider's matching payload into a fully-populated
// report. Each kuta keeps its standard ceiling when the provider omits
// max_points.
func Normalize(raw map[string]any, req Request) domain.MatchReport {
	// Some provider responses nest the kutas under a container object,
	// others inline them at the top level.
	container := jsonutil.Map(raw, "kutas")
	if container == nil {
		container = raw
	}

	varna := kuta(container, "varna")
	vasya := kuta(container, "vasya")
	tara := kuta(container, "tara")
	yoni := kuta(container, "yoni")
	grahaMaitri := kuta(container, "graha_maitri")
	gana := kuta(container, "gana")
	bhakoot := kuta(container, "bhakoot")
	nadi := kuta(container, "nadi")

	sum := varna.Score + vasya.Score + tara.Score + yoni.Score +
		grahaMaitri.Score + gana.Score + bhakoot.Score + nadi.Score
	total := jsonutil.Num(raw, "total_points", sum)

	return domain.MatchReport{
		Varna:         varna,
		Vasya:         vasya,
		Tara:          tara,
		Yoni:          yoni,
		GrahaMaitri:   grahaMaitri,
		Gana:          gana,
		Bhakoot:       bhakoot,
		Nadi:          nadi,
		TotalScore:    total,
		MaxTotal:      maxTotal,
		Compatibility: jsonutil.Str(raw, "compatibility", compatibilityLabel(total)),
		Conclusion:    jsonutil.Str(raw, "conclusion", "N/A"),
	}
}

func kuta(container map[string]any, name string) domain.Kuta {
	m := jsonutil.Map(container, name)
	return domain.Kuta{
		Score:       jsonutil.Num(m, "points", 0),
		MaxScore:    jsonutil.Num(m, "max_points", kutaCeilings[name]),
		Description: jsonutil.Str(m, "description", "N/A"),
	}
}

func compatibilityLabel(total float64) string {
	switch {
	case total >= 28:
		return "Excellent"
	case total >= 18:
		return "Good"
	case total > 0:
		return "Average"
	default:
		return "N/A"
	}
}
