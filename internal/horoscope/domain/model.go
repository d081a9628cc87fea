package domain

// PlanetPosition is one classical planet's place in a birth chart.
type PlanetPosition struct {
	Name      string  `json:"name"`
	Sign      string  `json:"sign"`
	Degree    float64 `json:"degree"`
	House     int     `json:"house"`
	Nakshatra string  `json:"nakshatra"`
}

// House is one of the twelve chart houses. Planets is never nil.
type House struct {
	Number  int      `json:"number"`
	Sign    string   `json:"sign"`
	Lord    string   `json:"lord"`
	Planets []string `json:"planets"`
}

// Dasha is the currently running planetary period.
type Dasha struct {
	Planet string `json:"planet"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// BirthChart is the normalized horoscope record. Planets always holds the
// seven classical planets in fixed order; Houses always holds twelve entries
// indexed 1..12.
type BirthChart struct {
	ChartType    string           `json:"chart_type"`
	Ascendant    string           `json:"ascendant"`
	MoonSign     string           `json:"moon_sign"`
	SunSign      string           `json:"sun_sign"`
	Planets      []PlanetPosition `json:"planets"`
	Houses       []House          `json:"houses"`
	CurrentDasha Dasha            `json:"current_dasha"`
}
