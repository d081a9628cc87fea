package domain

// Panchang is the normalized daily almanac record served to the UI. Every
// field is always populated; missing provider data degrades to "N/A" or an
// empty list, never to a null.
type Panchang struct {
	Date          string   `json:"date"`
	Day           string   `json:"day"`
	Tithi         string   `json:"tithi"`
	Paksha        string   `json:"paksha"`
	Nakshatra     string   `json:"nakshatra"`
	Yoga          string   `json:"yoga"`
	Karana        string   `json:"karana"`
	Ritu          string   `json:"ritu"`
	Sunrise       string   `json:"sunrise"`
	Sunset        string   `json:"sunset"`
	Moonrise      string   `json:"moonrise"`
	Moonset       string   `json:"moonset"`
	SpecialEvents []string `json:"special_events"`
}

// CalendarDay is the normalized calendar record for a date. Events, festivals
// and fasting days are exposed individually and merged into SpecialDays.
type CalendarDay struct {
	Date        string   `json:"date"`
	Tithi       string   `json:"tithi"`
	Events      []string `json:"events"`
	Festivals   []string `json:"festivals"`
	Fasting     []string `json:"fasting"`
	SpecialDays []string `json:"special_days"`
}
