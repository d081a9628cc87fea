package domain

// Profile is the normalized numerology record for a name and birth date.
// All numbers come from the provider; absent values default to 0, absent
// meanings to "N/A". This layer computes nothing itself.
type Profile struct {
	Name               string `json:"name"`
	System             string `json:"system"`
	LifePath           int    `json:"life_path"`
	LifePathMeaning    string `json:"life_path_meaning"`
	Destiny            int    `json:"destiny"`
	DestinyMeaning     string `json:"destiny_meaning"`
	SoulUrge           int    `json:"soul_urge"`
	SoulUrgeMeaning    string `json:"soul_urge_meaning"`
	Personality        int    `json:"personality"`
	PersonalityMeaning string `json:"personality_meaning"`
	Birthday           int    `json:"birthday"`
	BirthdayMeaning    string `json:"birthday_meaning"`
}
