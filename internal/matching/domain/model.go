package domain

// Kuta is one of the eight ashtakoota compatibility sub-scores. MaxScore is
// always the standard point ceiling for that kuta, even when the provider
// omits it, so score/maxScore stays a meaningful ratio for display.
type Kuta struct {
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"max_score"`
	Description string  `json:"description"`
}

// MatchReport is the normalized marriage compatibility record. The eight
// kuta ceilings sum to MaxTotal, 36 points.
type MatchReport struct {
	Varna         Kuta    `json:"varna"`
	Vasya         Kuta    `json:"vasya"`
	Tara          Kuta    `json:"tara"`
	Yoni          Kuta    `json:"yoni"`
	GrahaMaitri   Kuta    `json:"graha_maitri"`
	Gana          Kuta    `json:"gana"`
	Bhakoot       Kuta    `json:"bhakoot"`
	Nadi          Kuta    `json:"nadi"`
	TotalScore    float64 `json:"total_score"`
	MaxTotal      float64 `json:"max_total"`
	Compatibility string  `json:"compatibility"`
	Conclusion    string  `json:"conclusion"`
}
