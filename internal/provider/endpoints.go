package provider

// Endpoint is one of the provider resources this backend proxies. The set is
// fixed; handlers never build endpoint paths from user input.
type Endpoint string

const (
	EndpointPanchang              Endpoint = "panchang"
	EndpointCalendar              Endpoint = "calendar"
	EndpointKundli                Endpoint = "kundli"
	EndpointKundliMatching        Endpoint = "kundli-matching"
	EndpointNumerologyPythagorean Endpoint = "numerology/pythagorean"
	EndpointNumerologyChaldean    Endpoint = "numerology/chaldean"
)
