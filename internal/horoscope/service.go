package horoscope

import (
	"context"
	"fmt"
	"time"

	"github.com/AstroMantra/astro-backend/internal/horoscope/domain"
	"github.com/AstroMantra/astro-backend/internal/provider"
)

// Service fetches birth charts from the provider and normalizes them. Charts
// are not cached: the request key space (full birth moment and place) is too
// sparse for a shared cache to pay off.
type Service struct {
	client *provider.Client
}

func NewService(client *provider.Client) *Service {
	return &Service{client: client}
}

// Chart returns the normalized birth chart for the requested birth moment.
func (s *Service) Chart(ctx context.Context, req Request) (domain.BirthChart, error) {
	raw, err := s.client.Fetch(ctx, provider.EndpointKundli, map[string]string{
		"ayanamsa":    req.Ayanamsa,
		"coordinates": fmt.Sprintf("%.4f,%.4f", req.Latitude, req.Longitude),
		"datetime":    req.BirthTime.Format(time.RFC3339),
		"chart_type":  req.ChartType,
	})
	if err != nil {
		return domain.BirthChart{}, err
	}

	return Normalize(raw, req), nil
}
