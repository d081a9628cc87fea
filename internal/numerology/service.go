package numerology

import (
	"context"

	"github.com/AstroMantra/astro-backend/internal/numerology/domain"
	"github.com/AstroMantra/astro-backend/internal/provider"
)

// Service fetches numerology profiles from the provider and normalizes
// them. The system flag picks between the two upstream endpoints.
type Service struct {
	client *provider.Client
}

func NewService(client *provider.Client) *Service {
	return &Service{client: client}
}

// Profile returns the normalized numerology profile for the requested name
// and birth date.
func (s *Service) Profile(ctx context.Context, req Request) (domain.Profile, error) {
	endpoint := provider.EndpointNumerologyPythagorean
	if req.System == SystemChaldean {
		endpoint = provider.EndpointNumerologyChaldean
	}

	raw, err := s.client.Fetch(ctx, endpoint, map[string]string{
		"name": req.Name,
		"date": req.Date.Format("2006-01-02"),
	})
	if err != nil {
		return domain.Profile{}, err
	}

	return Normalize(raw, req), nil
}
