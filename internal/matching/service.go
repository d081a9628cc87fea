package matching

import (
	"context"
	"time"

	"github.com/AstroMantra/astro-backend/internal/matching/domain"
	"github.com/AstroMantra/astro-backend/internal/provider"
)

// Service fetches marriage compatibility reports from the provider and
// normalizes them.
type Service struct {
	client *provider.Client
}

func NewService(client *provider.Client) *Service {
	return &Service{client: client}
}

// Match returns the normalized compatibility report for the two parties.
func (s *Service) Match(ctx context.Context, req Request) (domain.MatchReport, error) {
	raw, err := s.client.Fetch(ctx, provider.EndpointKundliMatching, map[string]string{
		"ayanamsa":          req.Ayanamsa,
		"groom_dob":         req.GroomBirth.Format(time.RFC3339),
		"groom_coordinates": req.GroomCoordinates,
		"bride_dob":         req.BrideBirth.Format(time.RFC3339),
		"bride_coordinates": req.BrideCoordinates,
		"system":            req.System,
	})
	if err != nil {
		return domain.MatchReport{}, err
	}

	return Normalize(raw, req), nil
}
