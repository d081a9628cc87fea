package panchang

import (
	"context"
	"fmt"
	"time"

	"github.com/AstroMantra/astro-backend/internal/cache"
	"github.com/AstroMantra/astro-backend/internal/panchang/domain"
	"github.com/AstroMantra/astro-backend/internal/provider"
)

// Service fetches panchang and calendar data from the provider and
// normalizes it. The response cache may be nil.
type Service struct {
	client *provider.Client
	cache  *cache.ResponseCache
}

func NewService(client *provider.Client, respCache *cache.ResponseCache) *Service {
	return &Service{client: client, cache: respCache}
}

// Daily returns the normalized panchang for the requested date and place.
func (s *Service) Daily(ctx context.Context, req Request) (domain.Panchang, error) {
	key := cache.Key("panchang", req.Date.Format("2006-01-02"), coordinates(req.Latitude, req.Longitude))

	var cached domain.Panchang
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	raw, err := s.client.Fetch(ctx, provider.EndpointPanchang, map[string]string{
		"ayanamsa":    req.Ayanamsa,
		"coordinates": coordinates(req.Latitude, req.Longitude),
		"datetime":    req.Date.Format(time.RFC3339),
	})
	if err != nil {
		return domain.Panchang{}, err
	}

	p := Normalize(raw, req)
	s.cache.Set(ctx, key, p)
	return p, nil
}

// Calendar returns the normalized calendar record for the requested date.
func (s *Service) Calendar(ctx context.Context, req CalendarRequest) (domain.CalendarDay, error) {
	key := cache.Key("calendar", req.Type, req.Date.Format("2006-01-02"), coordinates(req.Latitude, req.Longitude))

	var cached domain.CalendarDay
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	raw, err := s.client.Fetch(ctx, provider.EndpointCalendar, map[string]string{
		"ayanamsa":    req.Ayanamsa,
		"coordinates": coordinates(req.Latitude, req.Longitude),
		"datetime":    req.Date.Format(time.RFC3339),
		"calendar":    req.Type,
	})
	if err != nil {
		return domain.CalendarDay{}, err
	}

	day := NormalizeCalendar(raw, req)
	s.cache.Set(ctx, key, day)
	return day, nil
}

func coordinates(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}
