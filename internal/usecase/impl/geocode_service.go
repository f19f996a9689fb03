package impl

import (
	"context"
	"fmt"
	"strings"

	"travelalarm/config"
	"travelalarm/internal/domain/service"
	"travelalarm/internal/usecase"
)

const defaultSearchLimit = 5

type geocodeService struct {
	geocoder service.Geocoder
	limit    int
}

// NewGeocodeService creates the geocode service exposed to the presentation
// layer for address search.
func NewGeocodeService(geocoder service.Geocoder, cfg *config.Config) usecase.GeocodeUsecase {
	limit := defaultSearchLimit
	if cfg.Geocoding != nil && cfg.Geocoding.SearchLimit > 0 {
		limit = cfg.Geocoding.SearchLimit
	}

	return &geocodeService{
		geocoder: geocoder,
		limit:    limit,
	}
}

// Search forward-geocodes free text to at most limit places.
func (s *geocodeService) Search(ctx context.Context, text string, limit int) ([]service.GeocodedPlace, error) {
	if strings.TrimSpace(text) == "" {
		return nil, service.ErrGeocodingFailed
	}

	if limit <= 0 || limit > s.limit {
		limit = s.limit
	}

	places, err := s.geocoder.Forward(ctx, text, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search address: %w", err)
	}

	return places, nil
}

// ReverseLookup resolves map coordinates to the nearest place.
func (s *geocodeService) ReverseLookup(ctx context.Context, lat, lon float64) (*service.GeocodedPlace, error) {
	place, err := s.geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("failed to reverse geocode: %w", err)
	}

	return place, nil
}
