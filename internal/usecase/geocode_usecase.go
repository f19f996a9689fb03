package usecase

import (
	"context"

	"travelalarm/internal/domain/service"
)

// GeocodeUsecase exposes address search to the presentation layer.
type GeocodeUsecase interface {
	// Search forward-geocodes free text to at most limit places.
	Search(ctx context.Context, text string, limit int) ([]service.GeocodedPlace, error)

	// ReverseLookup resolves map coordinates to the nearest place.
	ReverseLookup(ctx context.Context, lat, lon float64) (*service.GeocodedPlace, error)
}
