package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrGeocodingFailed is returned on any geocoding lookup error: network
// failure, timeout, or no match. Callers roll the affected edit back.
var ErrGeocodingFailed = errors.New("geocoding failed")

// GeocodedPlace is one geocoding result.
type GeocodedPlace struct {
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves free-text addresses and coordinates to places.
type Geocoder interface {
	// Forward geocodes free text to at most limit places.
	Forward(ctx context.Context, text string, limit int) ([]GeocodedPlace, error)

	// Reverse resolves coordinates to the nearest addressable place.
	Reverse(ctx context.Context, lat, lon float64) (*GeocodedPlace, error)
}
