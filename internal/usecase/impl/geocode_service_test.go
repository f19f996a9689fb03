package impl

import (
	"context"
	"testing"

	"travelalarm/config"
	"travelalarm/internal/domain/service"
	mockSvc "travelalarm/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocodeTestConfig() *config.Config {
	cfg := newTestConfig()
	cfg.Geocoding = &config.GeocodingConfig{SearchLimit: 5}

	return cfg
}

func TestGeocodeService_Search(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewGeocodeService(mockGeocoder, newGeocodeTestConfig())

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Forward(ctx, "Wawel", 3).
		Return([]service.GeocodedPlace{
			{Label: "Wawel, Krakow", Latitude: 50.054, Longitude: 19.935},
		}, nil)

	places, err := svc.Search(ctx, "Wawel", 3)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Wawel, Krakow", places[0].Label)
}

func TestGeocodeService_Search_LimitClamped(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewGeocodeService(mockGeocoder, newGeocodeTestConfig())

	ctx := context.Background()

	// Both an oversized and an unset limit collapse to the configured cap.
	mockGeocoder.EXPECT().
		Forward(ctx, "Wawel", 5).
		Return(nil, nil).
		Times(2)

	_, err := svc.Search(ctx, "Wawel", 50)
	require.NoError(t, err)

	_, err = svc.Search(ctx, "Wawel", 0)
	require.NoError(t, err)
}

func TestGeocodeService_Search_EmptyText(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewGeocodeService(mockGeocoder, newGeocodeTestConfig())

	places, err := svc.Search(context.Background(), "   ", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrGeocodingFailed)
	assert.Nil(t, places)
}

func TestGeocodeService_ReverseLookup(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewGeocodeService(mockGeocoder, newGeocodeTestConfig())

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Reverse(ctx, 50.054, 19.935).
		Return(&service.GeocodedPlace{Label: "Wawel, Krakow", Latitude: 50.054, Longitude: 19.935}, nil)

	place, err := svc.ReverseLookup(ctx, 50.054, 19.935)
	require.NoError(t, err)
	assert.Equal(t, "Wawel, Krakow", place.Label)
}

func TestGeocodeService_ReverseLookup_ProviderError(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewGeocodeService(mockGeocoder, newGeocodeTestConfig())

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Reverse(ctx, 0.0, 0.0).
		Return(nil, errors.New("nominatim timeout"))

	place, err := svc.ReverseLookup(ctx, 0.0, 0.0)
	require.Error(t, err)
	assert.Nil(t, place)
}
