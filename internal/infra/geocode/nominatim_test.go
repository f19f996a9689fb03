package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelalarm/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"io"
	"log/slog"
)

func newTestGeocoder(endpoint string) *nominatimGeocoder {
	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			Endpoint:  endpoint,
			UserAgent: "travelalarm-test",
			Timeout:   2 * time.Second,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewNominatimGeocoder(cfg, logger).(*nominatimGeocoder)
}

func TestNominatimGeocoder_Forward(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Main Market Square", r.URL.Query().Get("q"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		assert.Equal(t, "travelalarm-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"display_name": "Main Market Square, Old Town, Krakow, Poland", "lat": "50.0617", "lon": "19.9373"},
			{"display_name": "not-a-place", "lat": "bogus", "lon": "19.0"}
		]`))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL)

	places, err := geocoder.Forward(context.Background(), "Main Market Square", 3)
	require.NoError(t, err)

	// The malformed second result is dropped, not fatal.
	require.Len(t, places, 1)
	assert.Equal(t, "Main Market Square, Old Town", places[0].Label)
	assert.InDelta(t, 50.0617, places[0].Latitude, 1e-6)
	assert.InDelta(t, 19.9373, places[0].Longitude, 1e-6)
}

func TestNominatimGeocoder_Reverse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name": "Wawel Castle, Wawel, Krakow, Poland", "lat": "50.054", "lon": "19.935"}`))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL)

	place, err := geocoder.Reverse(context.Background(), 50.054, 19.935)
	require.NoError(t, err)
	assert.Equal(t, "Wawel Castle, Wawel", place.Label)
}

func TestNominatimGeocoder_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL)

	_, err := geocoder.Forward(context.Background(), "anywhere", 1)
	require.Error(t, err)
}

func TestShortenLabel(t *testing.T) {
	assert.Equal(t, "Main Market Square, Old Town",
		ShortenLabel("Main Market Square, Old Town, Krakow, Lesser Poland Voivodeship, Poland"))
	assert.Equal(t, "Krakow, Poland", ShortenLabel("Krakow, Poland"))
	assert.Equal(t, "Krakow", ShortenLabel("Krakow"))
	assert.Equal(t, "", ShortenLabel(""))
}
