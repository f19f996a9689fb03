// Package geocode talks to a Nominatim-compatible geocoding endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"travelalarm/config"
	"travelalarm/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultEndpoint  = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "travelalarm"
	defaultTimeout   = 10 * time.Second
)

type nominatimGeocoder struct {
	client    *http.Client
	endpoint  string
	userAgent string
	logger    *slog.Logger
}

// NewNominatimGeocoder creates a Geocoder backed by the Nominatim HTTP API.
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	endpoint := defaultEndpoint
	userAgent := defaultUserAgent
	timeout := defaultTimeout
	if cfg.Geocoding != nil {
		if cfg.Geocoding.Endpoint != "" {
			endpoint = strings.TrimRight(cfg.Geocoding.Endpoint, "/")
		}
		if cfg.Geocoding.UserAgent != "" {
			userAgent = cfg.Geocoding.UserAgent
		}
		if cfg.Geocoding.Timeout > 0 {
			timeout = cfg.Geocoding.Timeout
		}
	}

	return &nominatimGeocoder{
		client:    &http.Client{Timeout: timeout},
		endpoint:  endpoint,
		userAgent: userAgent,
		logger:    logger,
	}
}

// nominatimPlace is the subset of the Nominatim response we consume.
type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Forward resolves free text to candidate places.
func (g *nominatimGeocoder) Forward(ctx context.Context, text string, limit int) ([]service.GeocodedPlace, error) {
	if limit <= 0 {
		limit = 1
	}

	query := url.Values{}
	query.Set("q", text)
	query.Set("format", "jsonv2")
	query.Set("limit", strconv.Itoa(limit))

	var raw []nominatimPlace
	if err := g.get(ctx, g.endpoint+"/search?"+query.Encode(), &raw); err != nil {
		return nil, err
	}

	places := make([]service.GeocodedPlace, 0, len(raw))
	for _, p := range raw {
		place, err := toGeocodedPlace(p)
		if err != nil {
			g.logger.Warn("skipping malformed geocoding result",
				slog.String("display_name", p.DisplayName),
				slog.Any("error", err),
			)

			continue
		}
		places = append(places, place)
	}

	return places, nil
}

// Reverse resolves coordinates to the nearest place.
func (g *nominatimGeocoder) Reverse(ctx context.Context, lat, lon float64) (*service.GeocodedPlace, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("format", "jsonv2")

	var raw nominatimPlace
	if err := g.get(ctx, g.endpoint+"/reverse?"+query.Encode(), &raw); err != nil {
		return nil, err
	}

	place, err := toGeocodedPlace(raw)
	if err != nil {
		return nil, errors.Wrap(service.ErrGeocodingFailed, err.Error())
	}

	return &place, nil
}

func (g *nominatimGeocoder) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build geocoding request")
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(service.ErrGeocodingFailed, "geocoding endpoint returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode geocoding response")
	}

	return nil
}

func toGeocodedPlace(p nominatimPlace) (service.GeocodedPlace, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return service.GeocodedPlace{}, errors.Wrap(err, "parse latitude")
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return service.GeocodedPlace{}, errors.Wrap(err, "parse longitude")
	}

	return service.GeocodedPlace{
		Label:     ShortenLabel(p.DisplayName),
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// ShortenLabel trims a full Nominatim display name to its first two comma
// separated segments, which is what fits on a list row.
func ShortenLabel(displayName string) string {
	segments := strings.SplitN(displayName, ",", 3)
	if len(segments) <= 2 {
		return strings.TrimSpace(displayName)
	}

	return strings.TrimSpace(segments[0]) + "," + segments[1]
}
