package location

import (
	"context"
	"log/slog"
	"time"

	"travelalarm/config"
	"travelalarm/internal/domain/constants"
	"travelalarm/internal/domain/service"
)

// New creates the LocationProvider selected by configuration. The "http"
// provider is a stub: positions then arrive only through the ingest API.
func New(cfg *config.Config, logger *slog.Logger) service.LocationProvider {
	if cfg.Location != nil && cfg.Location.Provider == constants.LocationProviderSerial {
		return NewSerialProvider(cfg.Location.SerialPort, cfg.Location.BaudRate, logger)
	}

	return &noopProvider{}
}

// noopProvider delivers nothing. Used when positions are pushed to the HTTP
// ingest endpoint instead of read from a device.
type noopProvider struct{}

func (*noopProvider) Start(_ context.Context, _ time.Duration, _ float64, _ service.PositionCallback, _ service.StatusCallback) error {
	return nil
}

func (*noopProvider) Stop() error {
	return nil
}
