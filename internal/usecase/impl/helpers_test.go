package impl

import (
	"io"
	"log/slog"

	"travelalarm/config"
	"travelalarm/internal/geo"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Alarm: &config.AlarmConfig{
			DefaultRadius:     1,
			DefaultRadiusUnit: string(geo.UnitKilometers),
			MaxQueuedAlarms:   16,
		},
	}
}
