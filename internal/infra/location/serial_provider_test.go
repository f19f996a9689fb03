package location

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"travelalarm/internal/domain/entity"
	"travelalarm/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSerialProvider_DeliversFixesAndStatus(t *testing.T) {
	pr, pw := io.Pipe()
	restore := openSerialPort
	openSerialPort = func(string, int) (io.ReadCloser, error) {
		return pr, nil
	}
	defer func() { openSerialPort = restore }()

	provider := NewSerialProvider("/dev/ttyUSB0", 9600, discardLogger())

	type fix struct{ lat, lon float64 }
	positions := make(chan fix, 4)
	statuses := make(chan entity.ProviderStatus, 4)

	err := provider.Start(context.Background(), 0, 0,
		func(lat, lon float64) { positions <- fix{lat, lon} },
		func(status entity.ProviderStatus) { statuses <- status },
	)
	require.NoError(t, err)

	_, err = pw.Write([]byte("$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A\r\n"))
	require.NoError(t, err)

	select {
	case status := <-statuses:
		assert.Equal(t, entity.ProviderEnabled, status)
	case <-time.After(time.Second):
		t.Fatal("no status delivered for valid fix")
	}
	select {
	case got := <-positions:
		assert.InDelta(t, 48.1173, got.lat, 1e-4)
		assert.InDelta(t, 11.5166, got.lon, 1e-4)
	case <-time.After(time.Second):
		t.Fatal("no position delivered for valid fix")
	}

	// A void fix reports the provider as disabled but delivers no position.
	_, err = pw.Write([]byte("$GPRMC,123519,V,,,,,,,230394,,\r\n"))
	require.NoError(t, err)

	select {
	case status := <-statuses:
		assert.Equal(t, entity.ProviderDisabled, status)
	case <-time.After(time.Second):
		t.Fatal("no status delivered for void fix")
	}
	assert.Empty(t, positions)

	require.NoError(t, provider.Stop())
	pw.Close()
}

func TestSerialProvider_StartFailsWhenPortCannotOpen(t *testing.T) {
	restore := openSerialPort
	openSerialPort = func(string, int) (io.ReadCloser, error) {
		return nil, errors.New("no such device")
	}
	defer func() { openSerialPort = restore }()

	provider := NewSerialProvider("/dev/ttyUSB9", 9600, discardLogger())

	err := provider.Start(context.Background(), 0, 0,
		func(float64, float64) {}, func(entity.ProviderStatus) {})
	assert.ErrorIs(t, err, service.ErrProviderUnavailable)
}

func TestSerialProvider_StopWithoutStart(t *testing.T) {
	provider := NewSerialProvider("/dev/ttyUSB0", 9600, discardLogger())
	require.NoError(t, provider.Stop())
}
