package location

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"travelalarm/internal/domain/entity"
	"travelalarm/internal/domain/service"
	"travelalarm/internal/geo"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

const defaultBaudRate = 9600

// openSerialPort is swapped out in tests.
var openSerialPort = func(path string, baudRate int) (io.ReadCloser, error) {
	return serial.Open(path, &serial.Mode{BaudRate: baudRate})
}

// serialProvider reads NMEA sentences from a GNSS receiver on a serial port
// and pushes decoded fixes to the registered callbacks.
type serialProvider struct {
	path     string
	baudRate int
	logger   *slog.Logger

	mu     sync.Mutex
	port   io.ReadCloser
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSerialProvider creates a LocationProvider backed by an NMEA serial
// device.
func NewSerialProvider(path string, baudRate int, logger *slog.Logger) service.LocationProvider {
	if baudRate <= 0 {
		baudRate = defaultBaudRate
	}

	return &serialProvider{
		path:     path,
		baudRate: baudRate,
		logger:   logger,
	}
}

// Start opens the device and begins the read loop.
func (p *serialProvider) Start(ctx context.Context, minInterval time.Duration, minDistance float64, onPosition service.PositionCallback, onStatus service.StatusCallback) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.port != nil {
		return errors.New("location provider already started")
	}

	port, err := openSerialPort(p.path, p.baudRate)
	if err != nil {
		return errors.Wrapf(service.ErrProviderUnavailable, "open %s: %v", p.path, err)
	}

	readCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	p.port = port
	p.cancel = cancel
	p.done = done

	go p.readLoop(readCtx, port, done, minInterval, minDistance, onPosition, onStatus)

	return nil
}

// Stop closes the device and waits for the read loop to drain.
func (p *serialProvider) Stop() error {
	p.mu.Lock()
	port := p.port
	cancel := p.cancel
	done := p.done
	p.port = nil
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if port == nil {
		return nil
	}

	cancel()
	// Closing the port unblocks the scanner's pending read.
	err := port.Close()
	<-done

	return errors.Wrap(err, "failed to close serial port")
}

// readLoop decodes sentences until the port closes. Fix validity drives the
// status callback; the tracker deduplicates repeats.
func (p *serialProvider) readLoop(ctx context.Context, port io.Reader, done chan struct{}, minInterval time.Duration, minDistance float64, onPosition service.PositionCallback, onStatus service.StatusCallback) {
	defer close(done)

	filter := newFixFilter(minInterval, minDistance)
	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		fix, err := parseNMEASentence(scanner.Text())
		if err != nil {
			if !errors.Is(err, errUnsupportedSentence) {
				p.logger.Debug("skipping unreadable NMEA sentence", slog.Any("error", err))
			}

			continue
		}

		if !fix.Valid {
			onStatus(entity.ProviderDisabled)

			continue
		}

		onStatus(entity.ProviderEnabled)
		if filter.accept(fix.Latitude, fix.Longitude, time.Now()) {
			onPosition(fix.Latitude, fix.Longitude)
		}
	}

	if ctx.Err() == nil {
		if err := scanner.Err(); err != nil {
			p.logger.Error("serial read loop terminated", slog.Any("error", err))
		}
		onStatus(entity.ProviderUnavailable)
	}
}

// fixFilter throttles fix delivery to at most one per minInterval and only
// after the device moved minDistance meters, matching the platform location
// API semantics the rest of the system expects.
type fixFilter struct {
	minInterval time.Duration
	minDistance float64

	delivered bool
	lastTime  time.Time
	lastLat   float64
	lastLon   float64
}

func newFixFilter(minInterval time.Duration, minDistance float64) *fixFilter {
	return &fixFilter{
		minInterval: minInterval,
		minDistance: minDistance,
	}
}

func (f *fixFilter) accept(lat, lon float64, now time.Time) bool {
	if f.delivered {
		if f.minInterval > 0 && now.Sub(f.lastTime) < f.minInterval {
			return false
		}
		if f.minDistance > 0 && geo.DistanceMeters(f.lastLat, f.lastLon, lat, lon) < f.minDistance {
			return false
		}
	}

	f.delivered = true
	f.lastTime = now
	f.lastLat = lat
	f.lastLon = lon

	return true
}
