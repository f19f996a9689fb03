// Package service defines contracts for external collaborators the
// application core depends on.
package service

import (
	"context"
	"time"

	"travelalarm/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProviderUnavailable is returned when no usable location provider exists
// on this platform. The tracker stays constructible and simply reports no
// samples.
var ErrProviderUnavailable = errors.New("location provider unavailable")

// PositionCallback receives a position fix from the provider.
type PositionCallback func(lat, lon float64)

// StatusCallback receives a provider status change from the provider.
type StatusCallback func(status entity.ProviderStatus)

// LocationProvider adapts a platform location source. Delivery is push-based:
// the provider invokes the callbacks registered on Start from its own
// read loop.
type LocationProvider interface {
	// Start begins delivering fixes at most every minInterval and only after
	// the device moved at least minDistance meters.
	// Returns ErrProviderUnavailable when the platform source cannot be opened.
	Start(ctx context.Context, minInterval time.Duration, minDistance float64, onPosition PositionCallback, onStatus StatusCallback) error

	// Stop stops delivering fixes and releases the platform source.
	Stop() error
}
