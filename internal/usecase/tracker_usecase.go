package usecase

import (
	"context"

	"travelalarm/internal/domain/entity"
)

// PositionConsumer receives the tracker's canonical event stream. Delivery is
// synchronous and at-most-once per provider callback; there is no buffering
// or replay.
type PositionConsumer interface {
	// OnPositionSample is invoked for every accepted position fix.
	OnPositionSample(ctx context.Context, sample entity.PositionSample)

	// OnStatusChange is invoked only when the provider status actually
	// changes (edge-triggered).
	OnStatusChange(ctx context.Context, status entity.ProviderStatus)
}

// PositionTracker normalizes raw provider callbacks into the canonical
// stream consumed by the geofence engine.
type PositionTracker interface {
	// OnPosition stores the latest sample and forwards it to all registered
	// consumers.
	OnPosition(ctx context.Context, lat, lon float64)

	// OnStatus applies a provider status transition. Repeating the current
	// status produces no event.
	OnStatus(ctx context.Context, status entity.ProviderStatus)

	// LastKnown returns the most recent sample, if any fix arrived yet.
	LastKnown() (entity.PositionSample, bool)

	// Status returns the current provider status.
	Status() entity.ProviderStatus

	// Register adds a consumer to the fan-out list. Not safe to call after
	// delivery started.
	Register(consumer PositionConsumer)
}
