package usecase

import "context"

// GeofenceEngine evaluates position samples against the armed fences and
// raises triggers. It consumes the tracker's canonical stream.
type GeofenceEngine interface {
	PositionConsumer

	// Reevaluate runs one evaluation pass against the tracker's last known
	// position, for callers whose own event fired independently of a fix
	// (e.g. a fence was re-armed).
	Reevaluate(ctx context.Context)
}
