package impl

import (
	"context"
	"log/slog"
	"sync"

	"travelalarm/internal/domain/entity"
	"travelalarm/internal/geo"
	"travelalarm/internal/usecase"
)

type engineService struct {
	fences  usecase.FenceUsecase
	alarms  usecase.AlarmUsecase
	tracker usecase.PositionTracker
	logger  *slog.Logger

	// mu makes "read armed fences, test membership, deactivate on trigger"
	// a single critical section; two evaluation passes never interleave.
	mu     sync.Mutex
	status entity.ProviderStatus
}

// NewEngineService creates the geofence engine. Wire it to the tracker with
// tracker.Register(engine) after construction.
func NewEngineService(fences usecase.FenceUsecase, alarms usecase.AlarmUsecase, tracker usecase.PositionTracker, logger *slog.Logger) usecase.GeofenceEngine {
	return &engineService{
		fences:  fences,
		alarms:  alarms,
		tracker: tracker,
		logger:  logger,
		status:  entity.ProviderEnabled,
	}
}

// OnStatusChange records the provider status. Transitions are delivered by
// the tracker before the next sample's evaluation, so a stale last-known fix
// can never trigger once the provider is known to be off.
func (s *engineService) OnStatusChange(_ context.Context, status entity.ProviderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = status
}

// OnPositionSample runs one evaluation pass for the sample.
func (s *engineService) OnPositionSample(ctx context.Context, sample entity.PositionSample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != entity.ProviderEnabled {
		return
	}

	s.evaluate(ctx, sample)
}

// Reevaluate runs one evaluation pass against the last known position, for
// callers whose own event fired independently of a fix.
func (s *engineService) Reevaluate(ctx context.Context) {
	sample, ok := s.tracker.LastKnown()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != entity.ProviderEnabled {
		return
	}

	s.evaluate(ctx, sample)
}

// evaluate tests the sample against a stable snapshot of the armed fences.
// Each fence is considered at most once per pass; a trigger deactivates the
// fence synchronously through the alarm coordinator, so the next pass will
// not see it armed. The pass never fails: malformed fences are skipped and
// coordinator errors are logged.
func (s *engineService) evaluate(ctx context.Context, sample entity.PositionSample) {
	for _, fence := range s.fences.ActiveFences() {
		radiusMeters, err := fence.RadiusMeters()
		if err != nil {
			s.logger.Warn("skipping fence with malformed radius",
				slog.String("fence_id", fence.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		distance := geo.DistanceMeters(sample.Latitude, sample.Longitude, fence.Latitude, fence.Longitude)
		if distance > radiusMeters {
			continue
		}

		// Boundary counts as inside.
		if err := s.alarms.OnTrigger(ctx, fence.ID); err != nil {
			s.logger.Error("failed to handle fence trigger",
				slog.String("fence_id", fence.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}
