package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"travelalarm/internal/domain/entity"
	"travelalarm/internal/usecase"
)

type trackerService struct {
	logger *slog.Logger

	mu        sync.RWMutex
	last      *entity.PositionSample
	status    entity.ProviderStatus
	consumers []usecase.PositionConsumer
}

// NewTrackerService creates the position tracker. The tracker starts with
// the provider assumed enabled; the provider corrects that through OnStatus
// once it knows better.
func NewTrackerService(logger *slog.Logger) usecase.PositionTracker {
	return &trackerService{
		logger: logger,
		status: entity.ProviderEnabled,
	}
}

// Register adds a consumer to the fan-out list.
func (s *trackerService) Register(consumer usecase.PositionConsumer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.consumers = append(s.consumers, consumer)
}

// OnPosition stores the latest sample and forwards it synchronously to every
// registered consumer, once per provider callback.
func (s *trackerService) OnPosition(ctx context.Context, lat, lon float64) {
	sample := entity.PositionSample{
		Latitude:  lat,
		Longitude: lon,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.last = &sample
	consumers := make([]usecase.PositionConsumer, len(s.consumers))
	copy(consumers, s.consumers)
	s.mu.Unlock()

	for _, consumer := range consumers {
		consumer.OnPositionSample(ctx, sample)
	}
}

// OnStatus applies a provider status transition. Only an actual change is
// forwarded; repeating the current status produces no event.
func (s *trackerService) OnStatus(ctx context.Context, status entity.ProviderStatus) {
	s.mu.Lock()
	if s.status == status {
		s.mu.Unlock()

		return
	}
	s.status = status
	consumers := make([]usecase.PositionConsumer, len(s.consumers))
	copy(consumers, s.consumers)
	s.mu.Unlock()

	s.logger.Info("location provider status changed", slog.String("status", string(status)))

	for _, consumer := range consumers {
		consumer.OnStatusChange(ctx, status)
	}
}

// LastKnown returns the most recent sample, if any fix arrived yet.
func (s *trackerService) LastKnown() (entity.PositionSample, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return entity.PositionSample{}, false
	}

	return *s.last, true
}

// Status returns the current provider status.
func (s *trackerService) Status() entity.ProviderStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status
}
