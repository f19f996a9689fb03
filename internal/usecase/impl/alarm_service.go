package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"travelalarm/config"
	deliverycontext "travelalarm/internal/delivery/context"
	"travelalarm/internal/domain/repository"
	"travelalarm/internal/domain/service"
	"travelalarm/internal/usecase"

	"github.com/google/uuid"
)

type alarmService struct {
	fences    usecase.FenceUsecase
	publisher service.EventPublisher
	logger    *slog.Logger
	maxQueued int

	mu      sync.Mutex
	current *usecase.ActiveAlarm
	pending []*usecase.ActiveAlarm
}

// NewAlarmService creates the alarm coordinator. One alarm rings at a time;
// triggers arriving while it rings are queued rather than dropped.
func NewAlarmService(fences usecase.FenceUsecase, publisher service.EventPublisher, cfg *config.Config, logger *slog.Logger) usecase.AlarmUsecase {
	maxQueued := 16
	if cfg.Alarm != nil && cfg.Alarm.MaxQueuedAlarms > 0 {
		maxQueued = cfg.Alarm.MaxQueuedAlarms
	}

	return &alarmService{
		fences:    fences,
		publisher: publisher,
		logger:    logger,
		maxQueued: maxQueued,
	}
}

// OnTrigger handles a fence trigger. Deactivating the fence in the store is
// the serialization point that prevents duplicate alarms for repeated
// entries; it happens before the alarm is presented. Triggers racing a
// delete or deactivation are silently ignored.
func (s *alarmService) OnTrigger(ctx context.Context, fenceID uuid.UUID) error {
	fence, err := s.fences.GetFence(ctx, fenceID)
	if err != nil {
		if errors.Is(err, repository.ErrFenceNotFound) {
			s.logger.Debug("ignoring trigger for deleted fence", slog.String("fence_id", fenceID.String()))

			return nil
		}

		return fmt.Errorf("failed to look up triggered fence: %w", err)
	}

	if !fence.IsActive {
		return nil
	}

	if err := s.fences.SetActive(ctx, fenceID, false); err != nil {
		if errors.Is(err, repository.ErrFenceNotFound) {
			return nil
		}

		return fmt.Errorf("failed to deactivate triggered fence: %w", err)
	}

	alarm := &usecase.ActiveAlarm{
		ID:          uuid.New(),
		FenceID:     fence.ID,
		Label:       fence.Label,
		Radius:      fence.Radius,
		RadiusUnit:  fence.RadiusUnit,
		TriggeredAt: time.Now(),
	}

	s.mu.Lock()
	if s.current == nil {
		s.current = alarm
	} else if len(s.pending) < s.maxQueued {
		s.pending = append(s.pending, alarm)
	} else {
		s.logger.Warn("alarm queue full, dropping alarm",
			slog.String("fence_id", fence.ID.String()),
		)
	}
	s.mu.Unlock()

	s.logger.Info("alarm triggered",
		slog.String("fence_id", fence.ID.String()),
		slog.String("label", fence.Label),
	)

	s.publish(ctx, alarm, fence.Latitude, fence.Longitude)

	return nil
}

// publish forwards the alarm to external surfaces. Publishing is best
// effort: the fence is already disarmed, so a publish failure must not fail
// the trigger.
func (s *alarmService) publish(ctx context.Context, alarm *usecase.ActiveAlarm, lat, lon float64) {
	if s.publisher == nil {
		return
	}

	event := &service.AlarmEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		AlarmID:     alarm.ID.String(),
		FenceID:     alarm.FenceID.String(),
		Label:       alarm.Label,
		Latitude:    lat,
		Longitude:   lon,
		Radius:      alarm.Radius,
		RadiusUnit:  string(alarm.RadiusUnit),
		TriggeredAt: alarm.TriggeredAt.UTC().Format(time.RFC3339),
	}

	if err := s.publisher.PublishAlarmEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish alarm event",
			slog.String("alarm_id", alarm.ID.String()),
			slog.Any("error", err),
		)
	}
}

// StopAlarm dismisses the ringing alarm and promotes the next queued one.
// Dismissing when nothing rings is a no-op.
func (s *alarmService) StopAlarm(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}

	s.current = nil
	if len(s.pending) > 0 {
		s.current = s.pending[0]
		s.pending = s.pending[1:]
	}
}

// Current returns the ringing alarm, if any.
func (s *alarmService) Current() (*usecase.ActiveAlarm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}

	alarm := *s.current

	return &alarm, true
}

// Pending returns the queued alarms waiting behind the ringing one.
func (s *alarmService) Pending() []*usecase.ActiveAlarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]*usecase.ActiveAlarm, 0, len(s.pending))
	for _, alarm := range s.pending {
		clone := *alarm
		pending = append(pending, &clone)
	}

	return pending
}
