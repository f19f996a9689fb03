package usecase

import (
	"context"
	"time"

	"travelalarm/internal/geo"

	"github.com/google/uuid"
)

// ActiveAlarm describes a ringing alarm as presented to the user.
type ActiveAlarm struct {
	ID          uuid.UUID `json:"id"`
	FenceID     uuid.UUID `json:"fence_id"`
	Label       string    `json:"label"`
	Radius      float64   `json:"radius"`
	RadiusUnit  geo.Unit  `json:"radius_unit"`
	TriggeredAt time.Time `json:"triggered_at"`
}

// AlarmUsecase owns the lifecycle of ringing alarms. One alarm is presented
// at a time; triggers arriving while an alarm rings are queued, not dropped.
type AlarmUsecase interface {
	// OnTrigger handles a fence trigger: it deactivates the fence, then
	// rings or queues an alarm. Triggers for deleted or already-inactive
	// fences are silently ignored.
	OnTrigger(ctx context.Context, fenceID uuid.UUID) error

	// StopAlarm dismisses the ringing alarm and promotes the next queued
	// one. Calling with no active alarm is a no-op.
	StopAlarm(ctx context.Context)

	// Current returns the ringing alarm, if any.
	Current() (*ActiveAlarm, bool)

	// Pending returns the queued alarms waiting behind the ringing one.
	Pending() []*ActiveAlarm
}
