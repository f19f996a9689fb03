package service

import (
	"context"
)

// AlarmEvent is published when a fence triggers, so external alarm surfaces
// (push notifications, webhooks) can ring on the user's devices.
type AlarmEvent struct {
	RequestID   string  `json:"request_id,omitempty"` // For distributed tracing
	AlarmID     string  `json:"alarm_id"`
	FenceID     string  `json:"fence_id"`
	Label       string  `json:"label"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Radius      float64 `json:"radius"`
	RadiusUnit  string  `json:"radius_unit"`
	TriggeredAt string  `json:"triggered_at"`
}

// EventPublisher defines the interface for publishing alarm events to a
// message queue.
type EventPublisher interface {
	// PublishAlarmEvent publishes an alarm event for async processing
	PublishAlarmEvent(ctx context.Context, event *AlarmEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
