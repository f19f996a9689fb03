package impl

import (
	"context"
	"testing"

	"travelalarm/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingConsumer struct {
	samples  []entity.PositionSample
	statuses []entity.ProviderStatus
}

func (c *capturingConsumer) OnPositionSample(_ context.Context, sample entity.PositionSample) {
	c.samples = append(c.samples, sample)
}

func (c *capturingConsumer) OnStatusChange(_ context.Context, status entity.ProviderStatus) {
	c.statuses = append(c.statuses, status)
}

func TestTrackerService_OnPosition_FanOut(t *testing.T) {
	tracker := NewTrackerService(newTestLogger())
	consumer := &capturingConsumer{}
	tracker.Register(consumer)

	ctx := context.Background()
	tracker.OnPosition(ctx, 50.05, 19.94)
	tracker.OnPosition(ctx, 50.06, 19.95)

	require.Len(t, consumer.samples, 2)
	assert.Equal(t, 50.05, consumer.samples[0].Latitude)
	assert.Equal(t, 19.95, consumer.samples[1].Longitude)
	assert.False(t, consumer.samples[0].Timestamp.IsZero())

	last, ok := tracker.LastKnown()
	require.True(t, ok)
	assert.Equal(t, 50.06, last.Latitude)
	assert.Equal(t, 19.95, last.Longitude)
}

func TestTrackerService_LastKnown_BeforeFirstFix(t *testing.T) {
	tracker := NewTrackerService(newTestLogger())

	_, ok := tracker.LastKnown()
	assert.False(t, ok)
	assert.Equal(t, entity.ProviderEnabled, tracker.Status())
}

func TestTrackerService_OnStatus_EdgeTriggered(t *testing.T) {
	tracker := NewTrackerService(newTestLogger())
	consumer := &capturingConsumer{}
	tracker.Register(consumer)

	ctx := context.Background()

	// Repeating the initial status produces no event.
	tracker.OnStatus(ctx, entity.ProviderEnabled)
	assert.Empty(t, consumer.statuses)

	tracker.OnStatus(ctx, entity.ProviderDisabled)
	tracker.OnStatus(ctx, entity.ProviderDisabled)
	tracker.OnStatus(ctx, entity.ProviderEnabled)

	require.Len(t, consumer.statuses, 2)
	assert.Equal(t, entity.ProviderDisabled, consumer.statuses[0])
	assert.Equal(t, entity.ProviderEnabled, consumer.statuses[1])
	assert.Equal(t, entity.ProviderEnabled, tracker.Status())
}
