package impl

import (
	"context"
	"testing"
	"time"

	"travelalarm/internal/domain/entity"
	"travelalarm/internal/geo"
	mockRepo "travelalarm/internal/mocks/repository"
	mockSvc "travelalarm/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFenceStore(t *testing.T, ctx context.Context, seed []*entity.Fence) (*mockRepo.MockFenceRepository, *fenceService) {
	t.Helper()

	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return(seed, nil)

	return mockFenceRepo, svc.(*fenceService)
}

func TestAlarmService_OnTrigger_DisarmsAndRings(t *testing.T) {
	ctx := context.Background()
	fenceID := uuid.New()

	mockFenceRepo, fences := newTestFenceStore(t, ctx, []*entity.Fence{
		{ID: fenceID, IsActive: true, Label: "Central Station", Latitude: 50.067, Longitude: 19.947, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
	})
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	alarms := NewAlarmService(fences, mockPublisher, newTestConfig(), newTestLogger())

	mockFenceRepo.EXPECT().
		UpdateFence(ctx, mock.AnythingOfType("*entity.Fence")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishAlarmEvent(ctx, mock.AnythingOfType("*service.AlarmEvent")).
		Return(nil)

	err := alarms.OnTrigger(ctx, fenceID)
	require.NoError(t, err)

	// The fence is disarmed before the alarm is presented.
	fence, err := fences.GetFence(ctx, fenceID)
	require.NoError(t, err)
	assert.False(t, fence.IsActive)

	current, ok := alarms.Current()
	require.True(t, ok)
	assert.Equal(t, fenceID, current.FenceID)
	assert.Equal(t, "Central Station", current.Label)
	assert.Empty(t, alarms.Pending())
}

func TestAlarmService_OnTrigger_InactiveFenceIgnored(t *testing.T) {
	ctx := context.Background()
	fenceID := uuid.New()

	_, fences := newTestFenceStore(t, ctx, []*entity.Fence{
		{ID: fenceID, IsActive: false, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
	})
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	alarms := NewAlarmService(fences, mockPublisher, newTestConfig(), newTestLogger())

	err := alarms.OnTrigger(ctx, fenceID)
	require.NoError(t, err)

	_, ok := alarms.Current()
	assert.False(t, ok)
}

func TestAlarmService_OnTrigger_DeletedFenceIgnored(t *testing.T) {
	ctx := context.Background()

	_, fences := newTestFenceStore(t, ctx, nil)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	alarms := NewAlarmService(fences, mockPublisher, newTestConfig(), newTestLogger())

	// A trigger racing a delete resolves silently.
	err := alarms.OnTrigger(ctx, uuid.New())
	require.NoError(t, err)

	_, ok := alarms.Current()
	assert.False(t, ok)
}

func TestAlarmService_QueueingAndDismissal(t *testing.T) {
	ctx := context.Background()
	firstID := uuid.New()
	secondID := uuid.New()

	mockFenceRepo, fences := newTestFenceStore(t, ctx, []*entity.Fence{
		{ID: firstID, IsActive: true, Label: "first", Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
		{ID: secondID, IsActive: true, Label: "second", Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
	})
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	alarms := NewAlarmService(fences, mockPublisher, newTestConfig(), newTestLogger())

	mockFenceRepo.EXPECT().
		UpdateFence(ctx, mock.AnythingOfType("*entity.Fence")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishAlarmEvent(ctx, mock.AnythingOfType("*service.AlarmEvent")).
		Return(nil)

	require.NoError(t, alarms.OnTrigger(ctx, firstID))
	require.NoError(t, alarms.OnTrigger(ctx, secondID))

	current, ok := alarms.Current()
	require.True(t, ok)
	assert.Equal(t, firstID, current.FenceID)

	pending := alarms.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, secondID, pending[0].FenceID)

	// Dismissal promotes the queued alarm.
	alarms.StopAlarm(ctx)
	current, ok = alarms.Current()
	require.True(t, ok)
	assert.Equal(t, secondID, current.FenceID)
	assert.Empty(t, alarms.Pending())

	alarms.StopAlarm(ctx)
	_, ok = alarms.Current()
	assert.False(t, ok)

	// Dismissing with nothing ringing is a no-op.
	alarms.StopAlarm(ctx)
}

func TestAlarmService_PublishFailureDoesNotFailTrigger(t *testing.T) {
	ctx := context.Background()
	fenceID := uuid.New()

	mockFenceRepo, fences := newTestFenceStore(t, ctx, []*entity.Fence{
		{ID: fenceID, IsActive: true, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
	})
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	alarms := NewAlarmService(fences, mockPublisher, newTestConfig(), newTestLogger())

	mockFenceRepo.EXPECT().
		UpdateFence(ctx, mock.AnythingOfType("*entity.Fence")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishAlarmEvent(ctx, mock.AnythingOfType("*service.AlarmEvent")).
		Return(errors.New("broker unavailable"))

	err := alarms.OnTrigger(ctx, fenceID)
	require.NoError(t, err)

	_, ok := alarms.Current()
	assert.True(t, ok)
}
