package impl

import (
	"context"
	"testing"
	"time"

	"travelalarm/internal/domain/entity"
	"travelalarm/internal/geo"
	mockSvc "travelalarm/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEngine wires a fence store, alarm coordinator, tracker and engine
// the way the application container does.
func newTestEngine(t *testing.T, ctx context.Context, seed []*entity.Fence) (*fenceService, *alarmService, *trackerService, *engineService) {
	t.Helper()

	mockFenceRepo, fences := newTestFenceStore(t, ctx, seed)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	anyActive := false
	for _, fence := range seed {
		if fence.IsActive {
			anyActive = true
		}
	}
	if anyActive {
		mockFenceRepo.EXPECT().
			UpdateFence(mock.Anything, mock.AnythingOfType("*entity.Fence")).
			Return(nil).
			Maybe()
		mockPublisher.EXPECT().
			PublishAlarmEvent(mock.Anything, mock.AnythingOfType("*service.AlarmEvent")).
			Return(nil).
			Maybe()
	}

	alarms := NewAlarmService(fences, mockPublisher, newTestConfig(), newTestLogger())
	tracker := NewTrackerService(newTestLogger())
	engine := NewEngineService(fences, alarms, tracker, newTestLogger())
	tracker.Register(engine)

	require.NoError(t, fences.Load(ctx))

	return fences, alarms.(*alarmService), tracker.(*trackerService), engine.(*engineService)
}

func TestEngineService_TriggerInsideBuffer(t *testing.T) {
	ctx := context.Background()
	fenceID := uuid.New()

	// About 556 m from the fence center, well inside the 1 km buffer.
	_, alarms, tracker, _ := newTestEngine(t, ctx, []*entity.Fence{
		{ID: fenceID, IsActive: true, Label: "home", Latitude: 52.0, Longitude: 21.0, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
	})

	tracker.OnPosition(ctx, 52.005, 21.0)

	current, ok := alarms.Current()
	require.True(t, ok)
	assert.Equal(t, fenceID, current.FenceID)
}

func TestEngineService_NoTriggerOutsideBuffer(t *testing.T) {
	ctx := context.Background()

	// About 2.2 km from the center of a 1 km fence.
	_, alarms, tracker, _ := newTestEngine(t, ctx, []*entity.Fence{
		{ID: uuid.New(), IsActive: true, Latitude: 52.0, Longitude: 21.0, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
	})

	tracker.OnPosition(ctx, 52.02, 21.0)

	_, ok := alarms.Current()
	assert.False(t, ok)
}

func TestEngineService_BoundaryCountsAsInside(t *testing.T) {
	ctx := context.Background()
	fenceID := uuid.New()

	// The buffer radius equals the exact distance to the sample, so the
	// sample sits on the boundary.
	boundary := geo.DistanceMeters(52.0, 21.0, 52.005, 21.0)
	_, alarms, tracker, _ := newTestEngine(t, ctx, []*entity.Fence{
		{ID: fenceID, IsActive: true, Latitude: 52.0, Longitude: 21.0, Radius: boundary, RadiusUnit: geo.UnitMeters, CreatedAt: time.Now()},
	})

	tracker.OnPosition(ctx, 52.005, 21.0)

	current, ok := alarms.Current()
	require.True(t, ok)
	assert.Equal(t, fenceID, current.FenceID)
}

func TestEngineService_ExactlyOncePerEntry(t *testing.T) {
	ctx := context.Background()
	fenceID := uuid.New()

	fences, alarms, tracker, _ := newTestEngine(t, ctx, []*entity.Fence{
		{ID: fenceID, IsActive: true, Latitude: 52.0, Longitude: 21.0, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
	})

	// A stream of samples inside the buffer rings exactly one alarm: the
	// first trigger disarms the fence.
	tracker.OnPosition(ctx, 52.001, 21.0)
	tracker.OnPosition(ctx, 52.002, 21.0)
	tracker.OnPosition(ctx, 52.0, 21.0)

	_, ok := alarms.Current()
	require.True(t, ok)
	assert.Empty(t, alarms.Pending())

	fence, err := fences.GetFence(ctx, fenceID)
	require.NoError(t, err)
	assert.False(t, fence.IsActive)
}

func TestEngineService_RearmedFenceTriggersAgain(t *testing.T) {
	ctx := context.Background()
	fenceID := uuid.New()

	fences, alarms, tracker, engine := newTestEngine(t, ctx, []*entity.Fence{
		{ID: fenceID, IsActive: true, Latitude: 52.0, Longitude: 21.0, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
	})

	tracker.OnPosition(ctx, 52.0, 21.0)
	_, ok := alarms.Current()
	require.True(t, ok)
	alarms.StopAlarm(ctx)

	// Re-arming while still inside re-triggers on the next evaluation.
	require.NoError(t, fences.SetActive(ctx, fenceID, true))
	engine.Reevaluate(ctx)

	current, ok := alarms.Current()
	require.True(t, ok)
	assert.Equal(t, fenceID, current.FenceID)
}

func TestEngineService_Reevaluate_NoFixIsNoOp(t *testing.T) {
	ctx := context.Background()

	_, alarms, _, engine := newTestEngine(t, ctx, []*entity.Fence{
		{ID: uuid.New(), IsActive: true, Latitude: 52.0, Longitude: 21.0, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
	})

	engine.Reevaluate(ctx)

	_, ok := alarms.Current()
	assert.False(t, ok)
}

func TestEngineService_ProviderDisabledSuppressesEvaluation(t *testing.T) {
	ctx := context.Background()
	fenceID := uuid.New()

	_, alarms, tracker, _ := newTestEngine(t, ctx, []*entity.Fence{
		{ID: fenceID, IsActive: true, Latitude: 52.0, Longitude: 21.0, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
	})

	tracker.OnStatus(ctx, entity.ProviderDisabled)
	tracker.OnPosition(ctx, 52.0, 21.0)

	_, ok := alarms.Current()
	assert.False(t, ok)

	// Re-enabling resumes evaluation with the next sample.
	tracker.OnStatus(ctx, entity.ProviderEnabled)
	tracker.OnPosition(ctx, 52.0, 21.0)

	current, ok := alarms.Current()
	require.True(t, ok)
	assert.Equal(t, fenceID, current.FenceID)
}

func TestEngineService_MalformedRadiusSkipped(t *testing.T) {
	ctx := context.Background()
	badID := uuid.New()
	goodID := uuid.New()

	_, alarms, tracker, _ := newTestEngine(t, ctx, []*entity.Fence{
		{ID: badID, IsActive: true, Latitude: 52.0, Longitude: 21.0, Radius: 1, RadiusUnit: geo.Unit("parsec"), CreatedAt: time.Now()},
		{ID: goodID, IsActive: true, Latitude: 52.0, Longitude: 21.0, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
	})

	// The malformed fence is skipped without aborting the pass.
	tracker.OnPosition(ctx, 52.0, 21.0)

	current, ok := alarms.Current()
	require.True(t, ok)
	assert.Equal(t, goodID, current.FenceID)
	assert.Empty(t, alarms.Pending())
}
