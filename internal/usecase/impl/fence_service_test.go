package impl

import (
	"context"
	"testing"
	"time"

	"travelalarm/internal/domain/entity"
	"travelalarm/internal/domain/repository"
	"travelalarm/internal/domain/service"
	"travelalarm/internal/geo"
	mockRepo "travelalarm/internal/mocks/repository"
	mockSvc "travelalarm/internal/mocks/service"
	"travelalarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFenceService_AddFence_Defaults(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return(nil, nil)

	mockFenceRepo.EXPECT().
		CreateFence(ctx, mock.AnythingOfType("*entity.Fence")).
		Return(nil)

	fence, err := svc.AddFence(ctx, &usecase.AddFenceInput{
		Label:     "Main Market Square",
		Latitude:  50.0617,
		Longitude: 19.9373,
	})
	require.NoError(t, err)
	assert.True(t, fence.IsActive)
	assert.Equal(t, float64(1), fence.Radius)
	assert.Equal(t, geo.UnitKilometers, fence.RadiusUnit)
	assert.False(t, fence.CreatedAt.IsZero())
	assert.NotEqual(t, uuid.Nil, fence.ID)
}

func TestFenceService_AddFenceByAddress(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Forward(ctx, "Main Market Square, Krakow", 1).
		Return([]service.GeocodedPlace{
			{Label: "Main Market Square, Krakow", Latitude: 50.0617, Longitude: 19.9373},
		}, nil)

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return(nil, nil)

	mockFenceRepo.EXPECT().
		CreateFence(ctx, mock.AnythingOfType("*entity.Fence")).
		Return(nil)

	fence, err := svc.AddFenceByAddress(ctx, "Main Market Square, Krakow")
	require.NoError(t, err)
	assert.Equal(t, "Main Market Square, Krakow", fence.Label)
	assert.Equal(t, 50.0617, fence.Latitude)
	assert.Equal(t, 19.9373, fence.Longitude)
}

func TestFenceService_AddFenceByAddress_NoMatch(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Forward(ctx, "no such place", 1).
		Return(nil, nil)

	fence, err := svc.AddFenceByAddress(ctx, "no such place")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrGeocodingFailed)
	assert.Nil(t, fence)
}

func TestFenceService_GetFence_NotFound(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return(nil, nil)

	fence, err := svc.GetFence(ctx, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrFenceNotFound)
	assert.Nil(t, fence)
}

func TestFenceService_UpdateRadius(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()
	fenceID := uuid.New()

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return([]*entity.Fence{
			{ID: fenceID, IsActive: true, Radius: 2, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
		}, nil)

	mockFenceRepo.EXPECT().
		UpdateFence(ctx, mock.AnythingOfType("*entity.Fence")).
		Return(nil)

	fence, err := svc.UpdateRadius(ctx, fenceID, 250, geo.UnitMeters)
	require.NoError(t, err)
	assert.Equal(t, float64(250), fence.Radius)
	assert.Equal(t, geo.UnitMeters, fence.RadiusUnit)
}

func TestFenceService_UpdateRadius_BelowMinimumRetainsPrevious(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()
	fenceID := uuid.New()

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return([]*entity.Fence{
			{ID: fenceID, IsActive: true, Radius: 2, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
		}, nil)

	fence, err := svc.UpdateRadius(ctx, fenceID, 0.5, geo.UnitMeters)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRadius)
	assert.Nil(t, fence)

	// The previous radius survives the rejected edit.
	kept, err := svc.GetFence(ctx, fenceID)
	require.NoError(t, err)
	assert.Equal(t, float64(2), kept.Radius)
	assert.Equal(t, geo.UnitKilometers, kept.RadiusUnit)
}

func TestFenceService_UpdateRadius_UnknownUnit(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()

	fence, err := svc.UpdateRadius(ctx, uuid.New(), 5, geo.Unit("mi"))
	require.Error(t, err)
	assert.ErrorIs(t, err, geo.ErrInvalidUnit)
	assert.Nil(t, fence)
}

func TestFenceService_SetActive_NoOpWhenUnchanged(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()
	fenceID := uuid.New()

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return([]*entity.Fence{
			{ID: fenceID, IsActive: true, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
		}, nil)

	// No UpdateFence expectation: arming an armed fence must not hit the
	// repository.
	err := svc.SetActive(ctx, fenceID, true)
	require.NoError(t, err)
}

func TestFenceService_SetActive_Disarm(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()
	fenceID := uuid.New()

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return([]*entity.Fence{
			{ID: fenceID, IsActive: true, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
		}, nil)

	mockFenceRepo.EXPECT().
		UpdateFence(ctx, mock.AnythingOfType("*entity.Fence")).
		Return(nil)

	err := svc.SetActive(ctx, fenceID, false)
	require.NoError(t, err)

	fence, err := svc.GetFence(ctx, fenceID)
	require.NoError(t, err)
	assert.False(t, fence.IsActive)
	assert.Empty(t, svc.ActiveFences())
}

func TestFenceService_SetActive_NotFound(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return(nil, nil)

	err := svc.SetActive(ctx, uuid.New(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrFenceNotFound)
}

func TestFenceService_DeleteFence(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()
	fenceID := uuid.New()

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return([]*entity.Fence{
			{ID: fenceID, IsActive: true, Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
		}, nil)

	mockFenceRepo.EXPECT().
		DeleteFence(ctx, fenceID).
		Return(nil)

	err := svc.DeleteFence(ctx, fenceID)
	require.NoError(t, err)

	_, err = svc.GetFence(ctx, fenceID)
	assert.ErrorIs(t, err, repository.ErrFenceNotFound)
}

func TestFenceService_DeleteFence_NotFound(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()
	fenceID := uuid.New()

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return(nil, nil)

	mockFenceRepo.EXPECT().
		DeleteFence(ctx, fenceID).
		Return(repository.ErrFenceNotFound)

	err := svc.DeleteFence(ctx, fenceID)
	assert.ErrorIs(t, err, repository.ErrFenceNotFound)
}

func TestFenceService_ListFences_Ordering(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	oldest := &entity.Fence{ID: uuid.New(), IsActive: false, Label: "zoo", Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: base}
	middle := &entity.Fence{ID: uuid.New(), IsActive: true, Label: "Airport", Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: base.Add(time.Hour)}
	newest := &entity.Fence{ID: uuid.New(), IsActive: false, Label: "market", Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: base.Add(2 * time.Hour)}

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return([]*entity.Fence{oldest, middle, newest}, nil)

	byCreated, err := svc.ListFences(ctx, entity.ListOrderCreated)
	require.NoError(t, err)
	require.Len(t, byCreated, 3)
	assert.Equal(t, newest.ID, byCreated[0].ID)
	assert.Equal(t, middle.ID, byCreated[1].ID)
	assert.Equal(t, oldest.ID, byCreated[2].ID)

	byActive, err := svc.ListFences(ctx, entity.ListOrderActive)
	require.NoError(t, err)
	assert.Equal(t, middle.ID, byActive[0].ID)
	assert.Equal(t, newest.ID, byActive[1].ID)
	assert.Equal(t, oldest.ID, byActive[2].ID)

	// Label ordering is case-insensitive.
	byLabel, err := svc.ListFences(ctx, entity.ListOrderLabel)
	require.NoError(t, err)
	assert.Equal(t, middle.ID, byLabel[0].ID)
	assert.Equal(t, newest.ID, byLabel[1].ID)
	assert.Equal(t, oldest.ID, byLabel[2].ID)

	// Unknown orders fall back to creation time.
	fallback, err := svc.ListFences(ctx, entity.ListOrder("distance"))
	require.NoError(t, err)
	assert.Equal(t, newest.ID, fallback[0].ID)
}

func TestFenceService_UpdateFence_RepositoryFailureKeepsMemory(t *testing.T) {
	mockFenceRepo := mockRepo.NewMockFenceRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	svc := NewFenceService(mockFenceRepo, mockGeocoder, newTestConfig(), newTestLogger())

	ctx := context.Background()
	fenceID := uuid.New()

	mockFenceRepo.EXPECT().
		FindAllFences(ctx).
		Return([]*entity.Fence{
			{ID: fenceID, IsActive: true, Label: "old", Radius: 1, RadiusUnit: geo.UnitKilometers, CreatedAt: time.Now()},
		}, nil)

	mockFenceRepo.EXPECT().
		UpdateFence(ctx, mock.AnythingOfType("*entity.Fence")).
		Return(errors.New("connection reset"))

	_, err := svc.UpdateCenter(ctx, fenceID, "new", 51.0, 20.0)
	require.Error(t, err)

	// The failed write never became visible.
	fence, err := svc.GetFence(ctx, fenceID)
	require.NoError(t, err)
	assert.Equal(t, "old", fence.Label)
}
