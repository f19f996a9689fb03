// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"travelalarm/config"
	"travelalarm/internal/domain/entity"
	"travelalarm/internal/domain/repository"
	"travelalarm/internal/domain/service"
	"travelalarm/internal/geo"
	"travelalarm/internal/usecase"

	"github.com/google/uuid"
)

// minRadiusMeters is the smallest buffer a fence may have.
const minRadiusMeters = 1.0

// ErrInvalidRadius is returned when a radius edit would shrink the buffer
// below one meter. The previous value is retained.
var ErrInvalidRadius = errors.New("fence radius must be at least one meter")

type fenceService struct {
	fenceRepo repository.FenceRepository
	geocoder  service.Geocoder
	config    *config.Config
	logger    *slog.Logger

	mu     sync.RWMutex
	fences map[uuid.UUID]*entity.Fence
	loaded bool
}

// NewFenceService creates the fence store, the single source of truth for
// fence records. Mutations commit to the repository before the in-memory
// set is touched, so a failed write never leaves a partially-written fence
// visible.
func NewFenceService(fenceRepo repository.FenceRepository, geocoder service.Geocoder, cfg *config.Config, logger *slog.Logger) usecase.FenceUsecase {
	if cfg.Alarm == nil {
		cfg.Alarm = &config.AlarmConfig{
			DefaultRadius:     1,
			DefaultRadiusUnit: string(geo.UnitKilometers),
		}
	}

	return &fenceService{
		fenceRepo: fenceRepo,
		geocoder:  geocoder,
		config:    cfg,
		logger:    logger,
		fences:    make(map[uuid.UUID]*entity.Fence),
	}
}

// Load hydrates the in-memory set from the repository. The lifecycle calls
// it once at startup so the engine never evaluates against an empty set.
func (s *fenceService) Load(ctx context.Context) error {
	return s.ensureLoaded(ctx)
}

// ensureLoaded hydrates the in-memory set from the repository once.
func (s *fenceService) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}

	fences, err := s.fenceRepo.FindAllFences(ctx)
	if err != nil {
		return fmt.Errorf("failed to load fences: %w", err)
	}

	for _, fence := range fences {
		s.fences[fence.ID] = fence
	}
	s.loaded = true

	return nil
}

// ListFences returns all fences in the requested order.
func (s *fenceService) ListFences(ctx context.Context, order entity.ListOrder) ([]*entity.Fence, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	fences := make([]*entity.Fence, 0, len(s.fences))
	for _, fence := range s.fences {
		fences = append(fences, cloneFence(fence))
	}
	s.mu.RUnlock()

	sortFences(fences, order)

	return fences, nil
}

// sortFences orders fences in place. Unrecognized orders fall back to
// creation time, newest first.
func sortFences(fences []*entity.Fence, order entity.ListOrder) {
	byCreatedDesc := func(a, b *entity.Fence) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}

		return a.ID.String() < b.ID.String()
	}

	switch order {
	case entity.ListOrderActive:
		sort.SliceStable(fences, func(i, j int) bool {
			if fences[i].IsActive != fences[j].IsActive {
				return fences[i].IsActive
			}

			return byCreatedDesc(fences[i], fences[j])
		})
	case entity.ListOrderLabel:
		sort.SliceStable(fences, func(i, j int) bool {
			return strings.ToLower(fences[i].Label) < strings.ToLower(fences[j].Label)
		})
	default:
		sort.SliceStable(fences, func(i, j int) bool {
			return byCreatedDesc(fences[i], fences[j])
		})
	}
}

// GetFence returns the fence with the given id.
func (s *fenceService) GetFence(ctx context.Context, id uuid.UUID) (*entity.Fence, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	fence, ok := s.fences[id]
	if !ok {
		return nil, repository.ErrFenceNotFound
	}

	return cloneFence(fence), nil
}

// AddFence creates an active fence with the configured default radius.
func (s *fenceService) AddFence(ctx context.Context, input *usecase.AddFenceInput) (*entity.Fence, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	fence := &entity.Fence{
		ID:         uuid.New(),
		IsActive:   true,
		Label:      input.Label,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Radius:     s.config.Alarm.DefaultRadius,
		RadiusUnit: geo.Unit(s.config.Alarm.DefaultRadiusUnit),
		CreatedAt:  time.Now(),
	}

	if err := s.fenceRepo.CreateFence(ctx, fence); err != nil {
		return nil, fmt.Errorf("failed to create fence: %w", err)
	}

	s.mu.Lock()
	s.fences[fence.ID] = cloneFence(fence)
	s.mu.Unlock()

	return fence, nil
}

// AddFenceByAddress forward-geocodes the text and creates a fence at the
// best match. No fence is created when geocoding fails.
func (s *fenceService) AddFenceByAddress(ctx context.Context, address string) (*entity.Fence, error) {
	places, err := s.geocoder.Forward(ctx, address, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	if len(places) == 0 {
		return nil, service.ErrGeocodingFailed
	}

	return s.AddFence(ctx, &usecase.AddFenceInput{
		Label:     places[0].Label,
		Latitude:  places[0].Latitude,
		Longitude: places[0].Longitude,
	})
}

// UpdateCenter moves a fence to a new geocoded center and label.
func (s *fenceService) UpdateCenter(ctx context.Context, id uuid.UUID, label string, lat, lon float64) (*entity.Fence, error) {
	return s.updateFence(ctx, id, func(fence *entity.Fence) error {
		fence.Label = label
		fence.Latitude = lat
		fence.Longitude = lon

		return nil
	})
}

// RegeocodeFence re-resolves the fence's address text. Previous label and
// center are kept when geocoding fails.
func (s *fenceService) RegeocodeFence(ctx context.Context, id uuid.UUID, address string) (*entity.Fence, error) {
	places, err := s.geocoder.Forward(ctx, address, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	if len(places) == 0 {
		return nil, service.ErrGeocodingFailed
	}

	return s.UpdateCenter(ctx, id, places[0].Label, places[0].Latitude, places[0].Longitude)
}

// UpdateRadius changes a fence's buffer after validating it stays at or
// above one meter.
func (s *fenceService) UpdateRadius(ctx context.Context, id uuid.UUID, radius float64, unit geo.Unit) (*entity.Fence, error) {
	meters, err := geo.ToMeters(radius, unit)
	if err != nil {
		return nil, err
	}
	if meters < minRadiusMeters {
		return nil, ErrInvalidRadius
	}

	return s.updateFence(ctx, id, func(fence *entity.Fence) error {
		fence.Radius = radius
		fence.RadiusUnit = unit

		return nil
	})
}

// SetActive arms or disarms a fence. Setting the current value succeeds
// without touching the repository.
func (s *fenceService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	s.mu.RLock()
	fence, ok := s.fences[id]
	unchanged := ok && fence.IsActive == active
	s.mu.RUnlock()

	if !ok {
		return repository.ErrFenceNotFound
	}
	if unchanged {
		return nil
	}

	_, err := s.updateFence(ctx, id, func(fence *entity.Fence) error {
		fence.IsActive = active

		return nil
	})

	return err
}

// DeleteFence removes a fence from the repository and the in-memory set.
func (s *fenceService) DeleteFence(ctx context.Context, id uuid.UUID) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	if err := s.fenceRepo.DeleteFence(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFenceNotFound) {
			return err
		}

		return fmt.Errorf("failed to delete fence: %w", err)
	}

	s.mu.Lock()
	delete(s.fences, id)
	s.mu.Unlock()

	return nil
}

// ActiveFences returns a stable snapshot of the armed fences. A store
// mutation during an evaluation pass cannot affect the returned slice.
func (s *fenceService) ActiveFences() []*entity.Fence {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]*entity.Fence, 0, len(s.fences))
	for _, fence := range s.fences {
		if fence.IsActive {
			active = append(active, cloneFence(fence))
		}
	}

	return active
}

// updateFence applies mutate to a copy of the fence, persists it, and only
// then swaps it into the in-memory set.
func (s *fenceService) updateFence(ctx context.Context, id uuid.UUID, mutate func(*entity.Fence) error) (*entity.Fence, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	current, ok := s.fences[id]
	var updated *entity.Fence
	if ok {
		updated = cloneFence(current)
	}
	s.mu.RUnlock()

	if !ok {
		return nil, repository.ErrFenceNotFound
	}

	if err := mutate(updated); err != nil {
		return nil, err
	}

	if err := s.fenceRepo.UpdateFence(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrFenceNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to update fence: %w", err)
	}

	s.mu.Lock()
	s.fences[id] = updated
	s.mu.Unlock()

	return cloneFence(updated), nil
}

func cloneFence(fence *entity.Fence) *entity.Fence {
	clone := *fence

	return &clone
}
