// Package usecase defines the application-facing interfaces of the core.
package usecase

import (
	"context"

	"travelalarm/internal/domain/entity"
	"travelalarm/internal/geo"

	"github.com/google/uuid"
)

// AddFenceInput represents the input for adding a new fence from an already
// geocoded place.
type AddFenceInput struct {
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FenceUsecase is the single source of truth for fence records. It keeps an
// in-memory authoritative set synchronized write-through with the
// persistence collaborator.
type FenceUsecase interface {
	// Load hydrates the in-memory set from the persistence collaborator.
	// Called once at startup, before the engine starts evaluating.
	Load(ctx context.Context) error

	// ListFences returns all fences in the requested order. Unknown orders
	// fall back to creation time, newest first.
	ListFences(ctx context.Context, order entity.ListOrder) ([]*entity.Fence, error)

	// GetFence returns the fence with the given id.
	GetFence(ctx context.Context, id uuid.UUID) (*entity.Fence, error)

	// AddFence creates an active fence with the configured default radius.
	AddFence(ctx context.Context, input *AddFenceInput) (*entity.Fence, error)

	// AddFenceByAddress forward-geocodes the text and creates a fence at the
	// best match. Creation is aborted when geocoding fails.
	AddFenceByAddress(ctx context.Context, address string) (*entity.Fence, error)

	// UpdateCenter moves a fence to a new geocoded center and label.
	UpdateCenter(ctx context.Context, id uuid.UUID, label string, lat, lon float64) (*entity.Fence, error)

	// RegeocodeFence re-resolves the fence's address text and updates label
	// and center. The previous values are kept when geocoding fails.
	RegeocodeFence(ctx context.Context, id uuid.UUID, address string) (*entity.Fence, error)

	// UpdateRadius changes a fence's buffer. Radii below one meter are
	// rejected and the prior value retained.
	UpdateRadius(ctx context.Context, id uuid.UUID, radius float64, unit geo.Unit) (*entity.Fence, error)

	// SetActive arms or disarms a fence. Setting the current value is a
	// successful no-op.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// DeleteFence removes a fence. Deleting an absent fence returns
	// repository.ErrFenceNotFound, which callers racing a concurrent delete
	// treat as benign.
	DeleteFence(ctx context.Context, id uuid.UUID) error

	// ActiveFences returns a stable snapshot of the armed fences for one
	// evaluation pass.
	ActiveFences() []*entity.Fence
}
