// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"travelalarm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFenceNotFound is returned when a fence is not found.
var ErrFenceNotFound = errors.New("fence not found")

// FenceRepository defines the interface for fence persistence. Each mutating
// operation commits before returning; a returned error means nothing was
// written.
type FenceRepository interface {
	// CreateFence persists a new fence record.
	CreateFence(ctx context.Context, fence *entity.Fence) error

	// FindFenceByID retrieves a fence by its unique ID.
	// Returns ErrFenceNotFound if no such record exists.
	FindFenceByID(ctx context.Context, id uuid.UUID) (*entity.Fence, error)

	// FindAllFences retrieves every persisted fence.
	FindAllFences(ctx context.Context) ([]*entity.Fence, error)

	// UpdateFence updates an existing fence record.
	// Returns ErrFenceNotFound if no such record exists.
	UpdateFence(ctx context.Context, fence *entity.Fence) error

	// DeleteFence removes a fence by its ID.
	// Returns ErrFenceNotFound if no such record exists.
	DeleteFence(ctx context.Context, id uuid.UUID) error
}
