// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"travelalarm/internal/domain/entity"
	domainerrors "travelalarm/internal/domain/errors"
	"travelalarm/internal/domain/repository"
	"travelalarm/internal/geo"
	"travelalarm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// fenceRepository implements the repository.FenceRepository interface.
type fenceRepository struct {
	db *gorm.DB
}

// NewFenceRepository is the constructor for fenceRepository.
func NewFenceRepository(db *gorm.DB) repository.FenceRepository {
	return &fenceRepository{db: db}
}

// CreateFence persists a new fence record.
func (repo *fenceRepository) CreateFence(ctx context.Context, fence *entity.Fence) error {
	fenceM := fromFenceDomain(fence)

	if err := repo.db.WithContext(ctx).Create(fenceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create fence")
	}

	// Update the entity with generated values
	fence.CreatedAt = fenceM.CreatedAt

	return nil
}

// FindFenceByID retrieves a fence by its unique ID.
func (repo *fenceRepository) FindFenceByID(ctx context.Context, id uuid.UUID) (*entity.Fence, error) {
	var fenceM model.FenceModel
	if err := repo.db.WithContext(ctx).First(&fenceM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find fence by ID")
	}

	return toFenceDomain(&fenceM), nil
}

// FindAllFences retrieves every fence record.
func (repo *fenceRepository) FindAllFences(ctx context.Context) ([]*entity.Fence, error) {
	var fenceModels []*model.FenceModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&fenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find fences")
	}

	fences := make([]*entity.Fence, 0, len(fenceModels))
	for _, fenceM := range fenceModels {
		fences = append(fences, toFenceDomain(fenceM))
	}

	return fences, nil
}

// UpdateFence updates an existing fence record.
func (repo *fenceRepository) UpdateFence(ctx context.Context, fence *entity.Fence) error {
	fenceM := fromFenceDomain(fence)

	result := repo.db.WithContext(ctx).
		Model(&model.FenceModel{}).
		Where("id = ?", fenceM.ID).
		Select("is_active", "label", "latitude", "longitude", "radius", "radius_unit").
		Updates(fenceM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update fence")
	}

	// If no rows were affected, it means the fence was not found.
	if result.RowsAffected == 0 {
		return repository.ErrFenceNotFound
	}

	return nil
}

// DeleteFence removes a fence by its ID.
func (repo *fenceRepository) DeleteFence(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.FenceModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete fence")
	}

	// If no rows were affected, it means the fence was not found.
	if result.RowsAffected == 0 {
		return repository.ErrFenceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFenceDomain converts a GORM FenceModel to a domain Fence entity.
func toFenceDomain(data *model.FenceModel) *entity.Fence {
	if data == nil {
		return nil
	}

	return &entity.Fence{
		ID:         data.ID,
		IsActive:   data.IsActive,
		Label:      data.Label,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Radius:     data.Radius,
		RadiusUnit: geo.Unit(data.RadiusUnit),
		CreatedAt:  data.CreatedAt,
	}
}

// fromFenceDomain converts a domain Fence entity to a GORM FenceModel.
func fromFenceDomain(data *entity.Fence) *model.FenceModel {
	if data == nil {
		return nil
	}

	return &model.FenceModel{
		ID:         data.ID,
		IsActive:   data.IsActive,
		Label:      data.Label,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Radius:     data.Radius,
		RadiusUnit: string(data.RadiusUnit),
		CreatedAt:  data.CreatedAt,
	}
}
