package postgres

import (
	"context"

	domainerrors "travelalarm/internal/domain/errors"
	"travelalarm/internal/domain/repository"
	"travelalarm/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetSetting retrieves a setting value, returning fallback when the key was
// never written.
func (repo *settingsRepository) GetSetting(ctx context.Context, key string, fallback string) (string, error) {
	var settingM model.SettingModel
	if err := repo.db.WithContext(ctx).First(&settingM, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fallback, nil
		}

		return "", errors.Wrap(err, "failed to read setting")
	}

	return settingM.Value, nil
}

// PutSetting upserts a setting value.
func (repo *settingsRepository) PutSetting(ctx context.Context, key string, value string) error {
	settingM := &model.SettingModel{Key: key, Value: value}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(settingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store setting")
	}

	return nil
}
