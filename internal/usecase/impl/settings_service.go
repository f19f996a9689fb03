package impl

import (
	"context"
	"errors"
	"fmt"

	"travelalarm/internal/domain/entity"
	"travelalarm/internal/domain/repository"
	"travelalarm/internal/usecase"
)

// ErrInvalidListOrder is returned when an unknown list order is requested.
var ErrInvalidListOrder = errors.New("invalid list order")

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates the settings service backed by the key/value
// settings store. Reads of unset keys return their defaults.
func NewSettingsService(settingsRepo repository.SettingsRepository) usecase.SettingsUsecase {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) get(ctx context.Context, key string) (string, error) {
	value, err := s.settingsRepo.GetSetting(ctx, key, entity.SettingDefaults[key])
	if err != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}

	return value, nil
}

func (s *settingsService) put(ctx context.Context, key, value string) error {
	if err := s.settingsRepo.PutSetting(ctx, key, value); err != nil {
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}

	return nil
}

// ListOrder returns the persisted fence list order. Unknown stored values
// fall back to creation time ordering.
func (s *settingsService) ListOrder(ctx context.Context) (entity.ListOrder, error) {
	value, err := s.get(ctx, entity.SettingListOrder)
	if err != nil {
		return "", err
	}

	order := entity.ListOrder(value)
	switch order {
	case entity.ListOrderCreated, entity.ListOrderActive, entity.ListOrderLabel:
		return order, nil
	default:
		return entity.ListOrderCreated, nil
	}
}

func (s *settingsService) SetListOrder(ctx context.Context, order entity.ListOrder) error {
	switch order {
	case entity.ListOrderCreated, entity.ListOrderActive, entity.ListOrderLabel:
	default:
		return ErrInvalidListOrder
	}

	return s.put(ctx, entity.SettingListOrder, string(order))
}

func (s *settingsService) ThemeStyle(ctx context.Context) (string, error) {
	return s.get(ctx, entity.SettingThemeStyle)
}

func (s *settingsService) SetThemeStyle(ctx context.Context, style string) error {
	return s.put(ctx, entity.SettingThemeStyle, style)
}

func (s *settingsService) PrimaryPalette(ctx context.Context) (string, error) {
	return s.get(ctx, entity.SettingPrimaryPalette)
}

func (s *settingsService) SetPrimaryPalette(ctx context.Context, palette string) error {
	return s.put(ctx, entity.SettingPrimaryPalette, palette)
}

func (s *settingsService) AlarmSound(ctx context.Context) (string, error) {
	return s.get(ctx, entity.SettingAlarmSound)
}

func (s *settingsService) SetAlarmSound(ctx context.Context, sound string) error {
	return s.put(ctx, entity.SettingAlarmSound, sound)
}

func (s *settingsService) MapViewport(ctx context.Context) (entity.MapViewport, error) {
	value, err := s.get(ctx, entity.SettingMapViewport)
	if err != nil {
		return entity.MapViewport{}, err
	}

	viewport, err := entity.ParseMapViewport(value)
	if err != nil {
		// A corrupt stored value degrades to the default viewport.
		return entity.ParseMapViewport(entity.SettingDefaults[entity.SettingMapViewport])
	}

	return viewport, nil
}

func (s *settingsService) SetMapViewport(ctx context.Context, viewport entity.MapViewport) error {
	return s.put(ctx, entity.SettingMapViewport, viewport.String())
}
