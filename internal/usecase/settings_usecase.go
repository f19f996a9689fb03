package usecase

import (
	"context"

	"travelalarm/internal/domain/entity"
)

// SettingsUsecase manages the scalar user preferences persisted alongside
// fences. Reads of unset keys return their defaults.
type SettingsUsecase interface {
	ListOrder(ctx context.Context) (entity.ListOrder, error)
	SetListOrder(ctx context.Context, order entity.ListOrder) error

	ThemeStyle(ctx context.Context) (string, error)
	SetThemeStyle(ctx context.Context, style string) error

	PrimaryPalette(ctx context.Context) (string, error)
	SetPrimaryPalette(ctx context.Context, palette string) error

	AlarmSound(ctx context.Context) (string, error)
	SetAlarmSound(ctx context.Context, sound string) error

	MapViewport(ctx context.Context) (entity.MapViewport, error)
	SetMapViewport(ctx context.Context, viewport entity.MapViewport) error
}
