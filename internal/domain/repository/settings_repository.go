package repository

import "context"

// SettingsRepository defines the interface for the key/value settings store.
type SettingsRepository interface {
	// GetSetting returns the stored value for key, or fallback when the key
	// was never written.
	GetSetting(ctx context.Context, key, fallback string) (string, error)

	// PutSetting stores the value for key, replacing any previous value.
	PutSetting(ctx context.Context, key, value string) error
}
