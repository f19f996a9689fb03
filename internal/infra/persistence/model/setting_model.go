package model

import "time"

// SettingModel is the GORM-specific struct for the 'settings' table, a plain
// key/value store for user preferences.
type SettingModel struct {
	Key       string `gorm:"type:varchar(64);primary_key"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
