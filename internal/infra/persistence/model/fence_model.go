package model

import (
	"time"

	"github.com/google/uuid"
)

// FenceModel is the GORM-specific struct for the 'fences' table.
type FenceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	IsActive   bool      `gorm:"not null;default:true;index:idx_fences_on_active"`
	Label      string    `gorm:"type:text;not null"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null"`
	Radius     float64   `gorm:"not null"`
	RadiusUnit string    `gorm:"type:varchar(8);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FenceModel) TableName() string {
	return "fences"
}
