package storage

import (
	"time"
)

// Scheme is a cached generation result, keyed by a digest of its inputs
type Scheme struct {
	ID        string    `gorm:"primaryKey"`
	Key       string    `gorm:"column:cache_key;not null;uniqueIndex:idx_cache_key"`
	Source    string    `gorm:"not null;default:''"`
	Inputs    string    `gorm:"not null;default:'[]'"` // JSON array of hex colors
	Colors    string    `gorm:"not null;default:'[]'"` // JSON array of hex colors
	Full      bool      `gorm:"not null;default:false"`
	Score     float64   `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"index:idx_created_at"`
	UpdatedAt time.Time `gorm:"index:idx_updated_at"`
}
