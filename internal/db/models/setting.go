// Package models contains database model definitions.
package models

import "time"

// Setting is a named option stored in the settings table.
type Setting struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:191;not null"`
	Value     []byte
	UpdatedAt time.Time
}
