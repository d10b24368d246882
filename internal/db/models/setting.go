// Package models contains database model definitions.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Setting represents a named configuration record stored in the database.
// The value is an opaque JSON document whose schema is defined per key by
// the caller; the store itself never validates it.
type Setting struct {
	// ID is the unique identifier for the setting row.
	ID uint64 `gorm:"primaryKey"`
	// SettingKey is the unique lookup key (e.g. "payment_processing").
	SettingKey string `gorm:"column:setting_key;unique;size:100;not null"`
	// SettingValue is the JSON document holding the setting's value.
	SettingValue datatypes.JSON `gorm:"column:setting_value"`
	// SettingType is a classification tag used only for grouped retrieval.
	SettingType string `gorm:"column:setting_type;size:50;index"`
	// Description is human-readable text, informational only.
	Description string `gorm:"size:255"`
	// UpdatedAt is stamped on every mutation (managed by GORM).
	UpdatedAt time.Time
	// UpdatedBy identifies who performed the last mutation, nil for seeded rows.
	UpdatedBy *string `gorm:"column:updated_by;size:100"`
}
