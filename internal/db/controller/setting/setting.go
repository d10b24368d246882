// Package setting provides database operations for named configuration settings.
package setting

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/models"
)

const (
	keyQueryPattern  = "setting_key = ?"
	typeQueryPattern = "setting_type = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when attempting to access a setting with an empty key.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrSettingAlreadyExists is returned when attempting to create a setting that already exists.
	ErrSettingAlreadyExists = errors.New("setting already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its unique key.
// A missing key returns ErrSettingNotFound, never a default value.
func Get(db *gorm.DB, key string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var setting models.Setting
	result := db.Where(keyQueryPattern, key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// GetByType retrieves all settings with the given type tag, ordered by key ascending.
func GetByType(db *gorm.DB, settingType string) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	result := db.Where(typeQueryPattern, settingType).Order("setting_key asc").Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// GetAll retrieves all settings, ordered by type then key.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	result := db.Order("setting_type asc, setting_key asc").Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Create creates a new setting in the database.
// Settings are normally created only by the seed step; runtime mutation
// goes through Update.
func Create(db *gorm.DB, key string, value datatypes.JSON, settingType, description string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	// Check if setting already exists
	var existing models.Setting
	result := db.Where(keyQueryPattern, key).First(&existing)
	if result.Error == nil {
		return nil, ErrSettingAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	setting := &models.Setting{
		SettingKey:   key,
		SettingValue: value,
		SettingType:  settingType,
		Description:  description,
	}

	result = db.Create(setting)
	if result.Error != nil {
		return nil, result.Error
	}

	return setting, nil
}

// Update overwrites the value and audit fields of an existing setting.
// The value is replaced wholesale; there are no partial or merge semantics.
// Updating a key that does not exist is a silent no-op: no row is created
// and no error is returned.
func Update(db *gorm.DB, key string, value datatypes.JSON, updatedBy string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	var by *string
	if updatedBy != "" {
		by = &updatedBy
	}

	result := db.Model(&models.Setting{}).
		Where(keyQueryPattern, key).
		Updates(map[string]any{
			"setting_value": value,
			"updated_by":    by,
		})

	return result.Error
}
