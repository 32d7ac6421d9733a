// Package setting provides access to the named options in the settings table.
package setting

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when a setting name is empty.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its name.
func Get(ctx context.Context, db *gorm.DB, name string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var s models.Setting

	result := db.WithContext(ctx).Where(nameQueryPattern, name).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &s, nil
}

// GetValues reads several settings in one query.
// Names without a stored row are absent from the returned map.
func GetValues(ctx context.Context, db *gorm.DB, names ...string) (map[string][]byte, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	for _, name := range names {
		if name == "" {
			return nil, ErrSettingNameEmpty
		}
	}

	var rows []models.Setting
	if err := db.WithContext(ctx).Where("name IN ?", names).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(rows))
	for _, row := range rows {
		out[row.Name] = row.Value
	}

	return out, nil
}

// GetAll retrieves all settings ordered by name.
func GetAll(ctx context.Context, db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	if err := db.WithContext(ctx).Order("name").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// Set creates or updates a setting by name.
func Set(ctx context.Context, db *gorm.DB, name string, value []byte) error {
	return SetMany(ctx, db, map[string][]byte{name: value})
}

// SetMany upserts several settings in a single transaction.
func SetMany(ctx context.Context, db *gorm.DB, values map[string][]byte) error {
	if db == nil {
		return ErrDBNil
	}

	for name := range values {
		if name == "" {
			return ErrSettingNameEmpty
		}
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for name, value := range values {
			row := models.Setting{Name: name, Value: value}

			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteByName deletes a setting by name.
func DeleteByName(ctx context.Context, db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	result := db.WithContext(ctx).Where(nameQueryPattern, name).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
