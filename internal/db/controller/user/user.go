// Package user manages administrator accounts.
package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
)

var (
	// ErrUserNotFound is returned when no user has the requested username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameEmpty is returned when creating a user without a name.
	ErrUsernameEmpty = errors.New("username cannot be empty")
	// ErrPasswordEmpty is returned when setting an empty password.
	ErrPasswordEmpty = errors.New("password cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Count returns the number of users.
func Count(ctx context.Context, db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var n int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}

// Create stores a new active user with the hashed password.
func Create(ctx context.Context, db *gorm.DB, username, password string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if username == "" {
		return nil, ErrUsernameEmpty
	}

	if password == "" {
		return nil, ErrPasswordEmpty
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	u := &models.User{Username: username, Password: hash, Active: true}
	if err = db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword replaces the password of an existing user.
func SetPassword(ctx context.Context, db *gorm.DB, username, password string) error {
	if db == nil {
		return ErrDBNil
	}

	if password == "" {
		return ErrPasswordEmpty
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return err //nolint:wrapcheck
	}

	result := db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Update("password", hash)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SetActive enables or disables a user.
func SetActive(ctx context.Context, db *gorm.DB, username string, active bool) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Update("active", active)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
