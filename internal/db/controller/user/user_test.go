package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
	"github.com/GoFrontPage/GoFrontPage/internal/db/open"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := open.DB(&config.Config{DB: config.DB{GormEngine: config.EngineSQLite}})
	require.NoError(t, err, "failed to create test database")

	return db
}

func load(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	var u models.User
	require.NoError(t, db.Where("username = ?", username).First(&u).Error)

	return u
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	u, err := Create(ctx, db, "admin", "secret")
	require.NoError(t, err)
	assert.True(t, u.Active)
	assert.NotEqual(t, "secret", u.Password)

	stored := load(t, db, "admin")
	assert.True(t, stored.VerifyPassword("secret"))

	n, err := Count(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = Create(ctx, db, "admin", "other")
	assert.Error(t, err, "duplicate username")
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	_, err := Create(ctx, db, "", "secret")
	require.ErrorIs(t, err, ErrUsernameEmpty)

	_, err = Create(ctx, db, "admin", "")
	require.ErrorIs(t, err, ErrPasswordEmpty)

	_, err = Create(ctx, nil, "admin", "secret")
	require.ErrorIs(t, err, ErrDBNil)
}

func TestSetPassword(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	_, err := Create(ctx, db, "admin", "old")
	require.NoError(t, err)

	require.NoError(t, SetPassword(ctx, db, "admin", "new"))

	u := load(t, db, "admin")
	assert.True(t, u.VerifyPassword("new"))
	assert.False(t, u.VerifyPassword("old"))

	require.ErrorIs(t, SetPassword(ctx, db, "nobody", "x"), ErrUserNotFound)
	require.ErrorIs(t, SetPassword(ctx, db, "admin", ""), ErrPasswordEmpty)
}

func TestSetActive(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	_, err := Create(ctx, db, "admin", "secret")
	require.NoError(t, err)

	require.NoError(t, SetActive(ctx, db, "admin", false))
	assert.False(t, load(t, db, "admin").Active)

	require.NoError(t, SetActive(ctx, db, "admin", true))
	assert.True(t, load(t, db, "admin").Active)

	require.ErrorIs(t, SetActive(ctx, db, "nobody", true), ErrUserNotFound)
}
