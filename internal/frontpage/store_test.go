package frontpage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/setting"
	"github.com/GoFrontPage/GoFrontPage/internal/db/open"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := open.DB(&config.Config{DB: config.DB{GormEngine: config.EngineSQLite}})
	require.NoError(t, err, "failed to create test database")

	return db
}

func TestStoreDefaults(t *testing.T) {
	store := NewStore(setupTestDB(t))

	opts, err := store.Options(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Options{}, opts)
}

func TestStoreSaveAndRead(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	store := NewStore(db)

	require.NoError(t, store.Save(ctx, Options{Enabled: true, TargetID: 17}))

	opts, err := store.Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, Options{Enabled: true, TargetID: 17}, opts)

	raw, err := setting.Get(ctx, db, OptionEnabled)
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), raw.Value)

	raw, err = setting.Get(ctx, db, OptionTargetID)
	require.NoError(t, err)
	assert.Equal(t, []byte("17"), raw.Value)

	require.NoError(t, store.Save(ctx, Options{}))

	opts, err = store.Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, Options{}, opts)
}

func TestStoreSanitizesForeignValues(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	require.NoError(t, setting.Set(ctx, db, OptionEnabled, []byte("yes")))
	require.NoError(t, setting.Set(ctx, db, OptionTargetID, []byte("8abc")))

	opts, err := NewStore(db).Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, Options{Enabled: false, TargetID: 8}, opts)
}

type countingStore struct {
	opts  Options
	reads int
}

func (c *countingStore) Options(context.Context) (Options, error) {
	c.reads++
	return c.opts, nil
}

func (c *countingStore) Save(_ context.Context, opts Options) error {
	c.opts = opts
	return nil
}

func TestCachedStore(t *testing.T) {
	ctx := context.Background()
	next := &countingStore{opts: Options{Enabled: true, TargetID: 3}}
	cached := NewCachedStore(next, time.Minute)

	for range 3 {
		opts, err := cached.Options(ctx)
		require.NoError(t, err)
		assert.Equal(t, Options{Enabled: true, TargetID: 3}, opts)
	}

	assert.Equal(t, 1, next.reads)

	require.NoError(t, cached.Save(ctx, Options{Enabled: true, TargetID: 4}))

	opts, err := cached.Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), opts.TargetID)
	assert.Equal(t, 2, next.reads)

	cached.Invalidate()

	_, err = cached.Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, next.reads)
}
