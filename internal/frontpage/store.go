package frontpage

import (
	"context"

	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/setting"
)

// Store keeps the options in the settings table.
type Store struct {
	db *gorm.DB
}

// NewStore creates a settings table backed Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Options implements OptionsReader. Options never saved read as disabled with no target.
func (s *Store) Options(ctx context.Context) (Options, error) {
	values, err := setting.GetValues(ctx, s.db, OptionEnabled, OptionTargetID)
	if err != nil {
		return Options{}, err //nolint:wrapcheck
	}

	return decodeOptions(values[OptionEnabled], values[OptionTargetID]), nil
}

// Save writes both options in one transaction.
func (s *Store) Save(ctx context.Context, opts Options) error {
	return setting.SetMany(ctx, s.db, map[string][]byte{ //nolint:wrapcheck
		OptionEnabled:  encodeFlag(opts.Enabled),
		OptionTargetID: []byte(formatID(opts.TargetID)),
	})
}
