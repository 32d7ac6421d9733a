package content

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/frontpage"
)

// Resolver looks up content items for the front page rule.
type Resolver struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewResolver returns a frontpage.ItemResolver backed by the items table.
func NewResolver(db *gorm.DB, cfg *config.Config) *Resolver {
	return &Resolver{db: db, cfg: cfg}
}

// ResolveItem implements frontpage.ItemResolver.
func (r *Resolver) ResolveItem(ctx context.Context, id uint64) (frontpage.Item, error) {
	item, err := Get(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return frontpage.Item{}, frontpage.ErrItemNotFound
		}

		return frontpage.Item{}, err
	}

	ct, known := r.cfg.ContentType(item.Type)

	return frontpage.Item{
		ID:         item.ID,
		Type:       item.Type,
		Status:     item.Status,
		TypePublic: known && ct.Public,
	}, nil
}
