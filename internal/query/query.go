// Package query models the main query that decides what a site request renders.
package query

import (
	"context"

	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/content"
	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
	"github.com/GoFrontPage/GoFrontPage/internal/frontpage"
)

// Query holds the query vars and the classification flags templates rely on.
type Query struct {
	PostType     string
	ItemID       uint64
	PostsPerPage int

	IsHome      bool
	IsFrontPage bool
	IsSingular  bool
	IsSingle    bool
	IsPage      bool
	IsMainQuery bool
	IsAdmin     bool
}

// NewFrontPage returns the default main query of the site root: the latest published
// items of homeType.
func NewFrontPage(homeType string, perPage int) *Query {
	return &Query{
		PostType:     homeType,
		PostsPerPage: perPage,
		IsHome:       true,
		IsFrontPage:  true,
		IsMainQuery:  true,
	}
}

// NewSingular returns a main query for a single item.
func NewSingular(item *models.Item) *Query {
	isPage := item.Type == models.PageType

	return &Query{
		PostType:     item.Type,
		ItemID:       item.ID,
		PostsPerPage: 1,
		IsSingular:   true,
		IsSingle:     !isPage,
		IsPage:       isPage,
		IsMainQuery:  true,
	}
}

// Request describes q to the front page rule.
func (q *Query) Request() frontpage.Request {
	return frontpage.Request{
		FrontPage: q.IsFrontPage,
		MainQuery: q.IsMainQuery,
		Admin:     q.IsAdmin,
	}
}

// Apply changes q to show exactly the item of d. A decision without override leaves q as is.
func (q *Query) Apply(d frontpage.Decision) {
	if !d.Override {
		return
	}

	q.PostType = d.ContentType
	q.ItemID = d.ItemID
	q.PostsPerPage = 1

	q.IsHome = false
	q.IsFrontPage = true
	q.IsSingular = true
	q.IsSingle = d.IsSingle
	q.IsPage = d.IsPage
}

// Run fetches the published items q selects.
func (q *Query) Run(ctx context.Context, db *gorm.DB) ([]models.Item, error) {
	if q.ItemID != 0 {
		item, err := content.Get(ctx, db, q.ItemID)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		if !item.Published() || (q.PostType != "" && item.Type != q.PostType) {
			return nil, content.ErrItemNotFound
		}

		return []models.Item{*item}, nil
	}

	return content.Latest(ctx, db, q.PostType, q.PostsPerPage) //nolint:wrapcheck
}
