// Package content provides CRUD operations for content items.
package content

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
)

var (
	// ErrItemNotFound is returned when no item has the requested id.
	ErrItemNotFound = errors.New("content item not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	validate = validator.New() //nolint:gochecknoglobals
)

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Type   string
	Status string
	Limit  int
}

// Get retrieves an item by id regardless of its status.
func Get(ctx context.Context, db *gorm.DB, id uint64) (*models.Item, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if id == 0 {
		return nil, ErrItemNotFound
	}

	var item models.Item

	if err := db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}

		return nil, err
	}

	return &item, nil
}

// Create validates and stores a new item. An empty slug is derived from the title,
// or from the item id when the title has no letters or digits to slug.
func Create(ctx context.Context, db *gorm.DB, item *models.Item) error {
	if db == nil {
		return ErrDBNil
	}

	if err := validate.Struct(item); err != nil {
		return err //nolint:wrapcheck
	}

	if item.Slug == "" {
		item.Slug = Slugify(item.Title)
	}

	if item.Slug != "" {
		return db.WithContext(ctx).Create(item).Error
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}

		item.Slug = FallbackSlug(item.ID)

		return tx.Model(item).Update("slug", item.Slug).Error
	})
}

// FallbackSlug is the slug of an item whose title yields none.
func FallbackSlug(id uint64) string {
	return "item-" + strconv.FormatUint(id, 10)
}

// SetStatus changes the status of an existing item.
func SetStatus(ctx context.Context, db *gorm.DB, id uint64, status string) error {
	if db == nil {
		return ErrDBNil
	}

	if err := validate.Var(status, "required,oneof=publish draft private trash"); err != nil {
		return err //nolint:wrapcheck
	}

	result := db.WithContext(ctx).Model(&models.Item{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// List returns items matching the filter, newest first.
func List(ctx context.Context, db *gorm.DB, f Filter) ([]models.Item, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	q := db.WithContext(ctx).Model(&models.Item{})

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var items []models.Item
	if err := q.Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// Latest returns the newest published items of a content type.
func Latest(ctx context.Context, db *gorm.DB, contentType string, limit int) ([]models.Item, error) {
	return List(ctx, db, Filter{Type: contentType, Status: models.StatusPublish, Limit: limit})
}

// ListPublishedByType returns all published items of a content type ordered by title.
func ListPublishedByType(ctx context.Context, db *gorm.DB, contentType string) ([]models.Item, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.Item

	err := db.WithContext(ctx).
		Where("type = ? AND status = ?", contentType, models.StatusPublish).
		Order("title ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Slugify turns a title into a lowercase, dash separated slug.
func Slugify(title string) string {
	var b strings.Builder

	dash := false

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)

			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')

			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
