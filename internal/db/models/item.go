package models

import "time"

// PageType is the native page content type.
const PageType = "page"

// Item statuses.
const (
	StatusPublish = "publish"
	StatusDraft   = "draft"
	StatusPrivate = "private"
	StatusTrash   = "trash"
)

// Statuses lists every valid item status.
var Statuses = []string{StatusPublish, StatusDraft, StatusPrivate, StatusTrash}

// Item is a content item of any content type.
type Item struct {
	ID        uint64 `gorm:"primaryKey"`
	Type      string `gorm:"index:idx_items_type_status;size:64;not null" validate:"required,max=64"`
	Status    string `gorm:"index:idx_items_type_status;size:20;not null" validate:"required,oneof=publish draft private trash"`
	Title     string `gorm:"size:255;not null" validate:"required,max=255"`
	Slug      string `gorm:"size:255;index"`
	Body      string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Published reports whether the item is publicly visible.
func (i *Item) Published() bool {
	return i.Status == StatusPublish
}
