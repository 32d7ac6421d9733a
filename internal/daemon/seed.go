package daemon

import (
	"context"

	"github.com/dchest/uniuri"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/content"
	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/user"
	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
)

const (
	// AdminUsername is the account created on first start.
	AdminUsername = "admin"

	adminPasswordLen = 20
)

// sampleContent is stored when the items table is empty.
var sampleContent = []models.Item{ //nolint:gochecknoglobals
	{
		Type:   "post",
		Status: models.StatusPublish,
		Title:  "Hello world!",
		Body:   "Welcome. This is your first post.",
	},
	{
		Type:   models.PageType,
		Status: models.StatusPublish,
		Title:  "Sample Page",
		Body:   "This is an example page. Choose it as front page under Settings > Reading.",
	},
}

// seed creates the initial admin account and sample content on an empty database.
func seed(ctx context.Context, db *gorm.DB) error {
	n, err := user.Count(ctx, db)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if n == 0 {
		password := uniuri.NewLen(adminPasswordLen)

		if _, err = user.Create(ctx, db, AdminUsername, password); err != nil {
			return err //nolint:wrapcheck
		}

		log.Warn().
			Str("username", AdminUsername).
			Str("password", password).
			Msg("created initial admin user, change the password with 'user password'")
	}

	items, err := content.List(ctx, db, content.Filter{Limit: 1})
	if err != nil {
		return err //nolint:wrapcheck
	}

	if len(items) > 0 {
		return nil
	}

	for i := range sampleContent {
		item := sampleContent[i]
		if err = content.Create(ctx, db, &item); err != nil {
			return err //nolint:wrapcheck
		}
	}

	log.Info().Int("items", len(sampleContent)).Msg("created sample content")

	return nil
}
