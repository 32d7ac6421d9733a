// Package reading implements the Reading Settings screen with the extended front
// page section.
package reading

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/content"
	"github.com/GoFrontPage/GoFrontPage/internal/frontpage"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler"
	"github.com/GoFrontPage/GoFrontPage/internal/web/navigation"
)

const (
	// Path is the route of the Reading Settings screen.
	Path = handler.AdminPath + "/settings/reading"

	// TemplateName is the template of the Reading Settings screen.
	TemplateName = "admin/settings/reading"

	// UpdatedQuery is appended to Path after a successful save.
	UpdatedQuery = "settings-updated=true"

	// SelectPlaceholder is the first option of the item select, value 0.
	SelectPlaceholder = "— Select —"

	// MsgSaved is shown after the settings were stored.
	MsgSaved = "Settings saved."
)

var (
	// ErrInvalidFormData is returned when the form cannot be parsed or validated.
	ErrInvalidFormData = errors.New("invalid form data")
	// ErrSaveFailed is returned when the options cannot be stored.
	ErrSaveFailed = errors.New("failed to save settings")
	// ErrLoadFailed is returned when the screen data cannot be loaded.
	ErrLoadFailed = errors.New("failed to load settings")

	validate = validator.New() //nolint:gochecknoglobals
)

// Choice is one option of the item select.
type Choice struct {
	ID       uint64
	Text     string
	Selected bool
}

// Group is an optgroup of the item select: all published items of one public type.
type Group struct {
	Label   string
	Choices []Choice
}

type form struct {
	Enabled  string `form:"extended_front_page_enabled" validate:"omitempty,max=20"`
	TargetID string `form:"extended_front_page_post_id" validate:"omitempty,max=20"`
}

// Service is the Reading Settings handler.
type Service struct {
	handler.Service
	cfg   *config.Config
	db    *gorm.DB
	store frontpage.OptionsStore
}

// Handler is the Reading Settings handler.
var Handler = Service{}

// Init registers the Reading Settings routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store frontpage.OptionsStore) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	if store == nil {
		return errors.New("options store cannot be nil")
	}

	s.cfg = cfg
	s.db = db
	s.store = store

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get renders the settings screen.
func (s *Service) Get(c *fiber.Ctx) error {
	data, err := s.data(c.UserContext())
	if err != nil {
		log.Error().Err(err).Msg("failed to load reading settings")
		return s.renderError(c, ErrLoadFailed)
	}

	if c.Query("settings-updated") == "true" {
		data["Success"] = MsgSaved
	}

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// Post stores both options. The submitted values are sanitized to integers, a disabled
// select is not submitted and therefore clears the target.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(form)
	if err := c.BodyParser(in); err != nil {
		return s.renderError(c, ErrInvalidFormData)
	}

	if err := validate.Struct(in); err != nil {
		log.Debug().Err(err).Msg("reading settings validation failed")
		return s.renderError(c, ErrInvalidFormData)
	}

	opts := frontpage.SanitizeOptions(in.Enabled, in.TargetID)

	if err := s.store.Save(c.UserContext(), opts); err != nil {
		log.Error().Err(err).Msg("failed to save front page options")
		return s.renderError(c, ErrSaveFailed)
	}

	log.Info().
		Bool("enabled", opts.Enabled).
		Uint64("item_id", opts.TargetID).
		Interface("user", c.Locals("CurrentUser")).
		Msg("front page options saved")

	return c.Redirect(Path + "?" + UpdatedQuery)
}

func (s *Service) renderError(c *fiber.Ctx, err error) error {
	return c.Render(TemplateName, fiber.Map{
		"Title": s.cfg.Title,
		"Nav":   navigation.ForPage(navigation.SectionSettings, navigation.PageReading),
		"error": err.Error(),
	}, handler.BaseLayout)
}

func (s *Service) data(ctx context.Context) (fiber.Map, error) {
	opts, err := s.store.Options(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	groups, err := Groups(ctx, s.db, s.cfg, opts.TargetID)
	if err != nil {
		return nil, err
	}

	return fiber.Map{
		"Title":        s.cfg.Title,
		"Nav":          navigation.ForPage(navigation.SectionSettings, navigation.PageReading),
		"Options":      opts,
		"Groups":       groups,
		"Placeholder":  SelectPlaceholder,
		"FieldEnabled": frontpage.OptionEnabled,
		"FieldTarget":  frontpage.OptionTargetID,
	}, nil
}

// Groups lists the published items of every public content type, one group per type
// in configuration order, items ordered by title. Types without items yield an empty group.
func Groups(ctx context.Context, db *gorm.DB, cfg *config.Config, selected uint64) ([]Group, error) {
	types := cfg.PublicContentTypes()
	groups := make([]Group, 0, len(types))

	for _, ct := range types {
		items, err := content.ListPublishedByType(ctx, db, ct.Name)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		g := Group{Label: ct.Label, Choices: make([]Choice, 0, len(items))}
		for _, item := range items {
			g.Choices = append(g.Choices, Choice{
				ID:       item.ID,
				Text:     fmt.Sprintf("%s (%s)", item.Title, ct.Singular),
				Selected: item.ID == selected,
			})
		}

		groups = append(groups, g)
	}

	return groups, nil
}
