// Package site serves the public pages: the front page and single items.
package site

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/content"
	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
	"github.com/GoFrontPage/GoFrontPage/internal/frontpage"
	"github.com/GoFrontPage/GoFrontPage/internal/query"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler"
)

const (
	// ItemPath is the route of the single item view.
	ItemPath = "/item/:id"

	// TemplateHome lists the latest items.
	TemplateHome = "site/home"
	// TemplateSingle shows one item.
	TemplateSingle = "site/single"
	// TemplateNotFound is shown for unknown or hidden items.
	TemplateNotFound = "site/notfound"
)

// Service is the site handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	db   *gorm.DB
	rule *frontpage.Rule
}

// Handler is the site handler.
var Handler = Service{}

// Init registers the site routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rule *frontpage.Rule) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	if rule == nil {
		return errors.New("front page rule cannot be nil")
	}

	s.cfg = cfg
	s.db = db
	s.rule = rule

	app.Get(handler.RootPath, s.Front)
	app.Get(ItemPath, s.Item)

	return nil
}

// Front renders the site root. The main query is the home listing unless the front
// page override decides to show a single item.
func (s *Service) Front(c *fiber.Ctx) error {
	ctx := c.UserContext()

	q := query.NewFrontPage(s.cfg.Site.HomeType, s.cfg.Site.PostsPerPage)

	decision := s.rule.Evaluate(ctx, q.Request())
	decisions.WithLabelValues(string(decision.Reason)).Inc()

	q.Apply(decision)

	items, err := q.Run(ctx, s.db)
	if err != nil && decision.Override && errors.Is(err, content.ErrItemNotFound) {
		// the target changed between evaluation and fetch
		log.Debug().Uint64("item_id", decision.ItemID).Msg("front page item vanished, using default front page")

		q = query.NewFrontPage(s.cfg.Site.HomeType, s.cfg.Site.PostsPerPage)
		items, err = q.Run(ctx, s.db)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to run front page query")
		return fiber.ErrInternalServerError
	}

	return s.render(c, q, items)
}

// Item renders a single published item of a public content type.
func (s *Service) Item(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return s.notFound(c)
	}

	item, err := content.Get(c.UserContext(), s.db, id)
	if err != nil {
		if errors.Is(err, content.ErrItemNotFound) {
			return s.notFound(c)
		}

		log.Error().Err(err).Uint64("item_id", id).Msg("failed to load item")

		return fiber.ErrInternalServerError
	}

	if ct, ok := s.cfg.ContentType(item.Type); !ok || !ct.Public || !item.Published() {
		return s.notFound(c)
	}

	return s.render(c, query.NewSingular(item), []models.Item{*item})
}

func (s *Service) render(c *fiber.Ctx, q *query.Query, items []models.Item) error {
	data := fiber.Map{
		"Title": s.cfg.Title,
		"Query": q,
	}

	if q.IsSingular && len(items) == 1 {
		item := items[0]
		ct, _ := s.cfg.ContentType(item.Type)

		data["Item"] = item
		data["ContentType"] = ct
		data["IsFrontPageItem"] = s.rule.IsFrontPage(c.UserContext(), item.ID)

		return c.Render(TemplateSingle, data, handler.SiteLayout)
	}

	data["Items"] = items

	return c.Render(TemplateHome, data, handler.SiteLayout)
}

func (s *Service) notFound(c *fiber.Ctx) error {
	c.Status(fiber.StatusNotFound)

	return c.Render(TemplateNotFound, fiber.Map{"Title": s.cfg.Title}, handler.SiteLayout)
}
