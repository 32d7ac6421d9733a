// Package content lists content items in the administration area.
package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	contentctrl "github.com/GoFrontPage/GoFrontPage/internal/db/controller/content"
	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
	"github.com/GoFrontPage/GoFrontPage/internal/frontpage"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler"
	"github.com/GoFrontPage/GoFrontPage/internal/web/navigation"
)

const (
	// Path is the route of the content list.
	Path = handler.AdminPath + "/content"

	// TemplateName is the template of the content list.
	TemplateName = "admin/content/list"
)

var (
	// ErrUnknownType is returned when the type filter names no configured content type.
	ErrUnknownType = errors.New("unknown content type")
	// ErrUnknownStatus is returned when the status filter names no item status.
	ErrUnknownStatus = errors.New("unknown status")
	// ErrLoadFailed is returned when the items cannot be loaded.
	ErrLoadFailed = errors.New("failed to load content")
)

// Row is one line of the content list.
type Row struct {
	Item   models.Item
	Type   config.ContentType
	States []string
}

// Service is the content list handler.
type Service struct {
	handler.Service
	cfg  *config.Config
	db   *gorm.DB
	rule *frontpage.Rule
}

// Handler is the content list handler.
var Handler = Service{}

// Init registers the content list route.
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

	app.Get(Path, s.List)

	return nil
}

// List renders the items, optionally filtered by ?type= and ?status=.
func (s *Service) List(c *fiber.Ctx) error {
	filter := contentctrl.Filter{Type: c.Query("type"), Status: c.Query("status")}

	data := fiber.Map{
		"Title":  s.cfg.Title,
		"Nav":    navigation.ForPage(navigation.SectionContent, navigation.PageContentList),
		"Types":  s.cfg.ContentTypes,
		"Filter": filter,
	}

	if filter.Type != "" {
		if _, ok := s.cfg.ContentType(filter.Type); !ok {
			data["error"] = ErrUnknownType.Error()
			return c.Status(fiber.StatusBadRequest).Render(TemplateName, data, handler.BaseLayout)
		}
	}

	if filter.Status != "" && !validStatus(filter.Status) {
		data["error"] = ErrUnknownStatus.Error()
		return c.Status(fiber.StatusBadRequest).Render(TemplateName, data, handler.BaseLayout)
	}

	ctx := c.UserContext()

	items, err := contentctrl.List(ctx, s.db, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list content items")

		data["error"] = ErrLoadFailed.Error()

		return c.Render(TemplateName, data, handler.BaseLayout)
	}

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		ct, _ := s.cfg.ContentType(item.Type)
		states := s.rule.DecorateStates(ctx, frontpage.StatusStates(item.Status), item.ID)

		rows = append(rows, Row{Item: item, Type: ct, States: states.Labels()})
	}

	data["Rows"] = rows

	return c.Render(TemplateName, data, handler.BaseLayout)
}

func validStatus(status string) bool {
	for _, s := range models.Statuses {
		if s == status {
			return true
		}
	}

	return false
}
