// Package api exposes the front page helpers as a small JSON API.
package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/GoFrontPage/GoFrontPage/internal/frontpage"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler"
)

// Path is the API route prefix.
const Path = "/api/front-page"

// ErrInvalidID is returned for an item id that is not a positive integer.
var ErrInvalidID = errors.New("invalid item id")

// IDResponse is the body of GET /api/front-page.
type IDResponse struct {
	ID uint64 `json:"id"`
}

// CheckResponse is the body of GET /api/front-page/:id.
type CheckResponse struct {
	ID        uint64 `json:"id"`
	FrontPage bool   `json:"front_page"`
}

// ErrorResponse is returned with 4xx status codes.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Service is the front page API handler.
type Service struct {
	rule *frontpage.Rule
}

// Handler is the front page API handler.
var Handler = Service{}

// Init registers the API routes.
func (s *Service) Init(app *fiber.App, rule *frontpage.Rule) error {
	if app == nil || rule == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.rule = rule

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.ID)
		router.Get("/:id", s.Check)
	})

	return nil
}

// ID returns the id of the enabled front page item, 0 when the override is off.
func (s *Service) ID(c *fiber.Ctx) error {
	return c.JSON(IDResponse{ID: s.rule.FrontPageID(c.UserContext())})
}

// Check reports whether the given item is the front page item.
func (s *Service) Check(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: ErrInvalidID.Error()})
	}

	return c.JSON(CheckResponse{
		ID:        id,
		FrontPage: s.rule.IsFrontPage(c.UserContext(), id),
	})
}
