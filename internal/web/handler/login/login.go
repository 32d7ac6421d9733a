// Package login provides the administrator login page.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler"
	"github.com/GoFrontPage/GoFrontPage/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	// SuccessPath is where a successful login lands.
	SuccessPath = handler.AdminPath + "/content"

	// TemplateName is the name of the login template.
	TemplateName = "login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

type form struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Handler is the login handler.
var Handler = Service{}

var _ handler.Service = (*Service)(nil)

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get renders the login page.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{"Title": s.cfg.Title})
}

func (s *Service) renderError(c *fiber.Ctx, err error) error {
	return c.Render(TemplateName, fiber.Map{
		"Title": s.cfg.Title,
		"error": err.Error(),
	})
}

// Post checks the credentials and starts a session.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(form)
	if err := c.BodyParser(in); err != nil {
		return s.renderError(c, ErrInvalidFormData)
	}

	user, err := s.authenticate(in.Username, in.Password)
	if err != nil {
		log.Warn().Str("username", in.Username).Str("ip", c.IP()).Msg("login failed")
		return s.renderError(c, err)
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return s.renderError(c, ErrInternalServerError)
	}

	if err = (&session.Data{User: *user}).Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return s.renderError(c, ErrInternalServerError)
	}

	c.Cookie(&fiber.Cookie{
		Name:     handler.SessionCookie,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	log.Info().Str("username", user.Username).Msg("user logged in")

	return c.Redirect(SuccessPath)
}

func (s *Service) authenticate(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}

		log.Error().Err(err).Msg("failed to load user")

		return nil, ErrInternalServerError
	}

	if !user.Active || !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
