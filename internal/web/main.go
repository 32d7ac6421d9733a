package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/frontpage"
	accesslog "github.com/GoFrontPage/GoFrontPage/internal/logger/adapter/fiber"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler/admin/content"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler/admin/settings/reading"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler/api"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler/login"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler/logout"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler/site"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic.
	CheckAlivePath = "/checkalive"
	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM and stops the http server gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive answers 200 while alive, 503 during shutdown.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// newTemplateEngine returns the html engine with the front page helpers registered.
func newTemplateEngine(cfg *config.Config, rule *frontpage.Rule) *html.Engine {
	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("isFrontPage", func(id uint64) bool {
		return rule.IsFrontPage(context.Background(), id)
	})
	templateEngine.AddFunc("frontPageID", func() uint64 {
		return rule.FrontPageID(context.Background())
	})

	return templateEngine
}

// New creates the web service and registers every handler.
func New(cfg *config.Config, db *gorm.DB, rule *frontpage.Rule, store frontpage.OptionsStore) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	if rule == nil || store == nil {
		return nil, errors.New("front page rule and store cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          newTemplateEngine(cfg, rule),
		},
	)

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	app.Get(CheckAlivePath, service.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	app.Use(AuthMiddleware)

	if err := login.Handler.Init(app, cfg, db); err != nil {
		return nil, err
	}

	if err := logout.Handler.Init(app, cfg); err != nil {
		return nil, err
	}

	if err := site.Handler.Init(app, cfg, db, rule); err != nil {
		return nil, err
	}

	if err := api.Handler.Init(app, rule); err != nil {
		return nil, err
	}

	if err := content.Handler.Init(app, cfg, db, rule); err != nil {
		return nil, err
	}

	if err := reading.Handler.Init(app, cfg, db, store); err != nil {
		return nil, err
	}

	// the admin root lands on the content list
	app.Get("/admin", func(c *fiber.Ctx) error {
		return c.Redirect(content.Path)
	})

	return service, nil
}
