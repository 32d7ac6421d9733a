// Package daemon wires the database, sessions and web service together.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/content"
	"github.com/GoFrontPage/GoFrontPage/internal/db/dsn"
	"github.com/GoFrontPage/GoFrontPage/internal/db/open"
	"github.com/GoFrontPage/GoFrontPage/internal/frontpage"
	"github.com/GoFrontPage/GoFrontPage/internal/web"
	"github.com/GoFrontPage/GoFrontPage/internal/web/session"
)

const sessionTable = "sessions"

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start serves http until a shutdown signal arrives.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := open.DB(cfg)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err = seed(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	session.Init(SessionStorage(cfg))

	store := frontpage.NewCachedStore(frontpage.NewStore(db), cfg.Site.OptionsCacheTTL)
	rule := frontpage.NewRule(store, content.NewResolver(db, cfg))

	webService, err := web.New(cfg, db, rule, store)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		webService: webService,
	}, nil
}

// SessionStorage returns the session storage of the configured engine. Sqlite keeps
// sessions in memory and yields nil.
func SessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.GormEngine {
	case "", config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         sessionTable,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.CreatePostgres(cfg),
			Table:         sessionTable,
		})
	default:
		log.Info().Str("engine", cfg.DB.GormEngine).Msg("sessions are kept in memory")
		return nil
	}
}
