// Package open connects gorm to the configured database engine.
package open

import (
	"fmt"

	"github.com/glebarez/sqlite"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/db/dsn"
	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
)

// ErrUnknownEngine is returned for an unsupported DB.GormEngine value.
var ErrUnknownEngine = fmt.Errorf("unknown gorm engine")

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case "", config.EngineMySQL:
		return gormmysql.Open(dsn.Create(cfg)), nil
	case config.EnginePostgres:
		return gormpostgres.Open(dsn.CreatePostgres(cfg)), nil
	case config.EngineSQLite:
		return sqlite.Open(dsn.CreateSQLite(cfg)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.DB.GormEngine)
	}
}

// DB opens the database and migrates the schema.
func DB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if cfg.DB.GormEngine == config.EngineSQLite {
		// sqlite allows a single writer; an in-memory database only exists on its one connection
		sqlDB, errDB := db.DB()
		if errDB != nil {
			return nil, fmt.Errorf("failed to access sql pool: %w", errDB)
		}

		sqlDB.SetMaxOpenConns(1)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Setting{},
		&models.User{},
		&models.Item{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
