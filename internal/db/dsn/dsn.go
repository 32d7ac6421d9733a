// Package dsn builds database connection strings from the configuration.
package dsn

import (
	"fmt"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
)

// Create builds the MySQL Data Source Name from the configuration.
func Create(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
		cfg.DB.Extras,
	)
}

// CreatePostgres builds the PostgreSQL connection URI from the configuration.
func CreatePostgres(cfg *config.Config) string {
	out := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
	)

	if cfg.DB.Extras != "" {
		out += "?" + cfg.DB.Extras
	}

	return out
}

// CreateSQLite returns the sqlite database file, defaulting to an in-memory database.
func CreateSQLite(cfg *config.Config) string {
	if cfg.DB.File == "" {
		return ":memory:"
	}

	return cfg.DB.File
}
