package config

import (
	"time"

	"github.com/GoFrontPage/GoFrontPage/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode      bool // enable dev mode for development
	DB           DB
	Log          logger.Log
	Title        string
	Webserver    Webserver
	Site         Site
	ContentTypes []ContentType
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic        bool    // enable static file browsing (for development purposes only)
	Port                int     // listening port for the webserver
	ShutDownTime        int     // wait time for shutdown
	URL                 string  // base url for the webserver
	CookieEncryptionKey string  // encryption key for cookies
	Session             Session // session settings
}

// Site holds the public site rendering settings.
type Site struct {
	PostsPerPage    int           // items on the default home listing
	HomeType        string        // content type listed on the default home page; empty means post
	OptionsCacheTTL time.Duration // how long front page options are cached between reads
}

// ContentType describes a content type known to the site.
type ContentType struct {
	Name     string // machine name, e.g. "page"
	Label    string // plural label, e.g. "Pages"
	Singular string // singular label, e.g. "Page"
	Public   bool   // public types can be viewed and chosen as front page
}

// DefaultContentTypes returns the built-in post and page types.
func DefaultContentTypes() []ContentType {
	return []ContentType{
		{Name: "post", Label: "Posts", Singular: "Post", Public: true},
		{Name: "page", Label: "Pages", Singular: "Page", Public: true},
	}
}

// ContentType returns the configured content type by name.
func (c *Config) ContentType(name string) (ContentType, bool) {
	for _, ct := range c.ContentTypes {
		if ct.Name == name {
			return ct, true
		}
	}

	return ContentType{}, false
}

// PublicContentTypes returns the public content types in configuration order.
func (c *Config) PublicContentTypes() []ContentType {
	out := make([]ContentType, 0, len(c.ContentTypes))

	for _, ct := range c.ContentTypes {
		if ct.Public {
			out = append(out, ct)
		}
	}

	return out
}
