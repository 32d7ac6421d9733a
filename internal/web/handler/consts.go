package handler

const (
	// BaseLayout is the layout of the administration pages.
	BaseLayout = "layouts/base"

	// SiteLayout is the layout of the public site pages.
	SiteLayout = "layouts/site"

	// RootPath is the site root.
	RootPath = "/"

	// RouterRootPath is the root of a route group.
	RouterRootPath = ""

	// AdminPath prefixes every administration route.
	AdminPath = "/admin"

	// SessionCookie is the name of the login session cookie.
	SessionCookie = "session"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
