package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GoFrontPage/GoFrontPage/internal/web/handler"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler/login"
	"github.com/GoFrontPage/GoFrontPage/internal/web/session"
)

// AuthMiddleware guards the administration area. Site pages, static files and the
// login page pass through untouched.
func AuthMiddleware(c *fiber.Ctx) error {
	isLoginPage := IsLoginPage(c)

	if !isLoginPage && !IsAdminPage(c) {
		return c.Next()
	}

	sessData := new(session.Data)
	if err := sessData.Read(c.Cookies(handler.SessionCookie)); err != nil || sessData.User.ID == 0 {
		if isLoginPage {
			return c.Next()
		}

		return c.Redirect(login.Path)
	}

	if isLoginPage {
		return c.Redirect(login.SuccessPath)
	}

	c.Locals("CurrentUser", sessData.User.Username)

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Path()), login.Path)
}

// IsAdminPage checks if the current request belongs to the administration area.
func IsAdminPage(c *fiber.Ctx) bool {
	p := strings.ToLower(c.Path())

	return p == handler.AdminPath || strings.HasPrefix(p, handler.AdminPath+"/")
}
