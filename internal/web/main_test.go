package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/db/controller/content"
	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
	"github.com/GoFrontPage/GoFrontPage/internal/frontpage"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler/login"
	"github.com/GoFrontPage/GoFrontPage/internal/web/handler/site"
	"github.com/GoFrontPage/GoFrontPage/internal/web/webtest"
)

type testService struct {
	*Service
	db    *gorm.DB
	store *frontpage.CachedStore
}

func newTestService(t *testing.T) *testService {
	t.Helper()

	db := webtest.NewDB(t)
	cfg := webtest.NewConfig()
	webtest.InitSessionStore()

	store := frontpage.NewCachedStore(frontpage.NewStore(db), time.Minute)
	rule := frontpage.NewRule(store, content.NewResolver(db, cfg))

	s, err := New(cfg, db, rule, store)
	require.NoError(t, err)

	return &testService{Service: s, db: db, store: store}
}

func (s *testService) item(t *testing.T, typ, status, title, body string) uint64 {
	t.Helper()

	item := models.Item{Type: typ, Status: status, Title: title, Body: body}
	require.NoError(t, content.Create(context.Background(), s.db, &item))

	return item.ID
}

func (s *testService) login(t *testing.T) *http.Cookie {
	t.Helper()

	hash, err := models.HashPassword("secret")
	require.NoError(t, err)
	require.NoError(t, s.db.Create(&models.User{Username: "admin", Password: hash, Active: true}).Error)

	resp := webtest.PostForm(t, s.App, login.Path, url.Values{"username": {"admin"}, "password": {"secret"}})
	_ = resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			return c
		}
	}

	t.Fatal("no session cookie")

	return nil
}

func getWithCookie(t *testing.T, app *fiber.App, target string, cookie *http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(cookie)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestNew_NilArguments(t *testing.T) {
	_, err := New(nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestCheckAlive(t *testing.T) {
	s := newTestService(t)

	resp := webtest.Get(t, s.App, CheckAlivePath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", webtest.Body(t, resp))

	s.alive.Store(false)

	resp = webtest.Get(t, s.App, CheckAlivePath)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetrics_CountsDecisions(t *testing.T) {
	s := newTestService(t)

	_ = webtest.Body(t, webtest.Get(t, s.App, "/"))

	body := webtest.Body(t, webtest.Get(t, s.App, MetricsPath))
	assert.Contains(t, body, `front_page_decisions_total{reason="disabled"}`)
}

func TestStaticFiles(t *testing.T) {
	s := newTestService(t)

	resp := webtest.Get(t, s.App, "/static/reading.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, webtest.Body(t, resp), "extended_front_page_post_id")
}

func TestFrontPage_DefaultAndOverride(t *testing.T) {
	s := newTestService(t)

	s.item(t, "post", models.StatusPublish, "Hello World", "")
	target := s.item(t, "product", models.StatusPublish, "Blue Widget", "The best widget.")

	body := webtest.Body(t, webtest.Get(t, s.App, "/"))
	assert.Contains(t, body, "Hello World")
	assert.NotContains(t, body, "Blue Widget")
	assert.Contains(t, body, `data-front-page="0"`)

	require.NoError(t, s.store.Save(context.Background(), frontpage.Options{Enabled: true, TargetID: target}))

	body = webtest.Body(t, webtest.Get(t, s.App, "/"))
	assert.Contains(t, body, "<h1>Blue Widget</h1>")
	assert.Contains(t, body, "The best widget.")
	assert.Contains(t, body, "front-page")
	assert.Contains(t, body, "Product &middot;")
	assert.NotContains(t, body, "Hello World")
	assert.Contains(t, body, `data-front-page="`+strconv.FormatUint(target, 10)+`"`)
}

func TestItemNotFound(t *testing.T) {
	s := newTestService(t)

	resp := webtest.Get(t, s.App, "/item/12345")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, webtest.Body(t, resp), "Not found")
}

func TestAdmin_RequiresLogin(t *testing.T) {
	s := newTestService(t)

	for _, target := range []string{"/admin", "/admin/content", "/admin/settings/reading"} {
		resp := webtest.Get(t, s.App, target)
		_ = resp.Body.Close()

		assert.Equal(t, http.StatusFound, resp.StatusCode, target)
		assert.Equal(t, login.Path, resp.Header.Get("Location"), target)
	}
}

func TestAdmin_ReadingSettingsFlow(t *testing.T) {
	s := newTestService(t)
	cookie := s.login(t)

	target := s.item(t, "page", models.StatusPublish, "About Us", "")
	s.item(t, "post", models.StatusPublish, "Hello World", "")

	body := webtest.Body(t, getWithCookie(t, s.App, "/admin/settings/reading", cookie))
	assert.Contains(t, body, "Extended Front Page Settings")
	assert.Contains(t, body, `<optgroup label="Pages">`)
	assert.Contains(t, body, "About Us (Page)")
	assert.Contains(t, body, "— Select —")
	assert.Contains(t, body, `id="extended_front_page_post_id" disabled`)
	assert.Contains(t, body, "Enable extended front page above to use this option.")

	form := url.Values{
		frontpage.OptionEnabled:  {"1"},
		frontpage.OptionTargetID: {strconv.FormatUint(target, 10)},
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/settings/reading", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)

	resp, err := s.App.Test(req, -1)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	body = webtest.Body(t, getWithCookie(t, s.App, resp.Header.Get("Location"), cookie))
	assert.Contains(t, body, "Settings saved.")
	assert.Contains(t, body, `value="`+strconv.FormatUint(target, 10)+`" selected`)
	assert.NotContains(t, body, `id="extended_front_page_post_id" disabled`)

	body = webtest.Body(t, getWithCookie(t, s.App, "/admin/content", cookie))
	assert.Contains(t, body, "&mdash; Front Page")

	body = webtest.Body(t, webtest.Get(t, s.App, "/"))
	assert.Contains(t, body, "<h1>About Us</h1>")
	assert.NotContains(t, body, "Hello World")
}

func TestLogin_RedirectsWhenLoggedIn(t *testing.T) {
	s := newTestService(t)
	cookie := s.login(t)

	resp := getWithCookie(t, s.App, login.Path, cookie)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, login.SuccessPath, resp.Header.Get("Location"))
}

func TestLogout(t *testing.T) {
	s := newTestService(t)
	cookie := s.login(t)

	resp := getWithCookie(t, s.App, "/logout", cookie)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp = getWithCookie(t, s.App, "/admin/content", cookie)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, login.Path, resp.Header.Get("Location"))
}

func TestSiteTemplatesExist(t *testing.T) {
	for _, name := range []string{site.TemplateHome, site.TemplateSingle, site.TemplateNotFound} {
		f, err := templateEmbedFS{embeddedTemplates}.Open(name + ".gohtml")
		require.NoError(t, err, name)
		_ = f.Close()
	}
}
