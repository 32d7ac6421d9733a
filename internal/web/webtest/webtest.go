// Package webtest holds helpers shared by the handler tests.
package webtest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/db/open"
	"github.com/GoFrontPage/GoFrontPage/internal/web/session"
)

// NoOpViews is a minimal fiber Views engine. It writes the "error" field of the
// provided fiber.Map if present, otherwise the template name followed by the
// map rendered as JSON, so tests can assert on handler data.
type NoOpViews struct{}

// Load implements fiber.Views.
func (NoOpViews) Load() error { return nil }

// Render implements fiber.Views.
func (NoOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	m, ok := data.(fiber.Map)
	if !ok {
		_, err := io.WriteString(w, name)
		return err //nolint:wrapcheck
	}

	if v, exists := m["error"]; exists && v != nil {
		_, err := fmt.Fprint(w, v)
		return err //nolint:wrapcheck
	}

	body, err := json.Marshal(m)
	if err != nil {
		return err //nolint:wrapcheck
	}

	_, err = fmt.Fprintf(w, "%s %s", name, body)

	return err //nolint:wrapcheck
}

// NewApp returns a fiber app rendering through NoOpViews.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{Views: NoOpViews{}})
}

// NewDB opens a migrated in-memory sqlite database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := open.DB(&config.Config{DB: config.DB{GormEngine: config.EngineSQLite}})
	require.NoError(t, err, "failed to create test database")

	return db
}

// NewConfig returns a valid configuration with the default content types.
func NewConfig() *config.Config {
	return &config.Config{
		Title: "Test Site",
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
		Site: config.Site{
			PostsPerPage:    10,
			HomeType:        "post",
			OptionsCacheTTL: time.Minute,
		},
		ContentTypes: append(config.DefaultContentTypes(),
			config.ContentType{Name: "product", Label: "Products", Singular: "Product", Public: true},
			config.ContentType{Name: "snippet", Label: "Snippets", Singular: "Snippet", Public: false},
		),
	}
}

// MemoryStorage is a minimal in-memory fiber.Storage.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ fiber.Storage = (*MemoryStorage)(nil)

// Get implements fiber.Storage.
func (s *MemoryStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

// Set implements fiber.Storage.
func (s *MemoryStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		s.data = make(map[string][]byte)
	}

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

// Delete implements fiber.Storage.
func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

// Reset implements fiber.Storage.
func (s *MemoryStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

// Keys returns the stored keys.
func (s *MemoryStorage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}

	return keys
}

// Close implements fiber.Storage.
func (s *MemoryStorage) Close() error { return nil }

// InitSessionStore installs a fresh in-memory session store.
func InitSessionStore() *MemoryStorage {
	storage := &MemoryStorage{data: make(map[string][]byte)}
	session.Init(storage)

	return storage
}

// Get performs a GET request against app.
func Get(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)

	return resp
}

// PostForm performs a form encoded POST request against app.
func PostForm(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

// PostRaw performs a POST request with an arbitrary body.
func PostRaw(t *testing.T, app *fiber.App, target, contentType, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

// Body reads and closes the response body.
func Body(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}
