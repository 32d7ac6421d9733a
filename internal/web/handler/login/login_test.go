package login

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFrontPage/GoFrontPage/internal/db/models"
	"github.com/GoFrontPage/GoFrontPage/internal/web/webtest"
)

func createUser(t *testing.T, db *gorm.DB, username, password string, active bool) {
	t.Helper()

	hash, err := models.HashPassword(password)
	require.NoError(t, err)

	user := models.User{Username: username, Password: hash, Active: active}
	require.NoError(t, db.Create(&user).Error)
}

func TestAuthenticate(t *testing.T) {
	db := webtest.NewDB(t)
	createUser(t, db, "alice", "secret", true)
	createUser(t, db, "mallory", "secret", false)

	s := Service{cfg: webtest.NewConfig(), db: db}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid", username: "alice", password: "secret"},
		{name: "wrong password", username: "alice", password: "wrong", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "bob", password: "secret", wantErr: ErrInvalidCredentials},
		{name: "inactive user", username: "mallory", password: "secret", wantErr: ErrInvalidCredentials},
		{name: "empty password", username: "alice", password: "", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := s.authenticate(tt.username, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.username, user.Username)
		})
	}
}

func TestPost_Success_SetsCookieAndRedirects(t *testing.T) {
	db := webtest.NewDB(t)
	cfg := webtest.NewConfig()
	app := webtest.NewApp()
	storage := webtest.InitSessionStore()

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	createUser(t, db, "bob", "s3cr3t", true)

	resp := webtest.PostForm(t, app, Path, url.Values{
		"username": {"bob"},
		"password": {"s3cr3t"},
	})
	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, SuccessPath, resp.Header.Get("Location"))

	setCookie := resp.Header.Get("Set-Cookie")
	assert.Contains(t, setCookie, "session=")
	assert.Contains(t, strings.ToLower(setCookie), "secure")
	assert.Len(t, storage.Keys(), 1)
}

func TestPost_DevModeDisablesSecure(t *testing.T) {
	db := webtest.NewDB(t)
	cfg := webtest.NewConfig()
	cfg.DevMode = true
	app := webtest.NewApp()
	webtest.InitSessionStore()

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	createUser(t, db, "carol", "pass", true)

	resp := webtest.PostForm(t, app, Path, url.Values{
		"username": {"carol"},
		"password": {"pass"},
	})
	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.NotContains(t, strings.ToLower(resp.Header.Get("Set-Cookie")), "secure")
}

func TestPost_InvalidForm_RendersError(t *testing.T) {
	db := webtest.NewDB(t)
	app := webtest.NewApp()
	webtest.InitSessionStore()

	var s Service
	require.NoError(t, s.Init(app, webtest.NewConfig(), db))

	resp := webtest.PostRaw(t, app, Path, "application/json", "{")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, webtest.Body(t, resp), ErrInvalidFormData.Error())
}

func TestPost_WrongPassword_RendersError(t *testing.T) {
	db := webtest.NewDB(t)
	app := webtest.NewApp()
	storage := webtest.InitSessionStore()

	var s Service
	require.NoError(t, s.Init(app, webtest.NewConfig(), db))

	createUser(t, db, "dave", "right", true)

	resp := webtest.PostForm(t, app, Path, url.Values{
		"username": {"dave"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, webtest.Body(t, resp), ErrInvalidCredentials.Error())
	assert.Empty(t, storage.Keys())
}

func TestGet_RendersLoginPage(t *testing.T) {
	app := webtest.NewApp()

	var s Service
	require.NoError(t, s.Init(app, webtest.NewConfig(), webtest.NewDB(t)))

	resp := webtest.Get(t, app, Path)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(webtest.Body(t, resp), TemplateName))
}

func TestInit_NilArguments(t *testing.T) {
	var s Service
	assert.Error(t, s.Init(nil, nil, nil))
}
