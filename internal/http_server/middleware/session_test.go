package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/half-nothing/airline-staff-portal/internal/interfaces/config"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/global"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessionConfig(secret string) *config.SessionConfig {
	return &config.SessionConfig{Secret: secret, ExpiresDuration: time.Hour}
}

func sessionCookie(t *testing.T, cfg *config.SessionConfig, identity *service.Identity, flashes ...string) *http.Cookie {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	session := NewSession(cfg, nil)
	if identity != nil {
		session.Login(identity)
	}
	for _, flash := range flashes {
		session.AddFlash(flash)
	}
	require.NoError(t, session.Save(ctx))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

// newSessionEcho echoes the session identity and flashes back as headers.
func newSessionEcho(cfg *config.SessionConfig) *echo.Echo {
	e := echo.New()
	e.Use(SessionMiddleware(cfg))
	e.GET("/", func(c echo.Context) error {
		session := GetSession(c)
		identity := session.Identity()
		c.Response().Header().Set("X-Username", identity.Username)
		c.Response().Header().Set("X-Role", identity.Role.String())
		for _, flash := range session.PopFlashes() {
			c.Response().Header().Add("X-Flash", flash)
		}
		if err := session.Save(c); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestSessionRoundTrip(t *testing.T) {
	cfg := testSessionConfig("first-secret")
	cookie := sessionCookie(t, cfg, &service.Identity{Username: "alice", Role: operation.RoleAdmin, FirstName: "Alice"}, "hello")
	assert.Equal(t, global.SessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	e := newSessionEcho(cfg)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Header().Get("X-Username"))
	assert.Equal(t, "admin", rec.Header().Get("X-Role"))
	assert.Equal(t, []string{"hello"}, rec.Header().Values("X-Flash"))

	// the flash was consumed, so the rewritten cookie still carries the identity
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "alice", rec.Header().Get("X-Username"))
	assert.Empty(t, rec.Header().Values("X-Flash"))
}

func TestSessionForgedCookieIsAnonymous(t *testing.T) {
	forged := sessionCookie(t, testSessionConfig("attacker"), &service.Identity{Username: "mallory", Role: operation.RoleAdmin})

	e := newSessionEcho(testSessionConfig("real-secret"))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(forged)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", rec.Header().Get("X-Username"))
	assert.Equal(t, "", rec.Header().Get("X-Role"))
}

func TestSessionMissingCookieIsAnonymous(t *testing.T) {
	e := newSessionEcho(testSessionConfig("secret"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", rec.Header().Get("X-Username"))
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionLogoutClearsCookie(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	session := NewSession(testSessionConfig("secret"), &SessionClaims{Username: "alice", Role: "staff"})
	session.Logout()
	require.NoError(t, session.Save(ctx))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.False(t, session.Identity().LoggedIn())
}

func TestSessionUnknownRoleIsAnonymous(t *testing.T) {
	session := NewSession(testSessionConfig("secret"), &SessionClaims{Username: "alice", Role: "pilot"})
	assert.Equal(t, operation.RoleAnonymous, session.Identity().Role)
	assert.Equal(t, "", session.Identity().Username)
}

func TestSessionSetNames(t *testing.T) {
	session := NewSession(testSessionConfig("secret"), &SessionClaims{Username: "alice", Role: "staff"})
	session.SetNames("Alice", "Wu")
	assert.Equal(t, "Alice Wu", session.Identity().FullName())
}

func TestSessionAddFlashDedupesAndCaps(t *testing.T) {
	session := NewSession(testSessionConfig("secret"), nil)
	session.AddFlash("again")
	session.AddFlash("again")
	assert.Equal(t, []string{"again"}, session.claims.Flashes)

	for i := 0; i < 2*maxFlashes; i++ {
		session.AddFlash(strconv.Itoa(i))
	}
	flashes := session.PopFlashes()
	require.Len(t, flashes, maxFlashes)
	assert.Equal(t, strconv.Itoa(2*maxFlashes-1), flashes[maxFlashes-1])
}
