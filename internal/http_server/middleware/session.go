// Package middleware
package middleware

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/config"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/global"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"net/http"
	"slices"
	"time"
)

const (
	tokenContextKey   = "session_token"
	sessionContextKey = "session"

	maxFlashes = 5
)

// SessionClaims is the whole session; it lives signed in the session cookie.
type SessionClaims struct {
	Username  string   `json:"username,omitempty"`
	Role      string   `json:"role,omitempty"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Flashes   []string `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

type Session struct {
	claims *SessionClaims
	config *config.SessionConfig
	dirty  bool
}

func NewSession(config *config.SessionConfig, claims *SessionClaims) *Session {
	if claims == nil {
		claims = &SessionClaims{}
	}
	return &Session{claims: claims, config: config}
}

func (session *Session) Identity() *service.Identity {
	role, ok := operation.ParseRole(session.claims.Role)
	if !ok || session.claims.Username == "" {
		return &service.Identity{}
	}
	return &service.Identity{
		Username:  session.claims.Username,
		Role:      role,
		FirstName: session.claims.FirstName,
		LastName:  session.claims.LastName,
	}
}

// Login replaces the identity; pending flashes survive.
func (session *Session) Login(identity *service.Identity) {
	session.claims.Username = identity.Username
	session.claims.Role = identity.Role.String()
	session.claims.FirstName = identity.FirstName
	session.claims.LastName = identity.LastName
	session.dirty = true
}

func (session *Session) Logout() {
	session.claims.Username = ""
	session.claims.Role = ""
	session.claims.FirstName = ""
	session.claims.LastName = ""
	session.dirty = true
}

func (session *Session) SetNames(firstName, lastName string) {
	session.claims.FirstName = firstName
	session.claims.LastName = lastName
	session.dirty = true
}

// AddFlash queues message once; past maxFlashes the oldest pending message is dropped.
func (session *Session) AddFlash(message string) {
	if slices.Contains(session.claims.Flashes, message) {
		return
	}
	session.claims.Flashes = append(session.claims.Flashes, message)
	if overflow := len(session.claims.Flashes) - maxFlashes; overflow > 0 {
		session.claims.Flashes = session.claims.Flashes[overflow:]
	}
	session.dirty = true
}

func (session *Session) PopFlashes() []string {
	flashes := session.claims.Flashes
	if len(flashes) > 0 {
		session.claims.Flashes = nil
		session.dirty = true
	}
	return flashes
}

func (session *Session) empty() bool {
	return session.claims.Username == "" && len(session.claims.Flashes) == 0
}

// Save rewrites the cookie when the session changed during the request.
func (session *Session) Save(ctx echo.Context) error {
	if !session.dirty {
		return nil
	}
	session.dirty = false

	cookie := &http.Cookie{
		Name:     global.SessionCookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   session.config.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if session.empty() {
		cookie.MaxAge = -1
		ctx.SetCookie(cookie)
		return nil
	}

	now := time.Now()
	session.claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    global.SessionIssuer,
		Subject:   session.claims.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(session.config.ExpiresDuration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, session.claims)
	value, err := token.SignedString([]byte(session.config.Secret))
	if err != nil {
		return err
	}
	cookie.Value = value
	cookie.MaxAge = int(session.config.ExpiresDuration.Seconds())
	ctx.SetCookie(cookie)
	return nil
}

// SessionMiddleware parses the session cookie. Missing, expired or forged cookies all
// start an anonymous session instead of failing the request.
func SessionMiddleware(config *config.SessionConfig) echo.MiddlewareFunc {
	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(config.Secret),
		SigningMethod: "HS512",
		TokenLookup:   "cookie:" + global.SessionCookieName,
		ContextKey:    tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtMiddleware(func(c echo.Context) error {
			var claims *SessionClaims
			if token, ok := c.Get(tokenContextKey).(*jwt.Token); ok && token.Valid {
				claims, _ = token.Claims.(*SessionClaims)
			}
			c.Set(sessionContextKey, NewSession(config, claims))
			return next(c)
		})
	}
}

// GetSession returns the request session, an unsaved anonymous one when the middleware did not run.
func GetSession(c echo.Context) *Session {
	if session, ok := c.Get(sessionContextKey).(*Session); ok {
		return session
	}
	return NewSession(&config.SessionConfig{}, nil)
}
