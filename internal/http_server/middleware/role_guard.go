// Package middleware
package middleware

import (
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

// RequireRole lets the request through only when the session role is one of roles.
// Anyone else gets a flash and is sent to their own landing page before any handler work runs.
func RequireRole(roles ...operation.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := GetSession(c)
			role := session.Identity().Role
			if role.IsAnyOf(roles...) {
				return next(c)
			}
			status := &service.ErrNoPermission
			if role == operation.RoleAnonymous {
				status = &service.ErrNotLoggedIn
			}
			return service.NewRedirectResponse[any](status, service.LandingPage(role)).Response(c, session)
		}
	}
}
