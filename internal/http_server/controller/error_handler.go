// Package controller
package controller

import (
	"errors"
	"github.com/half-nothing/airline-staff-portal/internal/http_server/middleware"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"net/http"
)

type ErrorPage struct {
	Code    int
	Message string
}

// NewErrorHandler renders error.html for every error that escaped a handler.
// Server errors are logged, their text never reaches the page.
func NewErrorHandler(logger log.LoggerInterface) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		page := &ErrorPage{Code: http.StatusInternalServerError, Message: ErrDatabaseFail.Description}
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			page.Code = httpErr.Code
			if message, ok := httpErr.Message.(string); ok && page.Code < http.StatusInternalServerError {
				page.Message = message
			} else if page.Code < http.StatusInternalServerError {
				page.Message = http.StatusText(page.Code)
			}
		}
		if page.Code >= http.StatusInternalServerError {
			logger.ErrorF("%s %s failed: %v", ctx.Request().Method, ctx.Request().URL.Path, err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(page.Code)
		} else {
			err = ctx.Render(page.Code, "error.html", &PageContext[ErrorPage]{
				Identity: middleware.GetSession(ctx).Identity(),
				Data:     page,
			})
		}
		if err != nil {
			logger.ErrorF("Rendering error page failed: %v", err)
		}
	}
}
