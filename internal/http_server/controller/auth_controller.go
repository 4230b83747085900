// Package controller
package controller

import (
	"github.com/half-nothing/airline-staff-portal/internal/http_server/middleware"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AuthControllerInterface interface {
	LoginPage(ctx echo.Context) error
	Login(ctx echo.Context) error
	Logout(ctx echo.Context) error
}

type AuthController struct {
	logger      log.LoggerInterface
	authService AuthServiceInterface
}

func NewAuthController(logger log.LoggerInterface, authService AuthServiceInterface) *AuthController {
	return &AuthController{
		logger:      logger,
		authService: authService,
	}
}

func (controller *AuthController) LoginPage(ctx echo.Context) error {
	session := middleware.GetSession(ctx)
	data := &RequestLoginPage{Identity: *session.Identity()}
	return controller.authService.LoginPage(data).Response(ctx, session)
}

func (controller *AuthController) Login(ctx echo.Context) error {
	session := middleware.GetSession(ctx)
	data := &RequestLogin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("Login Bind error: %v", err)
		return NewErrorResponse[any](&ErrIllegalParam).Response(ctx, session)
	}
	res := controller.authService.Login(data)
	if res.Data != nil && res.Data.Identity != nil {
		session.Login(res.Data.Identity)
	}
	return res.Response(ctx, session)
}

func (controller *AuthController) Logout(ctx echo.Context) error {
	session := middleware.GetSession(ctx)
	data := &RequestLogout{Identity: *session.Identity()}
	session.Logout()
	return controller.authService.Logout(data).Response(ctx, session)
}
