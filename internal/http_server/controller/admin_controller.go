// Package controller
package controller

import (
	"github.com/half-nothing/airline-staff-portal/internal/http_server/middleware"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AdminControllerInterface interface {
	AdminHome(ctx echo.Context) error
	AdminAction(ctx echo.Context) error
}

type AdminController struct {
	logger       log.LoggerInterface
	adminService AdminServiceInterface
}

func NewAdminController(logger log.LoggerInterface, adminService AdminServiceInterface) *AdminController {
	return &AdminController{
		logger:       logger,
		adminService: adminService,
	}
}

func (controller *AdminController) AdminHome(ctx echo.Context) error {
	session := middleware.GetSession(ctx)
	data := &RequestAdminHome{Identity: *session.Identity()}
	return controller.adminService.AdminHome(data).Response(ctx, session)
}

func (controller *AdminController) AdminAction(ctx echo.Context) error {
	session := middleware.GetSession(ctx)
	data := &RequestAdminAction{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AdminAction Bind error: %v", err)
		return NewErrorResponse[any](&ErrIllegalParam).Response(ctx, session)
	}
	data.Identity = *session.Identity()
	return controller.adminService.AdminAction(data).Response(ctx, session)
}
