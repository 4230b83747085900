// Package controller
package controller

import (
	"github.com/half-nothing/airline-staff-portal/internal/http_server/middleware"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type StaffControllerInterface interface {
	Dashboard(ctx echo.Context) error
	Passengers(ctx echo.Context) error
	CustomerFlights(ctx echo.Context) error
}

type StaffController struct {
	logger       log.LoggerInterface
	staffService StaffServiceInterface
}

func NewStaffController(logger log.LoggerInterface, staffService StaffServiceInterface) *StaffController {
	return &StaffController{
		logger:       logger,
		staffService: staffService,
	}
}

func (controller *StaffController) Dashboard(ctx echo.Context) error {
	session := middleware.GetSession(ctx)
	data := &RequestDashboard{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("Dashboard Bind error: %v", err)
		return NewErrorResponse[any](&ErrIllegalParam).Response(ctx, session)
	}
	data.Identity = *session.Identity()
	res := controller.staffService.Dashboard(data)
	if res.Data != nil && res.Data.NamesLoaded {
		session.SetNames(res.Data.FirstName, res.Data.LastName)
	}
	return res.Response(ctx, session)
}

func (controller *StaffController) Passengers(ctx echo.Context) error {
	session := middleware.GetSession(ctx)
	data := &RequestPassengers{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("Passengers Bind error: %v", err)
		return NewErrorResponse[any](&ErrIllegalParam).Response(ctx, session)
	}
	data.Identity = *session.Identity()
	return controller.staffService.Passengers(data).Response(ctx, session)
}

func (controller *StaffController) CustomerFlights(ctx echo.Context) error {
	session := middleware.GetSession(ctx)
	data := &RequestCustomerFlights{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CustomerFlights Bind error: %v", err)
		return NewErrorResponse[any](&ErrIllegalParam).Response(ctx, session)
	}
	data.Identity = *session.Identity()
	return controller.staffService.CustomerFlights(data).Response(ctx, session)
}
