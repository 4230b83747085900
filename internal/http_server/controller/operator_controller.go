// Package controller
package controller

import (
	"github.com/half-nothing/airline-staff-portal/internal/http_server/middleware"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type OperatorControllerInterface interface {
	OperatorHome(ctx echo.Context) error
	UpdateStatus(ctx echo.Context) error
}

type OperatorController struct {
	logger          log.LoggerInterface
	operatorService OperatorServiceInterface
	queryBinder     *echo.DefaultBinder
}

func NewOperatorController(logger log.LoggerInterface, operatorService OperatorServiceInterface) *OperatorController {
	return &OperatorController{
		logger:          logger,
		operatorService: operatorService,
		queryBinder:     &echo.DefaultBinder{},
	}
}

func (controller *OperatorController) OperatorHome(ctx echo.Context) error {
	session := middleware.GetSession(ctx)
	data := &RequestOperatorHome{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("OperatorHome Bind error: %v", err)
		return NewErrorResponse[any](&ErrIllegalParam).Response(ctx, session)
	}
	data.Identity = *session.Identity()
	return controller.operatorService.OperatorHome(data).Response(ctx, session)
}

// UpdateStatus reads the action from the form body and the list filter from the query string.
func (controller *OperatorController) UpdateStatus(ctx echo.Context) error {
	session := middleware.GetSession(ctx)
	data := &RequestUpdateStatus{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UpdateStatus Bind error: %v", err)
		return NewErrorResponse[any](&ErrIllegalParam).Response(ctx, session)
	}
	if err := controller.queryBinder.BindQueryParams(ctx, &data.RequestFlightFilter); err != nil {
		controller.logger.ErrorF("UpdateStatus BindQueryParams error: %v", err)
		return NewErrorResponse[any](&ErrIllegalParam).Response(ctx, session)
	}
	data.Identity = *session.Identity()
	return controller.operatorService.UpdateStatus(data).Response(ctx, session)
}
