// Package controller
package controller

import (
	"github.com/half-nothing/airline-staff-portal/internal/http_server/middleware"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AnalyticsControllerInterface interface {
	Analytics(ctx echo.Context) error
}

type AnalyticsController struct {
	logger           log.LoggerInterface
	analyticsService AnalyticsServiceInterface
}

func NewAnalyticsController(logger log.LoggerInterface, analyticsService AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{
		logger:           logger,
		analyticsService: analyticsService,
	}
}

func (controller *AnalyticsController) Analytics(ctx echo.Context) error {
	session := middleware.GetSession(ctx)
	data := &RequestAnalytics{Identity: *session.Identity()}
	return controller.analyticsService.Analytics(data).Response(ctx, session)
}
