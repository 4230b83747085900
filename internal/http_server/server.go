// Package http_server
package http_server

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/half-nothing/airline-staff-portal/internal/http_server/controller"
	"github.com/half-nothing/airline-staff-portal/internal/http_server/metrics"
	mid "github.com/half-nothing/airline-staff-portal/internal/http_server/middleware"
	"github.com/half-nothing/airline-staff-portal/internal/http_server/render"
	impl "github.com/half-nothing/airline-staff-portal/internal/http_server/service"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/samber/slog-echo"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

type LimiterShutdownCallback struct {
	limiters []*mid.SlidingWindowLimiter
}

func (lc *LimiterShutdownCallback) Invoke(_ context.Context) error {
	for _, limiter := range lc.limiters {
		limiter.Stop()
	}
	return nil
}

// Servers holds the portal and, when metrics are enabled, the scrape listener kept off the portal.
type Servers struct {
	Portal  *echo.Echo
	Metrics *echo.Echo
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	return e
}

func newMetricsServer(m *metrics.Metrics) *echo.Echo {
	e := newEcho()
	e.GET("/metrics", m.Handler())
	return e
}

var (
	allStaffRoles = []operation.Role{operation.RoleStaff, operation.RoleAdmin, operation.RoleOperator}
	adminRoles    = []operation.Role{operation.RoleAdmin}
	operatorRoles = []operation.Role{operation.RoleOperator}
)

// NewHttpServer builds the echo instances with every middleware and route, without listening.
func NewHttpServer(applicationContent *ApplicationContent) (*Servers, error) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()
	httpConfig := config.Server.HttpServer

	e := newEcho()
	servers := &Servers{Portal: e}

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	renderer, err := render.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = controller.NewErrorHandler(logger)

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	var observer service.MutationObserver
	if httpConfig.EnableMetrics {
		m := metrics.NewMetrics()
		observer = m
		e.Use(m.Middleware())
		servers.Metrics = newMetricsServer(m)
	}

	e.Use(mid.SessionMiddleware(httpConfig.Session))

	if httpConfig.Limits.RateLimit <= 0 {
		logger.WarnF("Invalid rate limit value %d, using default 120", httpConfig.Limits.RateLimit)
		httpConfig.Limits.RateLimit = 120
	}
	if httpConfig.Limits.RateLimitDuration <= 0 {
		logger.WarnF("Invalid rate limit duration %v, using default 1m", httpConfig.Limits.RateLimitDuration)
		httpConfig.Limits.RateLimitDuration = time.Minute
	}

	ipPathLimiter := mid.NewSlidingWindowLimiter(httpConfig.Limits.RateLimitDuration, httpConfig.Limits.RateLimit)
	loginLimiter := mid.NewSlidingWindowLimiter(httpConfig.Limits.RateLimitDuration, httpConfig.Limits.LoginRateLimit)
	cleanupInterval := httpConfig.Limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	ipPathLimiter.StartCleanup(cleanupInterval)
	loginLimiter.StartCleanup(cleanupInterval)
	applicationContent.Cleaner().Add(&LimiterShutdownCallback{limiters: []*mid.SlidingWindowLimiter{ipPathLimiter, loginLimiter}})

	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	operations := applicationContent.Operations()
	clock := applicationContent.Clock()
	validator := impl.NewFieldValidator(httpConfig.Limits)
	emailService := impl.NewEmailService(logger, httpConfig.Email)

	authService := impl.NewAuthService(logger, validator, operations.StaffOperation())
	staffService := impl.NewStaffService(logger, clock, operations.StaffOperation(), operations.FlightOperation(), operations.PassengerOperation())
	adminService := impl.NewAdminService(logger, validator, observer, operations)
	operatorService := impl.NewOperatorService(logger, validator, observer, emailService, operations.StaffOperation(), operations.FlightOperation())
	analyticsService := impl.NewAnalyticsService(logger, clock, operations.StaffOperation(), operations.AnalyticsOperation())

	authController := controller.NewAuthController(logger, authService)
	staffController := controller.NewStaffController(logger, staffService)
	adminController := controller.NewAdminController(logger, adminService)
	operatorController := controller.NewOperatorController(logger, operatorService)
	analyticsController := controller.NewAnalyticsController(logger, analyticsService)

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, service.LandingPage(mid.GetSession(c).Identity().Role))
	})
	e.GET(service.LoginPath, authController.LoginPage)
	e.POST(service.LoginPath, authController.Login, mid.RateLimitMiddleware(loginLimiter, mid.IPKeyFunc))
	e.POST("/logout", authController.Logout)

	staffGroup := e.Group("/staff")
	staffGroup.GET("/dashboard", staffController.Dashboard, mid.RequireRole(allStaffRoles...))
	staffGroup.GET("/passengers", staffController.Passengers, mid.RequireRole(allStaffRoles...))
	staffGroup.GET("/customer_flights", staffController.CustomerFlights, mid.RequireRole(allStaffRoles...))
	staffGroup.GET("/analytics", analyticsController.Analytics, mid.RequireRole(allStaffRoles...))
	staffGroup.GET("/admin_home", adminController.AdminHome, mid.RequireRole(adminRoles...))
	staffGroup.POST("/admin_home", adminController.AdminAction, mid.RequireRole(adminRoles...))
	staffGroup.GET("/operator_home", operatorController.OperatorHome, mid.RequireRole(operatorRoles...))
	staffGroup.POST("/operator_home", operatorController.UpdateStatus, mid.RequireRole(operatorRoles...))

	return servers, nil
}

func StartHttpServer(applicationContent *ApplicationContent) {
	logger := applicationContent.Logger()
	httpConfig := applicationContent.ConfigManager().Config().Server.HttpServer

	servers, err := NewHttpServer(applicationContent)
	if err != nil {
		logger.FatalF("Http server init error: %v", err)
		return
	}
	e := servers.Portal
	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	if servers.Metrics != nil {
		applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(servers.Metrics))
		go func() {
			logger.InfoF("Serving metrics on %s", httpConfig.MetricsListen)
			if err := servers.Metrics.Start(httpConfig.MetricsListen); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.ErrorF("Metrics server error: %v", err)
			}
		}()
	}

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v, %d logins per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration,
		httpConfig.Limits.LoginRateLimit,
		httpConfig.Limits.RateLimitDuration)

	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
