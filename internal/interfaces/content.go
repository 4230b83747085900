// Package interfaces
package interfaces

import (
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/config"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/global"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"time"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	Clean()
}

type ConfigManagerInterface interface {
	Config() *config.Config
	SaveConfig() error
}

// ApplicationContent carries the process-wide collaborators handed to the http server.
type ApplicationContent struct {
	configManager ConfigManagerInterface
	cleaner       CleanerInterface
	logger        log.LoggerInterface
	operations    *operation.DatabaseOperations
	clock         func() time.Time
}

func NewApplicationContent(
	configManager ConfigManagerInterface,
	cleaner CleanerInterface,
	logger log.LoggerInterface,
	db *operation.DatabaseOperations,
) *ApplicationContent {
	return &ApplicationContent{
		configManager: configManager,
		cleaner:       cleaner,
		logger:        logger,
		operations:    db,
		clock:         time.Now,
	}
}

func (app *ApplicationContent) ConfigManager() ConfigManagerInterface {
	return app.configManager
}

func (app *ApplicationContent) Cleaner() CleanerInterface { return app.cleaner }

func (app *ApplicationContent) Logger() log.LoggerInterface { return app.logger }

func (app *ApplicationContent) Operations() *operation.DatabaseOperations { return app.operations }

// WithClock replaces the time source, tests pin it to a fixed instant.
func (app *ApplicationContent) WithClock(clock func() time.Time) *ApplicationContent {
	app.clock = clock
	return app
}

// Clock is the time source for trailing analytics windows and upcoming-flight counts.
func (app *ApplicationContent) Clock() func() time.Time { return app.clock }
