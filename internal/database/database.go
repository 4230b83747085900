// Package database
package database

import (
	"context"
	"errors"
	"fmt"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/config"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

type DBCloseCallback struct {
	db *gorm.DB
}

func NewDBCloseCallback(db *gorm.DB) *DBCloseCallback {
	return &DBCloseCallback{db: db}
}

func (dc *DBCloseCallback) Invoke(_ context.Context) error {
	db, err := dc.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

func ConnectDatabase(lg log.LoggerInterface, config *config.Config, debug bool) (*DBCloseCallback, *operation.DatabaseOperations, error) {
	dialector := config.Database.GetConnection(lg)
	if dialector == nil {
		return nil, nil, fmt.Errorf("unsupported database type %s", config.Database.Type)
	}

	gormConfig := &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}
	if debug {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while connecting to database: %w", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %w", err)
	}

	maxOpenConnections := float32(config.Database.ServerMaxConnections) * 0.8 // stay below 80% of the server limit
	maxIdleConnections := maxOpenConnections / 5
	if maxIdleConnections < 1 {
		maxIdleConnections = 1
	}

	dbPool.SetMaxIdleConns(int(maxIdleConnections))
	dbPool.SetMaxOpenConns(int(maxOpenConnections))
	dbPool.SetConnMaxIdleTime(config.Database.ConnectIdleDuration)

	ctx, cancel := context.WithTimeout(context.Background(), config.Database.QueryDuration)
	defer cancel()
	if err := dbPool.PingContext(ctx); err != nil {
		return nil, nil, fmt.Errorf("error occured while pinging database: %w", err)
	}

	lg.InfoF("Connected to %s database %s", config.Database.DBType, config.Database.Database)

	return NewDBCloseCallback(db), NewOperations(db, config.Database.QueryDuration), nil
}

// NewOperations wires every operation onto one gorm handle.
func NewOperations(db *gorm.DB, queryTimeout time.Duration) *operation.DatabaseOperations {
	return operation.NewDatabaseOperations(
		NewStaffOperation(db, queryTimeout),
		NewFlightOperation(db, queryTimeout),
		NewAirportOperation(db, queryTimeout),
		NewAirplaneOperation(db, queryTimeout),
		NewAgentOperation(db, queryTimeout),
		NewPassengerOperation(db, queryTimeout),
		NewAnalyticsOperation(db, queryTimeout),
	)
}

func notFound(err error, replacement error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return replacement
	}
	return err
}
