// Package database
package database

import (
	"context"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type AirportOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAirportOperation(db *gorm.DB, queryTimeout time.Duration) *AirportOperation {
	return &AirportOperation{db: db, queryTimeout: queryTimeout}
}

func (airportOperation *AirportOperation) GetAirports() (airports []*Airport, err error) {
	airports = make([]*Airport, 0)
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	err = airportOperation.db.WithContext(ctx).Order("airport_name").Find(&airports).Error
	return
}

func (airportOperation *AirportOperation) AddAirport(airport *Airport) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	return airportOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(airport).Error
	})
}
