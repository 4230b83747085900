// Package database
package database

import (
	"context"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type PassengerOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewPassengerOperation(db *gorm.DB, queryTimeout time.Duration) *PassengerOperation {
	return &PassengerOperation{db: db, queryTimeout: queryTimeout}
}

func (passengerOperation *PassengerOperation) GetPassengers(airline string, filter *PassengerFilter) (passengers []*PassengerRow, err error) {
	builder, err := BuildPassengerQuery(airline, filter)
	if err != nil {
		return nil, err
	}
	query, args := builder.Build()
	passengers = make([]*PassengerRow, 0)
	ctx, cancel := context.WithTimeout(context.Background(), passengerOperation.queryTimeout)
	defer cancel()
	err = passengerOperation.db.WithContext(ctx).Raw(query, args...).Scan(&passengers).Error
	return
}

func (passengerOperation *PassengerOperation) GetCustomerFlights(airline string, filter *CustomerFilter) (flights []*CustomerFlightRow, err error) {
	builder, err := BuildCustomerFlightQuery(airline, filter)
	if err != nil {
		return nil, err
	}
	query, args := builder.Build()
	flights = make([]*CustomerFlightRow, 0)
	ctx, cancel := context.WithTimeout(context.Background(), passengerOperation.queryTimeout)
	defer cancel()
	err = passengerOperation.db.WithContext(ctx).Raw(query, args...).Scan(&flights).Error
	return
}
