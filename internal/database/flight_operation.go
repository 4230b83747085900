// Package database
package database

import (
	"context"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type FlightOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFlightOperation(db *gorm.DB, queryTimeout time.Duration) *FlightOperation {
	return &FlightOperation{db: db, queryTimeout: queryTimeout}
}

func (flightOperation *FlightOperation) GetFlights(airline string, filter *FlightFilter, order SortOrder) (flights []*Flight, err error) {
	builder, err := BuildFlightQuery(airline, filter, order)
	if err != nil {
		return nil, err
	}
	query, args := builder.Build()
	flights = make([]*Flight, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Raw(query, args...).Scan(&flights).Error
	return
}

func (flightOperation *FlightOperation) CountUpcomingFlights(airline string, from time.Time, window time.Duration) (count int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).
		Model(&Flight{}).
		Where("airline_name = ? AND departure_time >= ? AND departure_time <= ?", airline, from, from.Add(window)).
		Count(&count).
		Error
	return
}

func (flightOperation *FlightOperation) CreateFlight(flight *Flight) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(flight).Error
	})
}

func (flightOperation *FlightOperation) UpdateFlightStatus(airline, flightNum string, status FlightStatus) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Flight{}).
			Where("airline_name = ? AND flight_num = ?", airline, flightNum).
			Update("status", string(status))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFlightNotFound
		}
		return nil
	})
}

func (flightOperation *FlightOperation) GetFlightCustomerEmails(airline, flightNum string) (emails []string, err error) {
	emails = make([]string, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Raw(`
SELECT DISTINCT p.customer_email
FROM purchases p
JOIN ticket t ON t.ticket_id = p.ticket_id
WHERE t.airline_name = ? AND t.flight_num = ?
ORDER BY p.customer_email`, airline, flightNum).Scan(&emails).Error
	return
}
