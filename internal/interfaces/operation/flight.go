// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrFlightNotFound no flight matched airline and flight number
	ErrFlightNotFound = errors.New("flight does not exist")
)

// FlightOperationInterface flight schedule reads and writes, always scoped to one airline
type FlightOperationInterface interface {
	// GetFlights lists flights of airline narrowed by filter and ordered by departure time
	GetFlights(airline string, filter *FlightFilter, order SortOrder) (flights []*Flight, err error)
	// CountUpcomingFlights counts flights departing in [from, from+window]
	CountUpcomingFlights(airline string, from time.Time, window time.Duration) (count int64, err error)
	// CreateFlight inserts the flight row, flight.Status must already be normalized
	CreateFlight(flight *Flight) (err error)
	// UpdateFlightStatus updates exactly one flight, ErrFlightNotFound when nothing matched
	UpdateFlightStatus(airline, flightNum string, status FlightStatus) (err error)
	// GetFlightCustomerEmails lists the distinct customers holding tickets on the flight
	GetFlightCustomerEmails(airline, flightNum string) (emails []string, err error)
}
