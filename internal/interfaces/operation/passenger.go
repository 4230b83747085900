// Package operation
package operation

// PassengerOperationInterface ticket holder lookups
type PassengerOperationInterface interface {
	// GetPassengers lists ticket holders on the airline's flights narrowed by flight number and departure date
	GetPassengers(airline string, filter *PassengerFilter) (passengers []*PassengerRow, err error)
	// GetCustomerFlights lists one customer's purchases on the airline within a purchase date range
	GetCustomerFlights(airline string, filter *CustomerFilter) (flights []*CustomerFlightRow, err error)
}
