// Package operation
package operation

// AirportOperationInterface airport reference data
type AirportOperationInterface interface {
	// GetAirports lists all airports ordered by name
	GetAirports() (airports []*Airport, err error)
	// AddAirport inserts one airport
	AddAirport(airport *Airport) (err error)
}
