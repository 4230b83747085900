// Package operation
package operation

// SeatCapacityColumns are the airplane columns known to hold total capacity, in probe order.
var SeatCapacityColumns = []string{"seats", "capacity", "num_seats"}

// AirplaneOperationInterface airplanes and their seat classes
type AirplaneOperationInterface interface {
	// SeatCapacityColumn probes the live schema for a capacity column on airplane, "" when none exists
	SeatCapacityColumn() (column string, err error)
	// GetAirplanes lists the airline's airplanes with capacity read from column, or summed from seat_class when column is ""
	GetAirplanes(airline string, column string) (airplanes []*AirplaneCapacity, err error)
	// SaveAirplane upserts the airplane and its three seat classes in one transaction
	SaveAirplane(airplane *Airplane, seats SeatCapacities, column string) (err error)
}
