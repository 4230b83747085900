// Package operation
package operation

type DatabaseOperations struct {
	staffOperation     StaffOperationInterface
	flightOperation    FlightOperationInterface
	airportOperation   AirportOperationInterface
	airplaneOperation  AirplaneOperationInterface
	agentOperation     AgentOperationInterface
	passengerOperation PassengerOperationInterface
	analyticsOperation AnalyticsOperationInterface
}

func NewDatabaseOperations(
	staffOperation StaffOperationInterface,
	flightOperation FlightOperationInterface,
	airportOperation AirportOperationInterface,
	airplaneOperation AirplaneOperationInterface,
	agentOperation AgentOperationInterface,
	passengerOperation PassengerOperationInterface,
	analyticsOperation AnalyticsOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		staffOperation:     staffOperation,
		flightOperation:    flightOperation,
		airportOperation:   airportOperation,
		airplaneOperation:  airplaneOperation,
		agentOperation:     agentOperation,
		passengerOperation: passengerOperation,
		analyticsOperation: analyticsOperation,
	}
}

func (db *DatabaseOperations) StaffOperation() StaffOperationInterface { return db.staffOperation }

func (db *DatabaseOperations) FlightOperation() FlightOperationInterface { return db.flightOperation }

func (db *DatabaseOperations) AirportOperation() AirportOperationInterface {
	return db.airportOperation
}

func (db *DatabaseOperations) AirplaneOperation() AirplaneOperationInterface {
	return db.airplaneOperation
}

func (db *DatabaseOperations) AgentOperation() AgentOperationInterface { return db.agentOperation }

func (db *DatabaseOperations) PassengerOperation() PassengerOperationInterface {
	return db.passengerOperation
}

func (db *DatabaseOperations) AnalyticsOperation() AnalyticsOperationInterface {
	return db.analyticsOperation
}
