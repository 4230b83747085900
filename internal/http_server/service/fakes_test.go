package service

import (
	"errors"
	"time"

	"github.com/half-nothing/airline-staff-portal/internal/base"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/config"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
)

const testAirline = "China Eastern"

var errBroken = errors.New("connection reset")

var testLogger = base.NewLogger()

func testValidator() *FieldValidator {
	return NewFieldValidator(&config.HttpServerLimit{FlightNumLenMax: 20, AirportNameLenMax: 50})
}

func fixedClock() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

type fakeStaffOperation struct {
	staff       map[string]*operation.Staff
	passwords   map[string]string
	permissions map[string][]string
	err         error
}

func newFakeStaffOperation() *fakeStaffOperation {
	return &fakeStaffOperation{
		staff: map[string]*operation.Staff{
			"alice": {Username: "alice", FirstName: "Alice", LastName: "Wu", AirlineName: testAirline},
		},
		passwords:   map[string]string{"alice": "secret"},
		permissions: map[string][]string{"alice": {operation.PermissionAdmin}},
	}
}

func (f *fakeStaffOperation) GetStaffByUsername(username string) (*operation.Staff, error) {
	if f.err != nil {
		return nil, f.err
	}
	staff, ok := f.staff[username]
	if !ok {
		return nil, operation.ErrStaffNotFound
	}
	return staff, nil
}

func (f *fakeStaffOperation) VerifyStaffPassword(staff *operation.Staff, password string) bool {
	return f.passwords[staff.Username] == password
}

func (f *fakeStaffOperation) HasPermission(username, permissionType string) (bool, error) {
	for _, permission := range f.permissions[username] {
		if permission == permissionType {
			return true, nil
		}
	}
	return false, nil
}

type statusUpdate struct {
	airline   string
	flightNum string
	status    operation.FlightStatus
}

type fakeFlightOperation struct {
	flights   []*operation.Flight
	upcoming  int64
	lastOrder operation.SortOrder
	created   []*operation.Flight
	updates   []statusUpdate
	customers []string
	readErr   error
	writeErr  error
}

func (f *fakeFlightOperation) GetFlights(_ string, _ *operation.FlightFilter, order operation.SortOrder) ([]*operation.Flight, error) {
	f.lastOrder = order
	return f.flights, f.readErr
}

func (f *fakeFlightOperation) CountUpcomingFlights(_ string, _ time.Time, _ time.Duration) (int64, error) {
	return f.upcoming, f.readErr
}

func (f *fakeFlightOperation) CreateFlight(flight *operation.Flight) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.created = append(f.created, flight)
	return nil
}

func (f *fakeFlightOperation) UpdateFlightStatus(airline, flightNum string, status operation.FlightStatus) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.updates = append(f.updates, statusUpdate{airline, flightNum, status})
	return nil
}

func (f *fakeFlightOperation) GetFlightCustomerEmails(_, _ string) ([]string, error) {
	return f.customers, nil
}

type fakeAirportOperation struct {
	airports []*operation.Airport
	err      error
}

func (f *fakeAirportOperation) GetAirports() ([]*operation.Airport, error) { return f.airports, nil }

func (f *fakeAirportOperation) AddAirport(airport *operation.Airport) error {
	if f.err != nil {
		return f.err
	}
	f.airports = append(f.airports, airport)
	return nil
}

type savedAirplane struct {
	airplane *operation.Airplane
	seats    operation.SeatCapacities
	column   string
}

type fakeAirplaneOperation struct {
	column      string
	probes      int
	saved       []savedAirplane
	listColumns []string
	err         error
}

func (f *fakeAirplaneOperation) SeatCapacityColumn() (string, error) {
	f.probes++
	return f.column, nil
}

func (f *fakeAirplaneOperation) GetAirplanes(_ string, column string) ([]*operation.AirplaneCapacity, error) {
	f.listColumns = append(f.listColumns, column)
	airplanes := make([]*operation.AirplaneCapacity, 0, len(f.saved))
	for _, saved := range f.saved {
		airplanes = append(airplanes, &operation.AirplaneCapacity{AirplaneId: saved.airplane.AirplaneId, Capacity: int64(saved.seats.Total())})
	}
	return airplanes, nil
}

func (f *fakeAirplaneOperation) SaveAirplane(airplane *operation.Airplane, seats operation.SeatCapacities, column string) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, savedAirplane{airplane, seats, column})
	return nil
}

type fakeAgentOperation struct {
	agents     map[string]*operation.BookingAgent
	authorized []string
}

func (f *fakeAgentOperation) GetAgentByEmail(email string) (*operation.BookingAgent, error) {
	agent, ok := f.agents[email]
	if !ok {
		return nil, operation.ErrAgentNotFound
	}
	return agent, nil
}

func (f *fakeAgentOperation) AuthorizeAgent(email, _ string) error {
	f.authorized = append(f.authorized, email)
	return nil
}

func (f *fakeAgentOperation) GetAuthorizedAgents(_ string) ([]*operation.BookingAgent, error) {
	agents := make([]*operation.BookingAgent, 0, len(f.authorized))
	for _, email := range f.authorized {
		agents = append(agents, f.agents[email])
	}
	return agents, nil
}

type fakePassengerOperation struct {
	passengerFilter *operation.PassengerFilter
	customerFilter  *operation.CustomerFilter
	customerCalls   int
}

func (f *fakePassengerOperation) GetPassengers(_ string, filter *operation.PassengerFilter) ([]*operation.PassengerRow, error) {
	f.passengerFilter = filter
	return []*operation.PassengerRow{{TicketId: 1, FlightNum: "MU1", CustomerEmail: "a@example.com", ClassId: operation.Economy}}, nil
}

func (f *fakePassengerOperation) GetCustomerFlights(_ string, filter *operation.CustomerFilter) ([]*operation.CustomerFlightRow, error) {
	f.customerCalls++
	f.customerFilter = filter
	return []*operation.CustomerFlightRow{{TicketId: 1, FlightNum: "MU1"}}, nil
}

type fakeAnalyticsOperation struct {
	sales     []*operation.MonthlySales
	failOn    string
	agentFrom []time.Time
}

func (f *fakeAnalyticsOperation) fail(name string) error {
	if f.failOn == name {
		return errBroken
	}
	return nil
}

func (f *fakeAnalyticsOperation) GetTopAgents(_ string, since time.Time, _ int) ([]*operation.AgentRank, error) {
	f.agentFrom = append(f.agentFrom, since)
	return []*operation.AgentRank{{Email: "agent@example.com", Tickets: 3, Sales: 1000, Commission: 100}}, f.fail("agents")
}

func (f *fakeAnalyticsOperation) GetTopCustomer(_ string, _ time.Time) (*operation.CustomerRank, error) {
	return nil, f.fail("customer")
}

func (f *fakeAnalyticsOperation) GetMonthlyTicketSales(_ string, _ time.Time) ([]*operation.MonthlySales, error) {
	return f.sales, f.fail("sales")
}

func (f *fakeAnalyticsOperation) GetStatusCounts(_ string, _, _ time.Time) (*operation.StatusCounts, error) {
	return &operation.StatusCounts{Delayed: 1, OnTime: 2, Other: 3}, f.fail("status")
}

func (f *fakeAnalyticsOperation) GetTopDestinations(_ string, _ time.Time, _ int) ([]*operation.DestinationRank, error) {
	return []*operation.DestinationRank{{City: "Shanghai", Tickets: 4}}, f.fail("destinations")
}

type fakeObserver struct {
	results map[string][]bool
}

func (f *fakeObserver) ObserveMutation(action string, err error) {
	if f.results == nil {
		f.results = make(map[string][]bool)
	}
	f.results[action] = append(f.results[action], err == nil)
}

type fakeEmailService struct {
	enabled bool
	notices []*DelayNotice
	err     error
}

func (f *fakeEmailService) Enabled() bool { return f.enabled }

func (f *fakeEmailService) SendDelayNotification(notice *DelayNotice) error {
	f.notices = append(f.notices, notice)
	return f.err
}
