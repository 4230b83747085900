package service

import (
	"testing"

	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStaffService() (*StaffService, *fakeStaffOperation, *fakeFlightOperation, *fakePassengerOperation) {
	staffOperation := newFakeStaffOperation()
	flightOperation := &fakeFlightOperation{
		upcoming: 2,
		flights:  []*operation.Flight{{AirlineName: testAirline, FlightNum: "MU1"}},
	}
	passengerOperation := &fakePassengerOperation{}
	return NewStaffService(testLogger, fixedClock, staffOperation, flightOperation, passengerOperation),
		staffOperation, flightOperation, passengerOperation
}

func TestDashboardLoadsNamesOnce(t *testing.T) {
	staffService, _, flightOperation, _ := newTestStaffService()

	res := staffService.Dashboard(&RequestDashboard{Identity: Identity{Username: "alice", Role: operation.RoleStaff}})
	require.Equal(t, "dashboard.html", res.Template)
	assert.True(t, res.Data.NamesLoaded)
	assert.Equal(t, "Alice", res.Data.FirstName)
	assert.Equal(t, int64(2), res.Data.UpcomingCount)
	assert.Equal(t, testAirline, res.Data.AirlineName)
	assert.Equal(t, operation.Ascending, flightOperation.lastOrder)

	res = staffService.Dashboard(&RequestDashboard{Identity: Identity{Username: "alice", Role: operation.RoleStaff, FirstName: "Cached", LastName: "Name"}})
	assert.False(t, res.Data.NamesLoaded)
	assert.Equal(t, "Cached", res.Data.FirstName)
}

func TestDashboardIgnoresBadDates(t *testing.T) {
	staffService, _, _, _ := newTestStaffService()

	res := staffService.Dashboard(&RequestDashboard{
		Identity:            Identity{Username: "alice", Role: operation.RoleStaff},
		RequestFlightFilter: RequestFlightFilter{DateFrom: "yesterday", DateTo: "2024-01-31"},
	})
	require.Equal(t, "dashboard.html", res.Template)
	assert.Equal(t, "", res.Data.Filter.DateFrom)
	assert.Equal(t, "2024-01-31", res.Data.Filter.DateTo)
	assert.Equal(t, []string{`Ignored date_from "yesterday", expected YYYY-MM-DD.`}, res.Messages)
}

func TestDashboardMissingStaffRedirectsToLogin(t *testing.T) {
	staffService, _, _, _ := newTestStaffService()

	res := staffService.Dashboard(&RequestDashboard{Identity: Identity{Username: "ghost", Role: operation.RoleStaff}})
	assert.Equal(t, LoginPath, res.RedirectTo)
	assert.Equal(t, []string{ErrStaffNotFound.Description}, res.Messages)
}

func TestDashboardReadFailureIsServerError(t *testing.T) {
	staffService, _, flightOperation, _ := newTestStaffService()
	flightOperation.readErr = errBroken

	res := staffService.Dashboard(&RequestDashboard{Identity: Identity{Username: "alice", Role: operation.RoleStaff}})
	assert.Equal(t, 500, res.HttpCode)
	assert.Equal(t, "", res.Template)
	assert.Equal(t, &ErrDatabaseFail, res.Status)
}

func TestPassengers(t *testing.T) {
	staffService, _, _, passengerOperation := newTestStaffService()

	res := staffService.Passengers(&RequestPassengers{Identity: Identity{Username: "alice"}, FlightNum: " MU1 ", Date: "2024-05-01"})
	require.Equal(t, "passengers.html", res.Template)
	assert.Len(t, res.Data.Passengers, 1)
	assert.Equal(t, &operation.PassengerFilter{FlightNum: "MU1", Date: "2024-05-01"}, passengerOperation.passengerFilter)
}

func TestCustomerFlightsNeedsEmail(t *testing.T) {
	staffService, _, _, passengerOperation := newTestStaffService()

	res := staffService.CustomerFlights(&RequestCustomerFlights{Identity: Identity{Username: "alice"}})
	require.Equal(t, "customer_flights.html", res.Template)
	assert.False(t, res.Data.Searched)
	assert.Empty(t, res.Data.Flights)
	assert.Equal(t, 0, passengerOperation.customerCalls)

	res = staffService.CustomerFlights(&RequestCustomerFlights{Identity: Identity{Username: "alice"}, CustomerEmail: "a@example.com", DateFrom: "2024-01-01"})
	assert.True(t, res.Data.Searched)
	assert.Len(t, res.Data.Flights, 1)
	assert.Equal(t, 1, passengerOperation.customerCalls)
	assert.Equal(t, "2024-01-01", passengerOperation.customerFilter.DateFrom)
}
