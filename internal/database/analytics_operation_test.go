package database

import (
	"testing"

	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAnalytics(t *testing.T) *AnalyticsOperation {
	t.Helper()
	db := newTestDB(t, "")
	seedAirports(t, db)
	seedFlight(t, db, "MU1", "PVG", "JFK", "2024-05-10 08:00:00", 1000, operation.StatusDelayed)
	seedFlight(t, db, "MU2", "PVG", "PEK", "2024-05-11 08:00:00", 200, operation.StatusInProgress)
	seedFlight(t, db, "MU3", "PEK", "PVG", "2024-05-12 08:00:00", 100, operation.StatusUpcoming)
	seedFlight(t, db, "MU4", "PEK", "PVG", "2022-01-01 08:00:00", 100, operation.StatusDelayed)
	require.NoError(t, db.Exec(`INSERT INTO customer (email, name) VALUES (?, ?), (?, ?), (?, ?)`,
		"a@example.com", "Amy", "b@example.com", "Ben", "c@example.com", "Cat").Error)
	require.NoError(t, db.Exec(`INSERT INTO booking_agent (email, password, booking_agent_id) VALUES (?, ?, ?), (?, ?, ?)`,
		"one@agents.com", "x", 1, "two@agents.com", "x", 2).Error)

	seedPurchase(t, db, 1, "MU1", "b@example.com", 1, "2024-05-05 10:00:00")
	seedPurchase(t, db, 2, "MU1", "a@example.com", 1, "2024-05-06 10:00:00")
	seedPurchase(t, db, 3, "MU2", "a@example.com", 2, "2024-05-07 10:00:00")
	seedPurchase(t, db, 4, "MU2", "b@example.com", nil, "2024-03-01 10:00:00")
	seedPurchase(t, db, 5, "MU3", "c@example.com", 2, "2023-01-01 10:00:00")
	return NewAnalyticsOperation(db, testTimeout)
}

func TestGetTopAgents(t *testing.T) {
	op := seedAnalytics(t)

	agents, err := op.GetTopAgents(testAirline, date("2024-04-15 00:00:00"), 5)
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "one@agents.com", agents[0].Email)
	assert.Equal(t, int64(2), agents[0].Tickets)
	assert.InDelta(t, 2000.0, agents[0].Sales, 0.001)
	assert.InDelta(t, 200.0, agents[0].Commission, 0.001)
	assert.Equal(t, int64(1), agents[1].Tickets)

	agents, err = op.GetTopAgents(testAirline, date("2024-04-15 00:00:00"), 1)
	require.NoError(t, err)
	assert.Len(t, agents, 1)

	agents, err = op.GetTopAgents("Other Air", date("2020-01-01 00:00:00"), 5)
	require.NoError(t, err)
	assert.Empty(t, agents)
}

func TestGetTopCustomer(t *testing.T) {
	op := seedAnalytics(t)

	customer, err := op.GetTopCustomer(testAirline, date("2023-06-01 00:00:00"))
	require.NoError(t, err)
	require.NotNil(t, customer)
	// a and b both hold two tickets, the email breaks the tie
	assert.Equal(t, "a@example.com", customer.Email)
	assert.Equal(t, int64(2), customer.Tickets)

	customer, err = op.GetTopCustomer(testAirline, date("2030-01-01 00:00:00"))
	require.NoError(t, err)
	assert.Nil(t, customer)
}

func TestGetMonthlyTicketSales(t *testing.T) {
	op := seedAnalytics(t)

	sales, err := op.GetMonthlyTicketSales(testAirline, date("2023-06-01 00:00:00"))
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "2024-03", sales[0].Month)
	assert.Equal(t, int64(1), sales[0].Tickets)
	assert.Equal(t, "2024-05", sales[1].Month)
	assert.Equal(t, int64(3), sales[1].Tickets)
}

func TestGetStatusCounts(t *testing.T) {
	op := seedAnalytics(t)

	counts, err := op.GetStatusCounts(testAirline, date("2023-06-01 00:00:00"), date("2024-06-01 00:00:00"))
	require.NoError(t, err)
	assert.Equal(t, &operation.StatusCounts{Delayed: 1, OnTime: 1, Other: 1}, counts)

	counts, err = op.GetStatusCounts("Other Air", date("2023-06-01 00:00:00"), date("2024-06-01 00:00:00"))
	require.NoError(t, err)
	assert.Equal(t, &operation.StatusCounts{}, counts)
}

func TestGetTopDestinations(t *testing.T) {
	op := seedAnalytics(t)

	destinations, err := op.GetTopDestinations(testAirline, date("2024-01-01 00:00:00"), 5)
	require.NoError(t, err)
	require.Len(t, destinations, 2)
	assert.Equal(t, "Beijing", destinations[0].City)
	assert.Equal(t, int64(2), destinations[0].Tickets)
	assert.Equal(t, "New York", destinations[1].City)
	assert.Equal(t, int64(2), destinations[1].Tickets)
}
