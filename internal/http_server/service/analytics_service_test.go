package service

import (
	"testing"
	"time"

	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillMonths(t *testing.T) {
	keys := []string{"2024-01", "2024-02", "2024-03"}
	filled, maxTickets := fillMonths(keys, []*operation.MonthlySales{
		{Month: "2024-03", Tickets: 4},
		{Month: "2024-01", Tickets: 9},
	})
	require.Len(t, filled, 3)
	assert.Equal(t, int64(9), filled[0].Tickets)
	assert.Equal(t, "2024-02", filled[1].Month)
	assert.Equal(t, int64(0), filled[1].Tickets)
	assert.Equal(t, int64(4), filled[2].Tickets)
	assert.Equal(t, int64(9), maxTickets)
}

func TestAnalytics(t *testing.T) {
	analyticsOperation := &fakeAnalyticsOperation{sales: []*operation.MonthlySales{{Month: "2024-06", Tickets: 5}}}
	analyticsService := NewAnalyticsService(testLogger, fixedClock, newFakeStaffOperation(), analyticsOperation)

	res := analyticsService.Analytics(&RequestAnalytics{Identity: Identity{Username: "alice"}})
	require.Equal(t, "analytics.html", res.Template)
	data := res.Data
	assert.Equal(t, testAirline, data.AirlineName)
	require.Len(t, data.MonthlySales, HistogramMonths)
	assert.Equal(t, "2023-07", data.MonthlySales[0].Month)
	assert.Equal(t, "2024-06", data.MonthlySales[HistogramMonths-1].Month)
	assert.Equal(t, int64(5), data.MaxMonthlyTickets)
	assert.Nil(t, data.TopCustomer)
	assert.Equal(t, int64(2), data.StatusCounts.OnTime)
	require.Len(t, analyticsOperation.agentFrom, 2)
	assert.Equal(t, time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC), analyticsOperation.agentFrom[0])
	assert.Equal(t, time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC), analyticsOperation.agentFrom[1])
}

func TestAnalyticsFailsWhole(t *testing.T) {
	for _, failOn := range []string{"agents", "customer", "sales", "status", "destinations"} {
		t.Run(failOn, func(t *testing.T) {
			analyticsService := NewAnalyticsService(testLogger, fixedClock, newFakeStaffOperation(), &fakeAnalyticsOperation{failOn: failOn})
			res := analyticsService.Analytics(&RequestAnalytics{Identity: Identity{Username: "alice"}})
			assert.Equal(t, 500, res.HttpCode)
			assert.Nil(t, res.Data)
		})
	}
}
