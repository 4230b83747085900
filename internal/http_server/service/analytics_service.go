// Package service
package service

import (
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/half-nothing/airline-staff-portal/internal/utils"
	"time"
)

const (
	TopAgentLimit       = 5
	TopDestinationLimit = 5
	HistogramMonths     = 12
)

type AnalyticsService struct {
	logger             log.LoggerInterface
	clock              func() time.Time
	staffOperation     operation.StaffOperationInterface
	analyticsOperation operation.AnalyticsOperationInterface
}

func NewAnalyticsService(
	logger log.LoggerInterface,
	clock func() time.Time,
	staffOperation operation.StaffOperationInterface,
	analyticsOperation operation.AnalyticsOperationInterface,
) *AnalyticsService {
	return &AnalyticsService{
		logger:             logger,
		clock:              clock,
		staffOperation:     staffOperation,
		analyticsOperation: analyticsOperation,
	}
}

// Analytics runs every report for the airline; the first failing one fails the page.
func (analyticsService *AnalyticsService) Analytics(req *RequestAnalytics) *ViewResponse[ResponseAnalytics] {
	staff, res := loadStaff[ResponseAnalytics](analyticsService.logger, analyticsService.staffOperation, req.Username)
	if res != nil {
		return res
	}

	now := analyticsService.clock().UTC()
	monthAgo := now.AddDate(0, -1, 0)
	quarterAgo := now.AddDate(0, -3, 0)
	yearAgo := now.AddDate(-1, 0, 0)
	histogramStart := time.Date(now.Year(), now.Month()-HistogramMonths+1, 1, 0, 0, 0, 0, time.UTC)

	op := analyticsService.analyticsOperation
	logger := analyticsService.logger
	data := &ResponseAnalytics{AirlineName: staff.AirlineName}

	if data.TopAgentsMonth, res = query[ResponseAnalytics](logger, func() ([]*operation.AgentRank, error) {
		return op.GetTopAgents(staff.AirlineName, monthAgo, TopAgentLimit)
	}); res != nil {
		return res
	}
	if data.TopAgentsYear, res = query[ResponseAnalytics](logger, func() ([]*operation.AgentRank, error) {
		return op.GetTopAgents(staff.AirlineName, yearAgo, TopAgentLimit)
	}); res != nil {
		return res
	}
	if data.TopCustomer, res = query[ResponseAnalytics](logger, func() (*operation.CustomerRank, error) {
		return op.GetTopCustomer(staff.AirlineName, yearAgo)
	}); res != nil {
		return res
	}
	sales, res := query[ResponseAnalytics](logger, func() ([]*operation.MonthlySales, error) {
		return op.GetMonthlyTicketSales(staff.AirlineName, histogramStart)
	})
	if res != nil {
		return res
	}
	data.MonthlySales, data.MaxMonthlyTickets = fillMonths(utils.MonthKeys(now, HistogramMonths), sales)
	if data.StatusCounts, res = query[ResponseAnalytics](logger, func() (*operation.StatusCounts, error) {
		return op.GetStatusCounts(staff.AirlineName, yearAgo, now)
	}); res != nil {
		return res
	}
	if data.TopDestinationsQuarter, res = query[ResponseAnalytics](logger, func() ([]*operation.DestinationRank, error) {
		return op.GetTopDestinations(staff.AirlineName, quarterAgo, TopDestinationLimit)
	}); res != nil {
		return res
	}
	if data.TopDestinationsYear, res = query[ResponseAnalytics](logger, func() ([]*operation.DestinationRank, error) {
		return op.GetTopDestinations(staff.AirlineName, yearAgo, TopDestinationLimit)
	}); res != nil {
		return res
	}

	return NewViewResponse(&SuccessRender, "analytics.html", data)
}

// fillMonths lays the sales onto keys, months without sales count zero.
func fillMonths(keys []string, sales []*operation.MonthlySales) ([]*operation.MonthlySales, int64) {
	counts := make(map[string]int64, len(sales))
	for _, sale := range sales {
		counts[sale.Month] = sale.Tickets
	}
	filled := make([]*operation.MonthlySales, 0, len(keys))
	var maxTickets int64
	for _, key := range keys {
		tickets := counts[key]
		filled = append(filled, &operation.MonthlySales{Month: key, Tickets: tickets})
		maxTickets = max(maxTickets, tickets)
	}
	return filled, maxTickets
}
