// Package service
package service

import "github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"

type AnalyticsServiceInterface interface {
	Analytics(req *RequestAnalytics) *ViewResponse[ResponseAnalytics]
}

type RequestAnalytics struct {
	Identity
}

type ResponseAnalytics struct {
	AirlineName            string
	TopAgentsMonth         []*operation.AgentRank
	TopAgentsYear          []*operation.AgentRank
	TopCustomer            *operation.CustomerRank
	MonthlySales           []*operation.MonthlySales
	MaxMonthlyTickets      int64
	StatusCounts           *operation.StatusCounts
	TopDestinationsQuarter []*operation.DestinationRank
	TopDestinationsYear    []*operation.DestinationRank
}
