// Package operation
package operation

import "time"

// CommissionRate is the flat estimate applied to an agent's ticket sales.
const CommissionRate = 0.10

// AnalyticsOperationInterface read-only aggregates over one airline
type AnalyticsOperationInterface interface {
	// GetTopAgents ranks booking agents by tickets sold since the given time
	GetTopAgents(airline string, since time.Time, limit int) (agents []*AgentRank, err error)
	// GetTopCustomer returns the customer with most tickets since the given time, nil when there were no sales
	GetTopCustomer(airline string, since time.Time) (customer *CustomerRank, err error)
	// GetMonthlyTicketSales counts tickets per purchase month (YYYY-MM) since the given time
	GetMonthlyTicketSales(airline string, since time.Time) (sales []*MonthlySales, err error)
	// GetStatusCounts counts delayed, on-time and other flights departing in [since, until]
	GetStatusCounts(airline string, since, until time.Time) (counts *StatusCounts, err error)
	// GetTopDestinations ranks arrival cities by tickets purchased since the given time
	GetTopDestinations(airline string, since time.Time, limit int) (destinations []*DestinationRank, err error)
}
