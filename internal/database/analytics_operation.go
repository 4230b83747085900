// Package database
package database

import (
	"context"
	"fmt"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type AnalyticsOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAnalyticsOperation(db *gorm.DB, queryTimeout time.Duration) *AnalyticsOperation {
	return &AnalyticsOperation{db: db, queryTimeout: queryTimeout}
}

// monthExpression formats a timestamp column as YYYY-MM in the connected dialect.
func monthExpression(db *gorm.DB, column string) string {
	switch db.Dialector.Name() {
	case "mysql":
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m')", column)
	case "postgres":
		return fmt.Sprintf("to_char(%s, 'YYYY-MM')", column)
	default:
		return fmt.Sprintf("strftime('%%Y-%%m', %s)", column)
	}
}

func (analyticsOperation *AnalyticsOperation) GetTopAgents(airline string, since time.Time, limit int) (agents []*AgentRank, err error) {
	agents = make([]*AgentRank, 0)
	ctx, cancel := context.WithTimeout(context.Background(), analyticsOperation.queryTimeout)
	defer cancel()
	err = analyticsOperation.db.WithContext(ctx).Raw(`
SELECT b.email, b.booking_agent_id, COUNT(*) AS tickets, COALESCE(SUM(f.price), 0) AS sales
FROM purchases p
JOIN booking_agent b ON b.booking_agent_id = p.booking_agent_id
JOIN ticket t ON t.ticket_id = p.ticket_id
JOIN flight f ON f.airline_name = t.airline_name AND f.flight_num = t.flight_num
WHERE t.airline_name = ? AND p.purchase_date >= ?
GROUP BY b.email, b.booking_agent_id
ORDER BY tickets DESC, b.email ASC
LIMIT ?`, airline, since, limit).Scan(&agents).Error
	if err != nil {
		return nil, err
	}
	for _, agent := range agents {
		agent.Commission = agent.Sales * CommissionRate
	}
	return
}

func (analyticsOperation *AnalyticsOperation) GetTopCustomer(airline string, since time.Time) (customer *CustomerRank, err error) {
	customer = &CustomerRank{}
	ctx, cancel := context.WithTimeout(context.Background(), analyticsOperation.queryTimeout)
	defer cancel()
	result := analyticsOperation.db.WithContext(ctx).Raw(`
SELECT c.email, c.name, COUNT(*) AS tickets
FROM purchases p
JOIN customer c ON c.email = p.customer_email
JOIN ticket t ON t.ticket_id = p.ticket_id
WHERE t.airline_name = ? AND p.purchase_date >= ?
GROUP BY c.email, c.name
ORDER BY tickets DESC, c.email ASC
LIMIT 1`, airline, since).Scan(customer)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return
}

func (analyticsOperation *AnalyticsOperation) GetMonthlyTicketSales(airline string, since time.Time) (sales []*MonthlySales, err error) {
	sales = make([]*MonthlySales, 0)
	ctx, cancel := context.WithTimeout(context.Background(), analyticsOperation.queryTimeout)
	defer cancel()
	db := analyticsOperation.db.WithContext(ctx)
	err = db.Raw(fmt.Sprintf(`
SELECT %s AS month, COUNT(*) AS tickets
FROM purchases p
JOIN ticket t ON t.ticket_id = p.ticket_id
WHERE t.airline_name = ? AND p.purchase_date >= ?
GROUP BY month
ORDER BY month`, monthExpression(db, "p.purchase_date")), airline, since).Scan(&sales).Error
	return
}

func (analyticsOperation *AnalyticsOperation) GetStatusCounts(airline string, since, until time.Time) (counts *StatusCounts, err error) {
	counts = &StatusCounts{}
	ctx, cancel := context.WithTimeout(context.Background(), analyticsOperation.queryTimeout)
	defer cancel()
	err = analyticsOperation.db.WithContext(ctx).Raw(`
SELECT COALESCE(SUM(CASE WHEN f.status = ? THEN 1 ELSE 0 END), 0) AS delayed_count,
       COALESCE(SUM(CASE WHEN f.status = ? THEN 1 ELSE 0 END), 0) AS on_time_count,
       COALESCE(SUM(CASE WHEN f.status NOT IN (?, ?) THEN 1 ELSE 0 END), 0) AS other_count
FROM flight f
WHERE f.airline_name = ? AND f.departure_time BETWEEN ? AND ?`,
		string(StatusDelayed), string(StatusInProgress),
		string(StatusDelayed), string(StatusInProgress),
		airline, since, until).Scan(counts).Error
	return
}

func (analyticsOperation *AnalyticsOperation) GetTopDestinations(airline string, since time.Time, limit int) (destinations []*DestinationRank, err error) {
	destinations = make([]*DestinationRank, 0)
	ctx, cancel := context.WithTimeout(context.Background(), analyticsOperation.queryTimeout)
	defer cancel()
	err = analyticsOperation.db.WithContext(ctx).Raw(`
SELECT a.airport_city AS city, COUNT(*) AS tickets
FROM purchases p
JOIN ticket t ON t.ticket_id = p.ticket_id
JOIN flight f ON f.airline_name = t.airline_name AND f.flight_num = t.flight_num
JOIN airport a ON a.airport_name = f.arrival_airport
WHERE t.airline_name = ? AND p.purchase_date >= ?
GROUP BY a.airport_city
ORDER BY tickets DESC, city ASC
LIMIT ?`, airline, since, limit).Scan(&destinations).Error
	return
}
