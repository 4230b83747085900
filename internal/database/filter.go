// Package database
package database

import (
	"fmt"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"github.com/half-nothing/airline-staff-portal/internal/utils"
	"strings"
)

// QueryBuilder appends AND-ed predicates to a base query whose WHERE clause is already open.
// Predicates and their arguments keep the order they were added in.
type QueryBuilder struct {
	base       string
	baseArgs   []interface{}
	predicates []string
	args       []interface{}
	orderBy    string
}

func NewQueryBuilder(base string, args ...interface{}) *QueryBuilder {
	return &QueryBuilder{base: strings.TrimSpace(base), baseArgs: args}
}

func (builder *QueryBuilder) Where(predicate string, args ...interface{}) *QueryBuilder {
	builder.predicates = append(builder.predicates, predicate)
	builder.args = append(builder.args, args...)
	return builder
}

func (builder *QueryBuilder) OrderBy(orderBy string) *QueryBuilder {
	builder.orderBy = orderBy
	return builder
}

func (builder *QueryBuilder) Build() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(builder.base)
	for _, predicate := range builder.predicates {
		sb.WriteString(" AND ")
		sb.WriteString(predicate)
	}
	if builder.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(builder.orderBy)
	}
	args := make([]interface{}, 0, len(builder.baseArgs)+len(builder.args))
	args = append(args, builder.baseArgs...)
	args = append(args, builder.args...)
	return sb.String(), args
}

// whereDateFrom and whereDateTo widen date-only values to the whole day.
func (builder *QueryBuilder) whereDateFrom(column, value string) error {
	if value == "" {
		return nil
	}
	bound, err := utils.ParseDateBound(value, false)
	if err != nil {
		return fmt.Errorf("date_from %q: %w", value, err)
	}
	builder.Where(column+" >= ?", bound)
	return nil
}

func (builder *QueryBuilder) whereDateTo(column, value string) error {
	if value == "" {
		return nil
	}
	bound, err := utils.ParseDateBound(value, true)
	if err != nil {
		return fmt.Errorf("date_to %q: %w", value, err)
	}
	builder.Where(column+" <= ?", bound)
	return nil
}

func (builder *QueryBuilder) whereEqual(column, value string) {
	if value == "" {
		return
	}
	builder.Where(column+" = ?", value)
}

const flightBaseQuery = `
SELECT f.airline_name, f.flight_num, f.departure_airport, f.departure_time,
       f.arrival_airport, f.arrival_time, f.price, f.status, f.airplane_id
FROM flight f
LEFT JOIN airport dep ON dep.airport_name = f.departure_airport
LEFT JOIN airport arr ON arr.airport_name = f.arrival_airport
WHERE f.airline_name = ?`

// BuildFlightQuery filters in the order date_from, date_to, origin, destination, flight_num.
// Origin and destination match either the airport name or its city.
func BuildFlightQuery(airline string, filter *operation.FlightFilter, order operation.SortOrder) (*QueryBuilder, error) {
	if order != operation.Descending {
		order = operation.Ascending
	}
	builder := NewQueryBuilder(flightBaseQuery, airline)
	if filter == nil {
		filter = &operation.FlightFilter{}
	}
	if err := builder.whereDateFrom("f.departure_time", filter.DateFrom); err != nil {
		return nil, err
	}
	if err := builder.whereDateTo("f.departure_time", filter.DateTo); err != nil {
		return nil, err
	}
	if filter.Origin != "" {
		builder.Where("? IN (f.departure_airport, dep.airport_city)", filter.Origin)
	}
	if filter.Destination != "" {
		builder.Where("? IN (f.arrival_airport, arr.airport_city)", filter.Destination)
	}
	builder.whereEqual("f.flight_num", filter.FlightNum)
	builder.OrderBy(fmt.Sprintf("f.departure_time %s, f.flight_num %s", order, order))
	return builder, nil
}

const passengerBaseQuery = `
SELECT t.ticket_id, f.flight_num, f.departure_time, c.email AS customer_email,
       c.name AS customer_name, t.class_id, p.purchase_date
FROM purchases p
JOIN ticket t ON t.ticket_id = p.ticket_id
JOIN flight f ON f.airline_name = t.airline_name AND f.flight_num = t.flight_num
JOIN customer c ON c.email = p.customer_email
WHERE f.airline_name = ?`

// BuildPassengerQuery narrows by flight number, then by departure day.
func BuildPassengerQuery(airline string, filter *operation.PassengerFilter) (*QueryBuilder, error) {
	builder := NewQueryBuilder(passengerBaseQuery, airline)
	if filter == nil {
		filter = &operation.PassengerFilter{}
	}
	builder.whereEqual("f.flight_num", filter.FlightNum)
	if filter.Date != "" {
		from, err := utils.ParseDateBound(filter.Date, false)
		if err != nil {
			return nil, fmt.Errorf("date %q: %w", filter.Date, err)
		}
		to, _ := utils.ParseDateBound(filter.Date, true)
		builder.Where("f.departure_time BETWEEN ? AND ?", from, to)
	}
	builder.OrderBy("f.departure_time ASC, f.flight_num ASC, c.email ASC")
	return builder, nil
}

const customerFlightBaseQuery = `
SELECT t.ticket_id, f.flight_num, f.departure_airport, f.arrival_airport,
       f.departure_time, f.arrival_time, f.status, f.price, p.purchase_date
FROM purchases p
JOIN ticket t ON t.ticket_id = p.ticket_id
JOIN flight f ON f.airline_name = t.airline_name AND f.flight_num = t.flight_num
WHERE f.airline_name = ?`

// BuildCustomerFlightQuery narrows by customer email, then by purchase date range.
func BuildCustomerFlightQuery(airline string, filter *operation.CustomerFilter) (*QueryBuilder, error) {
	builder := NewQueryBuilder(customerFlightBaseQuery, airline)
	if filter == nil {
		filter = &operation.CustomerFilter{}
	}
	builder.whereEqual("p.customer_email", filter.CustomerEmail)
	if err := builder.whereDateFrom("p.purchase_date", filter.DateFrom); err != nil {
		return nil, err
	}
	if err := builder.whereDateTo("p.purchase_date", filter.DateTo); err != nil {
		return nil, err
	}
	builder.OrderBy("p.purchase_date DESC, t.ticket_id ASC")
	return builder, nil
}
