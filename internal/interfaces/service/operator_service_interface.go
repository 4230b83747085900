// Package service
package service

import "github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"

const ActionUpdateStatus = "update_status"

type OperatorServiceInterface interface {
	OperatorHome(req *RequestOperatorHome) *ViewResponse[ResponseOperatorHome]
	UpdateStatus(req *RequestUpdateStatus) *ViewResponse[ResponseOperatorHome]
}

type RequestOperatorHome struct {
	Identity
	RequestFlightFilter
}

// RequestUpdateStatus keeps the list filter from the query string so the page renders the same list after the update.
type RequestUpdateStatus struct {
	Identity
	RequestFlightFilter
	Action          string `form:"action"`
	TargetFlightNum string `form:"flight_num"`
	Status          string `form:"status"`
}

type ResponseOperatorHome struct {
	AirlineName  string
	Filter       *operation.FlightFilter
	Flights      []*operation.Flight
	StatusLabels []string
}
