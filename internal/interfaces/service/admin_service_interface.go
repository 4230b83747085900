// Package service
package service

import "github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"

type AdminAction string

const (
	ActionAddAirport  AdminAction = "add_airport"
	ActionAddAirplane AdminAction = "add_airplane"
	ActionAddAgent    AdminAction = "add_agent"
	ActionAddFlight   AdminAction = "add_flight"
)

type AdminServiceInterface interface {
	AdminHome(req *RequestAdminHome) *ViewResponse[ResponseAdminHome]
	AdminAction(req *RequestAdminAction) *ViewResponse[ResponseAdminHome]
}

type RequestAdminHome struct {
	Identity
}

// RequestAdminAction carries the fields of every admin form, Action selects which ones are read.
type RequestAdminAction struct {
	Identity
	Action           string `form:"action"`
	AirportName      string `form:"airport_name"`
	AirportCity      string `form:"airport_city"`
	AirplaneId       string `form:"airplane_id"`
	EconomySeats     string `form:"economy_seats"`
	BusinessSeats    string `form:"business_seats"`
	FirstSeats       string `form:"first_seats"`
	AgentEmail       string `form:"agent_email"`
	FlightNum        string `form:"flight_num"`
	DepartureAirport string `form:"departure_airport"`
	DepartureTime    string `form:"departure_time"`
	ArrivalAirport   string `form:"arrival_airport"`
	ArrivalTime      string `form:"arrival_time"`
	Price            string `form:"price"`
	Status           string `form:"status"`
}

type ResponseAdminHome struct {
	AirlineName    string
	CapacityColumn string
	Airports       []*operation.Airport
	Airplanes      []*operation.AirplaneCapacity
	Agents         []*operation.BookingAgent
	Flights        []*operation.Flight
	StatusLabels   []string
}
