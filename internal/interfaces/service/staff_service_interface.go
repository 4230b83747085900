// Package service
package service

import "github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"

// StaffServiceInterface read-only pages shared by every staff role
type StaffServiceInterface interface {
	Dashboard(req *RequestDashboard) *ViewResponse[ResponseDashboard]
	Passengers(req *RequestPassengers) *ViewResponse[ResponsePassengers]
	CustomerFlights(req *RequestCustomerFlights) *ViewResponse[ResponseCustomerFlights]
}

type RequestFlightFilter struct {
	DateFrom    string `query:"date_from"`
	DateTo      string `query:"date_to"`
	Origin      string `query:"origin"`
	Destination string `query:"destination"`
	FlightNum   string `query:"flight_num"`
}

type RequestDashboard struct {
	Identity
	RequestFlightFilter
}

type ResponseDashboard struct {
	AirlineName   string
	FirstName     string
	LastName      string
	NamesLoaded   bool
	UpcomingCount int64
	Filter        *operation.FlightFilter
	Flights       []*operation.Flight
}

type RequestPassengers struct {
	Identity
	FlightNum string `query:"flight_num"`
	Date      string `query:"date"`
}

type ResponsePassengers struct {
	AirlineName string
	Filter      *operation.PassengerFilter
	Passengers  []*operation.PassengerRow
}

type RequestCustomerFlights struct {
	Identity
	CustomerEmail string `query:"customer_email"`
	DateFrom      string `query:"date_from"`
	DateTo        string `query:"date_to"`
}

type ResponseCustomerFlights struct {
	AirlineName string
	Filter      *operation.CustomerFilter
	Searched    bool
	Flights     []*operation.CustomerFlightRow
}
