// Package service
package service

import (
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"strings"
	"time"
)

const UpcomingWindow = 30 * 24 * time.Hour

type StaffService struct {
	logger             log.LoggerInterface
	clock              func() time.Time
	staffOperation     operation.StaffOperationInterface
	flightOperation    operation.FlightOperationInterface
	passengerOperation operation.PassengerOperationInterface
}

func NewStaffService(
	logger log.LoggerInterface,
	clock func() time.Time,
	staffOperation operation.StaffOperationInterface,
	flightOperation operation.FlightOperationInterface,
	passengerOperation operation.PassengerOperationInterface,
) *StaffService {
	return &StaffService{
		logger:             logger,
		clock:              clock,
		staffOperation:     staffOperation,
		flightOperation:    flightOperation,
		passengerOperation: passengerOperation,
	}
}

// Dashboard shows the airline's flights. Names already cached in the session are reused,
// otherwise they come from the staff record and NamesLoaded tells the caller to cache them.
func (staffService *StaffService) Dashboard(req *RequestDashboard) *ViewResponse[ResponseDashboard] {
	staff, res := loadStaff[ResponseDashboard](staffService.logger, staffService.staffOperation, req.Username)
	if res != nil {
		return res
	}

	filter, messages := newFlightFilter(&req.RequestFlightFilter)

	upcoming, res := query[ResponseDashboard](staffService.logger, func() (int64, error) {
		return staffService.flightOperation.CountUpcomingFlights(staff.AirlineName, staffService.clock().UTC(), UpcomingWindow)
	})
	if res != nil {
		return res
	}

	flights, res := query[ResponseDashboard](staffService.logger, func() ([]*operation.Flight, error) {
		return staffService.flightOperation.GetFlights(staff.AirlineName, filter, operation.Ascending)
	})
	if res != nil {
		return res
	}

	data := &ResponseDashboard{
		AirlineName:   staff.AirlineName,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		UpcomingCount: upcoming,
		Filter:        filter,
		Flights:       flights,
	}
	if !req.HasName() {
		data.FirstName = staff.FirstName
		data.LastName = staff.LastName
		data.NamesLoaded = true
	}
	return NewViewResponse(&SuccessRender, "dashboard.html", data, messages...)
}

func (staffService *StaffService) Passengers(req *RequestPassengers) *ViewResponse[ResponsePassengers] {
	staff, res := loadStaff[ResponsePassengers](staffService.logger, staffService.staffOperation, req.Username)
	if res != nil {
		return res
	}

	filter := &operation.PassengerFilter{FlightNum: strings.TrimSpace(req.FlightNum), Date: req.Date}
	messages := checkDate("date", &filter.Date, nil)

	passengers, res := query[ResponsePassengers](staffService.logger, func() ([]*operation.PassengerRow, error) {
		return staffService.passengerOperation.GetPassengers(staff.AirlineName, filter)
	})
	if res != nil {
		return res
	}

	return NewViewResponse(&SuccessRender, "passengers.html", &ResponsePassengers{
		AirlineName: staff.AirlineName,
		Filter:      filter,
		Passengers:  passengers,
	}, messages...)
}

// CustomerFlights only queries once a customer email is given.
func (staffService *StaffService) CustomerFlights(req *RequestCustomerFlights) *ViewResponse[ResponseCustomerFlights] {
	staff, res := loadStaff[ResponseCustomerFlights](staffService.logger, staffService.staffOperation, req.Username)
	if res != nil {
		return res
	}

	filter := &operation.CustomerFilter{
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		DateFrom:      req.DateFrom,
		DateTo:        req.DateTo,
	}
	messages := checkDate("date_from", &filter.DateFrom, nil)
	messages = checkDate("date_to", &filter.DateTo, messages)

	data := &ResponseCustomerFlights{
		AirlineName: staff.AirlineName,
		Filter:      filter,
		Flights:     make([]*operation.CustomerFlightRow, 0),
	}
	if filter.CustomerEmail == "" {
		return NewViewResponse(&SuccessRender, "customer_flights.html", data, messages...)
	}

	flights, res := query[ResponseCustomerFlights](staffService.logger, func() ([]*operation.CustomerFlightRow, error) {
		return staffService.passengerOperation.GetCustomerFlights(staff.AirlineName, filter)
	})
	if res != nil {
		return res
	}
	data.Searched = true
	data.Flights = flights
	return NewViewResponse(&SuccessRender, "customer_flights.html", data, messages...)
}
