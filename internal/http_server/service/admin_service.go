// Package service
package service

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/half-nothing/airline-staff-portal/internal/utils"
	"strings"
)

type AdminService struct {
	logger            log.LoggerInterface
	validator         *FieldValidator
	observer          MutationObserver
	staffOperation    operation.StaffOperationInterface
	airportOperation  operation.AirportOperationInterface
	airplaneOperation operation.AirplaneOperationInterface
	agentOperation    operation.AgentOperationInterface
	flightOperation   operation.FlightOperationInterface
}

func NewAdminService(
	logger log.LoggerInterface,
	validator *FieldValidator,
	observer MutationObserver,
	operations *operation.DatabaseOperations,
) *AdminService {
	return &AdminService{
		logger:            logger,
		validator:         validator,
		observer:          observer,
		staffOperation:    operations.StaffOperation(),
		airportOperation:  operations.AirportOperation(),
		airplaneOperation: operations.AirplaneOperation(),
		agentOperation:    operations.AgentOperation(),
		flightOperation:   operations.FlightOperation(),
	}
}

func (adminService *AdminService) AdminHome(req *RequestAdminHome) *ViewResponse[ResponseAdminHome] {
	staff, res := loadStaff[ResponseAdminHome](adminService.logger, adminService.staffOperation, req.Username)
	if res != nil {
		return res
	}
	column, res := query[ResponseAdminHome](adminService.logger, adminService.airplaneOperation.SeatCapacityColumn)
	if res != nil {
		return res
	}
	return adminService.render(staff, column, nil)
}

// AdminAction runs one mutation selected by req.Action and renders the panel with fresh data.
// Validation failures never reach the database; database failures are reported with their text.
func (adminService *AdminService) AdminAction(req *RequestAdminAction) *ViewResponse[ResponseAdminHome] {
	staff, res := loadStaff[ResponseAdminHome](adminService.logger, adminService.staffOperation, req.Username)
	if res != nil {
		return res
	}
	column, res := query[ResponseAdminHome](adminService.logger, adminService.airplaneOperation.SeatCapacityColumn)
	if res != nil {
		return res
	}

	var messages []string
	switch AdminAction(req.Action) {
	case ActionAddAirport:
		messages = adminService.addAirport(req)
	case ActionAddAirplane:
		messages = adminService.addAirplane(staff, req, column)
	case ActionAddAgent:
		messages = adminService.addAgent(staff, req)
	case ActionAddFlight:
		messages = adminService.addFlight(staff, req)
	default:
		messages = []string{fmt.Sprintf("Unknown action %q.", req.Action)}
	}
	return adminService.render(staff, column, messages)
}

func (adminService *AdminService) observe(action AdminAction, err error) {
	if adminService.observer != nil {
		adminService.observer.ObserveMutation(string(action), err)
	}
}

func (adminService *AdminService) failed(action AdminAction, what string, err error) []string {
	adminService.observe(action, err)
	adminService.logger.WarnF("%s failed: %v", action, err)
	return []string{fmt.Sprintf("Error adding %s: %v", what, err)}
}

func (adminService *AdminService) addAirport(req *RequestAdminAction) []string {
	form := &airportForm{
		AirportName: strings.TrimSpace(req.AirportName),
		AirportCity: strings.TrimSpace(req.AirportCity),
	}
	if messages := adminService.validator.Check(form); messages != nil {
		return messages
	}
	err := adminService.airportOperation.AddAirport(&operation.Airport{AirportName: form.AirportName, AirportCity: form.AirportCity})
	if err != nil {
		return adminService.failed(ActionAddAirport, "airport", err)
	}
	adminService.observe(ActionAddAirport, nil)
	return []string{fmt.Sprintf("Airport %s (%s) added.", form.AirportName, form.AirportCity)}
}

func parseSeats(name, value string) (int, string) {
	seats, err := utils.ParseNonNegativeInt(value)
	if err != nil {
		return 0, fmt.Sprintf("%s must be a non-negative integer.", name)
	}
	return seats, ""
}

func (adminService *AdminService) addAirplane(staff *operation.Staff, req *RequestAdminAction, column string) []string {
	form := &airplaneForm{
		AirplaneId:    strings.TrimSpace(req.AirplaneId),
		EconomySeats:  strings.TrimSpace(req.EconomySeats),
		BusinessSeats: strings.TrimSpace(req.BusinessSeats),
		FirstSeats:    strings.TrimSpace(req.FirstSeats),
	}
	if messages := adminService.validator.Check(form); messages != nil {
		return messages
	}

	var messages []string
	seats := operation.SeatCapacities{}
	var message string
	if seats.Economy, message = parseSeats("economy_seats", form.EconomySeats); message != "" {
		messages = append(messages, message)
	}
	if seats.Business, message = parseSeats("business_seats", form.BusinessSeats); message != "" {
		messages = append(messages, message)
	}
	if seats.First, message = parseSeats("first_seats", form.FirstSeats); message != "" {
		messages = append(messages, message)
	}
	if messages != nil {
		return messages
	}

	airplane := &operation.Airplane{AirlineName: staff.AirlineName, AirplaneId: form.AirplaneId}
	if err := adminService.airplaneOperation.SaveAirplane(airplane, seats, column); err != nil {
		return adminService.failed(ActionAddAirplane, "airplane", err)
	}
	adminService.observe(ActionAddAirplane, nil)
	return []string{fmt.Sprintf("Airplane %s saved with %d seats (economy %d, business %d, first %d).",
		airplane.AirplaneId, seats.Total(), seats.Economy, seats.Business, seats.First)}
}

func (adminService *AdminService) addAgent(staff *operation.Staff, req *RequestAdminAction) []string {
	form := &agentForm{AgentEmail: strings.TrimSpace(req.AgentEmail)}
	if messages := adminService.validator.Check(form); messages != nil {
		return messages
	}

	agent, err := adminService.agentOperation.GetAgentByEmail(form.AgentEmail)
	if errors.Is(err, operation.ErrAgentNotFound) {
		return []string{fmt.Sprintf("Booking agent %s does not exist.", form.AgentEmail)}
	}
	if err != nil {
		return adminService.failed(ActionAddAgent, "booking agent", err)
	}
	if err := adminService.agentOperation.AuthorizeAgent(agent.Email, staff.AirlineName); err != nil {
		return adminService.failed(ActionAddAgent, "booking agent", err)
	}
	adminService.observe(ActionAddAgent, nil)
	return []string{fmt.Sprintf("Booking agent %s is authorized for %s.", agent.Email, staff.AirlineName)}
}

func (adminService *AdminService) addFlight(staff *operation.Staff, req *RequestAdminAction) []string {
	form := &flightForm{
		FlightNum:        strings.TrimSpace(req.FlightNum),
		DepartureAirport: strings.TrimSpace(req.DepartureAirport),
		DepartureTime:    strings.TrimSpace(req.DepartureTime),
		ArrivalAirport:   strings.TrimSpace(req.ArrivalAirport),
		ArrivalTime:      strings.TrimSpace(req.ArrivalTime),
		Price:            strings.TrimSpace(req.Price),
		Status:           strings.TrimSpace(req.Status),
		AirplaneId:       strings.TrimSpace(req.AirplaneId),
	}
	if messages := adminService.validator.Check(form); messages != nil {
		return messages
	}

	var messages []string
	status, err := operation.NormalizeStatus(form.Status)
	if err != nil {
		messages = append(messages, fmt.Sprintf("Invalid status %q, must be one of %s.", form.Status, strings.Join(statusLabels(), ", ")))
	}
	departure, err := utils.ParseDateTime(form.DepartureTime)
	if err != nil {
		messages = append(messages, "departure_time must look like YYYY-MM-DD HH:MM:SS.")
	}
	arrival, err := utils.ParseDateTime(form.ArrivalTime)
	if err != nil {
		messages = append(messages, "arrival_time must look like YYYY-MM-DD HH:MM:SS.")
	}
	price := utils.StrToFloat(form.Price, -1)
	if price < 0 {
		messages = append(messages, "price must be a non-negative number.")
	}
	if messages != nil {
		return messages
	}

	flight := &operation.Flight{
		AirlineName:      staff.AirlineName,
		FlightNum:        form.FlightNum,
		DepartureAirport: form.DepartureAirport,
		DepartureTime:    departure,
		ArrivalAirport:   form.ArrivalAirport,
		ArrivalTime:      arrival,
		Price:            price,
		Status:           status,
		AirplaneId:       form.AirplaneId,
	}
	if err := adminService.flightOperation.CreateFlight(flight); err != nil {
		return adminService.failed(ActionAddFlight, "flight", err)
	}
	adminService.observe(ActionAddFlight, nil)
	return []string{fmt.Sprintf("Flight %s added with status %s.", flight.FlightNum, flight.Status.Label())}
}

// render reloads the panel data; a read failure here fails the whole request.
func (adminService *AdminService) render(staff *operation.Staff, column string, messages []string) *ViewResponse[ResponseAdminHome] {
	airports, res := query[ResponseAdminHome](adminService.logger, adminService.airportOperation.GetAirports)
	if res != nil {
		return res
	}
	airplanes, res := query[ResponseAdminHome](adminService.logger, func() ([]*operation.AirplaneCapacity, error) {
		return adminService.airplaneOperation.GetAirplanes(staff.AirlineName, column)
	})
	if res != nil {
		return res
	}
	agents, res := query[ResponseAdminHome](adminService.logger, func() ([]*operation.BookingAgent, error) {
		return adminService.agentOperation.GetAuthorizedAgents(staff.AirlineName)
	})
	if res != nil {
		return res
	}
	flights, res := query[ResponseAdminHome](adminService.logger, func() ([]*operation.Flight, error) {
		return adminService.flightOperation.GetFlights(staff.AirlineName, nil, operation.Descending)
	})
	if res != nil {
		return res
	}
	return NewViewResponse(&SuccessRender, "admin_home.html", &ResponseAdminHome{
		AirlineName:    staff.AirlineName,
		CapacityColumn: column,
		Airports:       airports,
		Airplanes:      airplanes,
		Agents:         agents,
		Flights:        flights,
		StatusLabels:   statusLabels(),
	}, messages...)
}
