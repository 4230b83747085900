// Package service
package service

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"strings"
)

type OperatorService struct {
	logger          log.LoggerInterface
	validator       *FieldValidator
	observer        MutationObserver
	emailService    EmailServiceInterface
	staffOperation  operation.StaffOperationInterface
	flightOperation operation.FlightOperationInterface
}

func NewOperatorService(
	logger log.LoggerInterface,
	validator *FieldValidator,
	observer MutationObserver,
	emailService EmailServiceInterface,
	staffOperation operation.StaffOperationInterface,
	flightOperation operation.FlightOperationInterface,
) *OperatorService {
	return &OperatorService{
		logger:          logger,
		validator:       validator,
		observer:        observer,
		emailService:    emailService,
		staffOperation:  staffOperation,
		flightOperation: flightOperation,
	}
}

func (operatorService *OperatorService) OperatorHome(req *RequestOperatorHome) *ViewResponse[ResponseOperatorHome] {
	staff, res := loadStaff[ResponseOperatorHome](operatorService.logger, operatorService.staffOperation, req.Username)
	if res != nil {
		return res
	}
	return operatorService.render(staff, &req.RequestFlightFilter, nil)
}

func (operatorService *OperatorService) UpdateStatus(req *RequestUpdateStatus) *ViewResponse[ResponseOperatorHome] {
	staff, res := loadStaff[ResponseOperatorHome](operatorService.logger, operatorService.staffOperation, req.Username)
	if res != nil {
		return res
	}
	if req.Action != ActionUpdateStatus {
		return operatorService.render(staff, &req.RequestFlightFilter, []string{fmt.Sprintf("Unknown action %q.", req.Action)})
	}
	return operatorService.render(staff, &req.RequestFlightFilter, operatorService.updateStatus(staff, req))
}

func (operatorService *OperatorService) observe(err error) {
	if operatorService.observer != nil {
		operatorService.observer.ObserveMutation(ActionUpdateStatus, err)
	}
}

func (operatorService *OperatorService) updateStatus(staff *operation.Staff, req *RequestUpdateStatus) []string {
	form := &statusForm{
		FlightNum: strings.TrimSpace(req.TargetFlightNum),
		Status:    strings.TrimSpace(req.Status),
	}
	if messages := operatorService.validator.Check(form); messages != nil {
		return messages
	}
	status, err := operation.NormalizeStatus(form.Status)
	if err != nil {
		return []string{fmt.Sprintf("Invalid status %q, must be one of %s.", form.Status, strings.Join(statusLabels(), ", "))}
	}

	err = operatorService.flightOperation.UpdateFlightStatus(staff.AirlineName, form.FlightNum, status)
	operatorService.observe(err)
	if errors.Is(err, operation.ErrFlightNotFound) {
		return []string{fmt.Sprintf("Flight %s not found for %s.", form.FlightNum, staff.AirlineName)}
	}
	if err != nil {
		operatorService.logger.WarnF("update_status of %s failed: %v", form.FlightNum, err)
		return []string{fmt.Sprintf("Error updating flight status: %v", err)}
	}

	operatorService.logger.InfoF("%s set flight %s of %s to %s", req.Username, form.FlightNum, staff.AirlineName, status)
	if status == operation.StatusDelayed {
		operatorService.notifyDelay(staff.AirlineName, form.FlightNum)
	}
	return []string{fmt.Sprintf("Flight %s status updated to %s.", form.FlightNum, status.Label())}
}

// notifyDelay mails ticket holders; failures are logged and never reach the operator.
func (operatorService *OperatorService) notifyDelay(airline, flightNum string) {
	if operatorService.emailService == nil || !operatorService.emailService.Enabled() {
		return
	}
	emails, err := operatorService.flightOperation.GetFlightCustomerEmails(airline, flightNum)
	if err != nil {
		operatorService.logger.ErrorF("Loading customers of delayed flight %s failed: %v", flightNum, err)
		return
	}
	if len(emails) == 0 {
		return
	}
	if err := operatorService.emailService.SendDelayNotification(&DelayNotice{
		AirlineName: airline,
		FlightNum:   flightNum,
		Recipients:  emails,
	}); err != nil {
		operatorService.logger.ErrorF("Sending delay notification for %s failed: %v", flightNum, err)
	}
}

func (operatorService *OperatorService) render(staff *operation.Staff, req *RequestFlightFilter, messages []string) *ViewResponse[ResponseOperatorHome] {
	filter, filterMessages := newFlightFilter(req)
	flights, res := query[ResponseOperatorHome](operatorService.logger, func() ([]*operation.Flight, error) {
		return operatorService.flightOperation.GetFlights(staff.AirlineName, filter, operation.Descending)
	})
	if res != nil {
		return res
	}
	return NewViewResponse(&SuccessRender, "operator_home.html", &ResponseOperatorHome{
		AirlineName:  staff.AirlineName,
		Filter:       filter,
		Flights:      flights,
		StatusLabels: statusLabels(),
	}, append(messages, filterMessages...)...)
}
