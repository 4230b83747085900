// Package service
package service

import (
	"fmt"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/half-nothing/airline-staff-portal/internal/utils"
	"strings"
)

// query adapts a plain read to CallDBFuncAndCheckError.
func query[T any, R any](logger log.LoggerInterface, fc func() (R, error)) (R, *ViewResponse[T]) {
	var zero R
	result, res := CallDBFuncAndCheckError[R, T](logger, func() (*R, error) {
		value, err := fc()
		return &value, err
	})
	if res != nil {
		return zero, res
	}
	return *result, nil
}

// loadStaff resolves the staff record behind the session, which scopes every query to one airline.
func loadStaff[T any](logger log.LoggerInterface, staffOperation operation.StaffOperationInterface, username string) (*operation.Staff, *ViewResponse[T]) {
	return CallDBFuncAndCheckError[operation.Staff, T](logger, func() (*operation.Staff, error) {
		return staffOperation.GetStaffByUsername(username)
	})
}

// checkDate clears an unparseable date filter and reports it.
func checkDate(name string, value *string, messages []string) []string {
	*value = strings.TrimSpace(*value)
	if *value == "" {
		return messages
	}
	if _, err := utils.ParseDateBound(*value, false); err != nil {
		messages = append(messages, fmt.Sprintf("Ignored %s %q, expected YYYY-MM-DD.", name, *value))
		*value = ""
	}
	return messages
}

func newFlightFilter(req *RequestFlightFilter) (*operation.FlightFilter, []string) {
	filter := &operation.FlightFilter{
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		FlightNum:   strings.TrimSpace(req.FlightNum),
	}
	var messages []string
	messages = checkDate("date_from", &filter.DateFrom, messages)
	messages = checkDate("date_to", &filter.DateTo, messages)
	return filter, messages
}

func statusLabels() []string {
	return []string{
		operation.StatusUpcoming.Label(),
		operation.StatusInProgress.Label(),
		operation.StatusDelayed.Label(),
	}
}
