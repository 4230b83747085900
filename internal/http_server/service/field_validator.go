// Package service
package service

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/config"
	"reflect"
	"strings"
)

// FieldValidator checks form structs and turns failures into messages that name the form field.
type FieldValidator struct {
	validate *validator.Validate
}

type airportForm struct {
	AirportName string `form:"airport_name"`
	AirportCity string `form:"airport_city"`
}

type airplaneForm struct {
	AirplaneId    string `form:"airplane_id"`
	EconomySeats  string `form:"economy_seats"`
	BusinessSeats string `form:"business_seats"`
	FirstSeats    string `form:"first_seats"`
}

type agentForm struct {
	AgentEmail string `form:"agent_email"`
}

type flightForm struct {
	FlightNum        string `form:"flight_num"`
	DepartureAirport string `form:"departure_airport"`
	DepartureTime    string `form:"departure_time"`
	ArrivalAirport   string `form:"arrival_airport"`
	ArrivalTime      string `form:"arrival_time"`
	Price            string `form:"price"`
	Status           string `form:"status"`
	AirplaneId       string `form:"airplane_id"`
}

type statusForm struct {
	FlightNum string `form:"flight_num"`
	Status    string `form:"status"`
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func NewFieldValidator(limits *config.HttpServerLimit) *FieldValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	airportName := fmt.Sprintf("required,max=%d", limits.AirportNameLenMax)
	flightNum := fmt.Sprintf("required,max=%d", limits.FlightNumLenMax)

	validate.RegisterStructValidationMapRules(map[string]string{
		"AirportName": airportName,
		"AirportCity": "required,max=50",
	}, airportForm{})
	validate.RegisterStructValidationMapRules(map[string]string{
		"AirplaneId":    "required,max=20",
		"EconomySeats":  "required",
		"BusinessSeats": "required",
		"FirstSeats":    "required",
	}, airplaneForm{})
	validate.RegisterStructValidationMapRules(map[string]string{
		"AgentEmail": "required,email",
	}, agentForm{})
	validate.RegisterStructValidationMapRules(map[string]string{
		"FlightNum":        flightNum,
		"DepartureAirport": airportName,
		"DepartureTime":    "required",
		"ArrivalAirport":   airportName,
		"ArrivalTime":      "required",
		"Price":            "required,numeric",
		"Status":           "required",
		"AirplaneId":       "required,max=20",
	}, flightForm{})
	validate.RegisterStructValidationMapRules(map[string]string{
		"FlightNum": flightNum,
		"Status":    "required",
	}, statusForm{})
	validate.RegisterStructValidationMapRules(map[string]string{
		"Username": "required,max=50",
		"Password": "required",
	}, loginForm{})

	return &FieldValidator{validate: validate}
}

// Check returns one message per failing field, nil when the form is valid.
func (v *FieldValidator) Check(form interface{}) []string {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, describeFieldError(fieldError))
	}
	return messages
}

func describeFieldError(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fieldError.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", fieldError.Field(), fieldError.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", fieldError.Field())
	case "numeric":
		return fmt.Sprintf("%s must be a number.", fieldError.Field())
	default:
		return fmt.Sprintf("%s is invalid.", fieldError.Field())
	}
}
