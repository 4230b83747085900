// Package config
package config

import (
	"errors"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"time"
)

type HttpServerLimit struct {
	RateLimit         int           `json:"rate_limit"`
	RateLimitWindow   string        `json:"rate_limit_window"`
	RateLimitDuration time.Duration `json:"-"`
	LoginRateLimit    int           `json:"login_rate_limit"`
	FlightNumLenMax   int           `json:"flight_num_length_max"`
	AirportNameLenMax int           `json:"airport_name_length_max"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:         120,
		RateLimitWindow:   "1m",
		LoginRateLimit:    10,
		FlightNumLenMax:   20,
		AirportNameLenMax: 50,
	}
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else {
		config.RateLimitDuration = duration
	}

	if config.LoginRateLimit <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.login_rate_limit, value must larger than 0"))
	}
	if config.FlightNumLenMax <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.flight_num_length_max, value must larger than 0"))
	}
	if config.AirportNameLenMax <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.airport_name_length_max, value must larger than 0"))
	}

	return ValidPass()
}
