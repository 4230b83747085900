// Package operation
package operation

import (
	"errors"
	"fmt"
	"strings"
)

type FlightStatus string

const (
	StatusUpcoming   FlightStatus = "upcoming"
	StatusInProgress FlightStatus = "in-progress"
	StatusDelayed    FlightStatus = "delayed"
)

// LegacyOnTimeLabel is accepted on input and shown on output for StatusInProgress.
const LegacyOnTimeLabel = "on-time"

var ErrInvalidStatus = errors.New("invalid flight status")

var allowedStatus = []FlightStatus{StatusUpcoming, StatusInProgress, StatusDelayed}

// NormalizeStatus maps the legacy "on-time" label to in-progress and rejects anything
// outside upcoming, in-progress and delayed.
func NormalizeStatus(input string) (FlightStatus, error) {
	value := strings.ToLower(strings.TrimSpace(input))
	if value == LegacyOnTimeLabel {
		value = string(StatusInProgress)
	}
	if status := FlightStatus(value); status.IsValid() {
		return status, nil
	}
	return "", fmt.Errorf("%w %q, must be one of upcoming, on-time, delayed", ErrInvalidStatus, input)
}

// Label is the text shown to staff.
func (s FlightStatus) Label() string {
	if s == StatusInProgress {
		return LegacyOnTimeLabel
	}
	return string(s)
}

func (s FlightStatus) IsValid() bool {
	for _, status := range allowedStatus {
		if s == status {
			return true
		}
	}
	return false
}
