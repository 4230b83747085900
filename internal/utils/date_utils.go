// Package utils
package utils

import (
	"errors"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	MonthLayout    = "2006-01"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

var dateTimeLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDateBound parses a filter bound. A date-only value is widened to 00:00:00,
// or to 23:59:59 when endOfDay is set; a full timestamp is used as given.
func ParseDateBound(value string, endOfDay bool) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(DateLayout, value, time.UTC); err == nil {
		if endOfDay {
			return t.Add(24*time.Hour - time.Second), nil
		}
		return t, nil
	}
	if t, err := ParseDateTime(value); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// ParseDateTime accepts "YYYY-MM-DD HH:MM:SS" and the html datetime-local forms.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid date time, expected YYYY-MM-DD HH:MM:SS")
}

// MonthKeys returns the YYYY-MM keys of the count months ending with the month of now, oldest first.
func MonthKeys(now time.Time, count int) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	keys := make([]string, 0, count)
	for i := count - 1; i >= 0; i-- {
		keys = append(keys, first.AddDate(0, -i, 0).Format(MonthLayout))
	}
	return keys
}
