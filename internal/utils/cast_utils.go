// Package utils
package utils

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrNotInteger = errors.New("not an integer")
	ErrNegative   = errors.New("must not be negative")
)

func StrToInt(str string, defaultValue int) int {
	result, err := strconv.Atoi(str)
	if err != nil {
		return defaultValue
	}
	return result
}

func StrToFloat(str string, defaultValue float64) float64 {
	result, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return defaultValue
	}
	return result
}

// ParseNonNegativeInt accepts base-10 integers >= 0, surrounding spaces allowed.
func ParseNonNegativeInt(str string) (int, error) {
	result, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return 0, ErrNotInteger
	}
	if result < 0 {
		return 0, ErrNegative
	}
	return result, nil
}
