// Package operation
package operation

// Every field is optional; an empty string contributes no predicate.

type FlightFilter struct {
	DateFrom    string
	DateTo      string
	Origin      string
	Destination string
	FlightNum   string
}

type PassengerFilter struct {
	FlightNum string
	Date      string
}

type CustomerFilter struct {
	CustomerEmail string
	DateFrom      string
	DateTo        string
}

type SortOrder string

const (
	Ascending  SortOrder = "ASC"
	Descending SortOrder = "DESC"
)
