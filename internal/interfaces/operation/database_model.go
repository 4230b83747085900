// Package operation
package operation

import (
	"time"
)

// The tables below belong to the airline reservation schema; the portal never migrates them.

type Staff struct {
	Username    string `gorm:"column:username;primaryKey"`
	Password    string `gorm:"column:password"`
	FirstName   string `gorm:"column:first_name"`
	LastName    string `gorm:"column:last_name"`
	AirlineName string `gorm:"column:airline_name"`
}

func (Staff) TableName() string { return "airline_staff" }

type StaffPermission struct {
	Username       string `gorm:"column:username;primaryKey"`
	PermissionType string `gorm:"column:permission_type;primaryKey"`
}

func (StaffPermission) TableName() string { return "permission" }

type Airport struct {
	AirportName string `gorm:"column:airport_name;primaryKey"`
	AirportCity string `gorm:"column:airport_city"`
}

func (Airport) TableName() string { return "airport" }

type Airplane struct {
	AirlineName string `gorm:"column:airline_name;primaryKey"`
	AirplaneId  string `gorm:"column:airplane_id;primaryKey"`
}

func (Airplane) TableName() string { return "airplane" }

type SeatClassId int

const (
	Economy  SeatClassId = 1
	Business SeatClassId = 2
	First    SeatClassId = 3
)

var seatClassLabels = map[SeatClassId]string{
	Economy:  "Economy",
	Business: "Business",
	First:    "First",
}

func (id SeatClassId) String() string {
	if label, ok := seatClassLabels[id]; ok {
		return label
	}
	return "Unknown"
}

type SeatClass struct {
	AirlineName string      `gorm:"column:airline_name;primaryKey"`
	AirplaneId  string      `gorm:"column:airplane_id;primaryKey"`
	ClassId     SeatClassId `gorm:"column:class_id;primaryKey"`
	Seats       int         `gorm:"column:seats"`
}

func (SeatClass) TableName() string { return "seat_class" }

type Flight struct {
	AirlineName      string       `gorm:"column:airline_name;primaryKey"`
	FlightNum        string       `gorm:"column:flight_num;primaryKey"`
	DepartureAirport string       `gorm:"column:departure_airport"`
	DepartureTime    time.Time    `gorm:"column:departure_time"`
	ArrivalAirport   string       `gorm:"column:arrival_airport"`
	ArrivalTime      time.Time    `gorm:"column:arrival_time"`
	Price            float64      `gorm:"column:price"`
	Status           FlightStatus `gorm:"column:status"`
	AirplaneId       string       `gorm:"column:airplane_id"`
}

func (Flight) TableName() string { return "flight" }

type BookingAgent struct {
	Email          string `gorm:"column:email;primaryKey"`
	Password       string `gorm:"column:password"`
	BookingAgentId int64  `gorm:"column:booking_agent_id"`
}

func (BookingAgent) TableName() string { return "booking_agent" }

type AgentAuthorization struct {
	AgentEmail  string `gorm:"column:agent_email;primaryKey"`
	AirlineName string `gorm:"column:airline_name;primaryKey"`
}

func (AgentAuthorization) TableName() string { return "agent_airline_authorization" }

// Projections read through raw queries.

type AirplaneCapacity struct {
	AirplaneId string `gorm:"column:airplane_id"`
	Capacity   int64  `gorm:"column:capacity"`
}

type SeatCapacities struct {
	Economy  int
	Business int
	First    int
}

func (s SeatCapacities) Total() int { return s.Economy + s.Business + s.First }

func (s SeatCapacities) Rows(airline, airplaneId string) []*SeatClass {
	return []*SeatClass{
		{AirlineName: airline, AirplaneId: airplaneId, ClassId: Economy, Seats: s.Economy},
		{AirlineName: airline, AirplaneId: airplaneId, ClassId: Business, Seats: s.Business},
		{AirlineName: airline, AirplaneId: airplaneId, ClassId: First, Seats: s.First},
	}
}

type PassengerRow struct {
	TicketId      int64       `gorm:"column:ticket_id"`
	FlightNum     string      `gorm:"column:flight_num"`
	DepartureTime time.Time   `gorm:"column:departure_time"`
	CustomerEmail string      `gorm:"column:customer_email"`
	CustomerName  string      `gorm:"column:customer_name"`
	ClassId       SeatClassId `gorm:"column:class_id"`
	PurchaseDate  time.Time   `gorm:"column:purchase_date"`
}

type CustomerFlightRow struct {
	TicketId         int64        `gorm:"column:ticket_id"`
	FlightNum        string       `gorm:"column:flight_num"`
	DepartureAirport string       `gorm:"column:departure_airport"`
	ArrivalAirport   string       `gorm:"column:arrival_airport"`
	DepartureTime    time.Time    `gorm:"column:departure_time"`
	ArrivalTime      time.Time    `gorm:"column:arrival_time"`
	Status           FlightStatus `gorm:"column:status"`
	Price            float64      `gorm:"column:price"`
	PurchaseDate     time.Time    `gorm:"column:purchase_date"`
}

type AgentRank struct {
	Email          string  `gorm:"column:email"`
	BookingAgentId int64   `gorm:"column:booking_agent_id"`
	Tickets        int64   `gorm:"column:tickets"`
	Sales          float64 `gorm:"column:sales"`
	Commission     float64 `gorm:"-"`
}

type CustomerRank struct {
	Email   string `gorm:"column:email"`
	Name    string `gorm:"column:name"`
	Tickets int64  `gorm:"column:tickets"`
}

type MonthlySales struct {
	Month   string `gorm:"column:month"`
	Tickets int64  `gorm:"column:tickets"`
}

type StatusCounts struct {
	Delayed int64 `gorm:"column:delayed_count"`
	OnTime  int64 `gorm:"column:on_time_count"`
	Other   int64 `gorm:"column:other_count"`
}

type DestinationRank struct {
	City    string `gorm:"column:city"`
	Tickets int64  `gorm:"column:tickets"`
}
