package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAirline = "China Eastern"

var schema = []string{
	`CREATE TABLE airline_staff (username TEXT PRIMARY KEY, password TEXT, first_name TEXT, last_name TEXT, date_of_birth DATE, airline_name TEXT)`,
	`CREATE TABLE permission (username TEXT, permission_type TEXT, PRIMARY KEY (username, permission_type))`,
	`CREATE TABLE airport (airport_name TEXT PRIMARY KEY, airport_city TEXT)`,
	`CREATE TABLE seat_class (airline_name TEXT, airplane_id TEXT, class_id INTEGER, seats INTEGER, PRIMARY KEY (airline_name, airplane_id, class_id))`,
	`CREATE TABLE flight (airline_name TEXT, flight_num TEXT, departure_airport TEXT, departure_time DATETIME, arrival_airport TEXT, arrival_time DATETIME, price REAL, status TEXT, airplane_id TEXT, PRIMARY KEY (airline_name, flight_num))`,
	`CREATE TABLE ticket (ticket_id INTEGER PRIMARY KEY, airline_name TEXT, flight_num TEXT, class_id INTEGER)`,
	`CREATE TABLE purchases (ticket_id INTEGER, customer_email TEXT, booking_agent_id INTEGER NULL, purchase_date DATETIME)`,
	`CREATE TABLE customer (email TEXT PRIMARY KEY, name TEXT)`,
	`CREATE TABLE booking_agent (email TEXT PRIMARY KEY, password TEXT, booking_agent_id INTEGER)`,
	`CREATE TABLE agent_airline_authorization (agent_email TEXT, airline_name TEXT, PRIMARY KEY (agent_email, airline_name))`,
}

// newTestDB opens a private in-memory database. capacityColumn adds that column to airplane
// when not empty.
func newTestDB(t *testing.T, capacityColumn string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	pool, err := db.DB()
	require.NoError(t, err)
	pool.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = pool.Close() })

	airplane := `CREATE TABLE airplane (airline_name TEXT, airplane_id TEXT, PRIMARY KEY (airline_name, airplane_id))`
	if capacityColumn != "" {
		airplane = fmt.Sprintf(`CREATE TABLE airplane (airline_name TEXT, airplane_id TEXT, %s INTEGER, PRIMARY KEY (airline_name, airplane_id))`, capacityColumn)
	}
	for _, ddl := range append(schema, airplane) {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func date(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func seedFlight(t *testing.T, db *gorm.DB, flightNum, from, to, departure string, price float64, status operation.FlightStatus) {
	t.Helper()
	departureTime := date(departure)
	require.NoError(t, db.Create(&operation.Flight{
		AirlineName:      testAirline,
		FlightNum:        flightNum,
		DepartureAirport: from,
		DepartureTime:    departureTime,
		ArrivalAirport:   to,
		ArrivalTime:      departureTime.Add(3 * time.Hour),
		Price:            price,
		Status:           status,
		AirplaneId:       "B-1",
	}).Error)
}

func seedPurchase(t *testing.T, db *gorm.DB, ticketId int, flightNum, email string, agentId interface{}, purchased string) {
	t.Helper()
	require.NoError(t, db.Exec(`INSERT INTO ticket (ticket_id, airline_name, flight_num, class_id) VALUES (?, ?, ?, ?)`,
		ticketId, testAirline, flightNum, 1).Error)
	require.NoError(t, db.Exec(`INSERT INTO purchases (ticket_id, customer_email, booking_agent_id, purchase_date) VALUES (?, ?, ?, ?)`,
		ticketId, email, agentId, date(purchased)).Error)
}

func seedAirports(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, airport := range []*operation.Airport{
		{AirportName: "PVG", AirportCity: "Shanghai"},
		{AirportName: "JFK", AirportCity: "New York"},
		{AirportName: "PEK", AirportCity: "Beijing"},
	} {
		require.NoError(t, db.Create(airport).Error)
	}
}
