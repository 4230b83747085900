// Package database
package database

import (
	"context"
	"errors"
	"fmt"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"github.com/half-nothing/airline-staff-portal/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"slices"
	"time"
)

var ErrAirplaneTableMissing = errors.New("airplane table does not exist")

type AirplaneOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAirplaneOperation(db *gorm.DB, queryTimeout time.Duration) *AirplaneOperation {
	return &AirplaneOperation{db: db, queryTimeout: queryTimeout}
}

// SeatCapacityColumn asks the live schema every time; deployments disagree on the column name.
func (airplaneOperation *AirplaneOperation) SeatCapacityColumn() (column string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), airplaneOperation.queryTimeout)
	defer cancel()
	migrator := airplaneOperation.db.WithContext(ctx).Migrator()
	if !migrator.HasTable(Airplane{}.TableName()) {
		return "", ErrAirplaneTableMissing
	}
	column, _ = utils.Find(SeatCapacityColumns, func(candidate string) bool {
		return migrator.HasColumn(Airplane{}.TableName(), candidate)
	})
	return column, nil
}

func checkCapacityColumn(column string) error {
	if column != "" && !slices.Contains(SeatCapacityColumns, column) {
		return fmt.Errorf("unknown capacity column %q", column)
	}
	return nil
}

func (airplaneOperation *AirplaneOperation) GetAirplanes(airline string, column string) (airplanes []*AirplaneCapacity, err error) {
	if err := checkCapacityColumn(column); err != nil {
		return nil, err
	}
	var query string
	if column != "" {
		query = fmt.Sprintf(`
SELECT a.airplane_id, COALESCE(a.%s, 0) AS capacity
FROM airplane a
WHERE a.airline_name = ?
ORDER BY a.airplane_id`, column)
	} else {
		query = `
SELECT a.airplane_id, COALESCE(SUM(s.seats), 0) AS capacity
FROM airplane a
LEFT JOIN seat_class s ON s.airline_name = a.airline_name AND s.airplane_id = a.airplane_id
WHERE a.airline_name = ?
GROUP BY a.airplane_id
ORDER BY a.airplane_id`
	}
	airplanes = make([]*AirplaneCapacity, 0)
	ctx, cancel := context.WithTimeout(context.Background(), airplaneOperation.queryTimeout)
	defer cancel()
	err = airplaneOperation.db.WithContext(ctx).Raw(query, airline).Scan(&airplanes).Error
	return
}

// SaveAirplane writes the airplane row and its economy, business and first class rows
// atomically; existing rows are overwritten with the new counts.
func (airplaneOperation *AirplaneOperation) SaveAirplane(airplane *Airplane, seats SeatCapacities, column string) (err error) {
	if err := checkCapacityColumn(column); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), airplaneOperation.queryTimeout)
	defer cancel()
	return airplaneOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if column != "" {
			row := map[string]interface{}{
				"airline_name": airplane.AirlineName,
				"airplane_id":  airplane.AirplaneId,
				column:         seats.Total(),
			}
			if err := tx.Table(airplane.TableName()).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "airline_name"}, {Name: "airplane_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{column: seats.Total()}),
			}).Create(row).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(airplane).Error; err != nil {
				return err
			}
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "airline_name"}, {Name: "airplane_id"}, {Name: "class_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"seats"}),
		}).Create(seats.Rows(airplane.AirlineName, airplane.AirplaneId)).Error
	})
}
