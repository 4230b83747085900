// Package database
package database

import (
	"context"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"time"
)

type StaffOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewStaffOperation(db *gorm.DB, queryTimeout time.Duration) *StaffOperation {
	return &StaffOperation{db: db, queryTimeout: queryTimeout}
}

func (staffOperation *StaffOperation) GetStaffByUsername(username string) (staff *Staff, err error) {
	staff = &Staff{}
	ctx, cancel := context.WithTimeout(context.Background(), staffOperation.queryTimeout)
	defer cancel()
	err = staffOperation.db.WithContext(ctx).Where("username = ?", username).Take(staff).Error
	return staff, notFound(err, ErrStaffNotFound)
}

func (staffOperation *StaffOperation) VerifyStaffPassword(staff *Staff, password string) (pass bool) {
	return bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)) == nil
}

func (staffOperation *StaffOperation) HasPermission(username, permissionType string) (granted bool, err error) {
	var count int64
	ctx, cancel := context.WithTimeout(context.Background(), staffOperation.queryTimeout)
	defer cancel()
	err = staffOperation.db.WithContext(ctx).
		Model(&StaffPermission{}).
		Where("username = ? AND permission_type = ?", username, permissionType).
		Count(&count).
		Error
	return count > 0, err
}
