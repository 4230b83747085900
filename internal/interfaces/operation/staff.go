// Package operation
package operation

import "errors"

var (
	// ErrStaffNotFound no airline_staff row for the username
	ErrStaffNotFound = errors.New("staff does not exist")
)

// StaffOperationInterface airline staff lookups
type StaffOperationInterface interface {
	// GetStaffByUsername fetches one staff record, staff is valid when err is nil
	GetStaffByUsername(username string) (staff *Staff, err error)
	// VerifyStaffPassword compares the bcrypt hash stored for the staff, pass is true on match
	VerifyStaffPassword(staff *Staff, password string) (pass bool)
	// HasPermission reports whether a permission row of the given type exists for username
	HasPermission(username, permissionType string) (granted bool, err error)
}
