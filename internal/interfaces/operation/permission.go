// Package operation
package operation

type Role string

const (
	RoleAnonymous Role = ""
	RoleStaff     Role = "staff"
	RoleAdmin     Role = "admin"
	RoleOperator  Role = "operator"
)

// PermissionType values stored in the permission table.
const (
	PermissionAdmin    = "Admin"
	PermissionOperator = "Operator"
)

var RoleMap = map[string]Role{
	"staff":    RoleStaff,
	"admin":    RoleAdmin,
	"operator": RoleOperator,
}

func ParseRole(value string) (Role, bool) {
	role, ok := RoleMap[value]
	return role, ok
}

// RequiredPermission returns the permission row a role needs, or "" for plain staff.
func (r Role) RequiredPermission() string {
	switch r {
	case RoleAdmin:
		return PermissionAdmin
	case RoleOperator:
		return PermissionOperator
	default:
		return ""
	}
}

func (r Role) IsAnyOf(roles ...Role) bool {
	if r == RoleAnonymous {
		return false
	}
	for _, role := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }
