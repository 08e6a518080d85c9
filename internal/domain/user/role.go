package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleMember  Role = "member"
	RoleCreator Role = "creator"
	RoleStaff   Role = "staff"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleCreator, RoleStaff:
		return true
	default:
		return false
	}
}

// IsPrivileged reports whether the role receives an elevated free allowance.
func (r Role) IsPrivileged() bool {
	return r == RoleCreator || r == RoleStaff
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
