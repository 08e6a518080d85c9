package slot

import "dish-studio/internal/domain/user"

// Policy decides how many slots of each type a single user may hold per day.
type Policy struct {
	FreeDefault int
	FreeCreator int
	FreeStaff   int
	AdPerUser   int
}

func (p Policy) Allowance(role user.Role, t Type) int {
	if t == TypeAd {
		return p.AdPerUser
	}
	switch role {
	case user.RoleStaff:
		return p.FreeStaff
	case user.RoleCreator:
		return p.FreeCreator
	default:
		return p.FreeDefault
	}
}
