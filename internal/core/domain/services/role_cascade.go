package services

import (
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/core/domain/model/user"
)

// RoleForRiderStatus returns the user role implied by a rider application
// status. ok is false for Pending, which leaves the current role alone.
//
//	Active                 -> rider
//	Rejected, Deactivated  -> user
func RoleForRiderStatus(status rider.Status) (role user.Role, ok bool) {
	//nolint:exhaustive // pending and unknown imply no role change
	switch status {
	case rider.Active:
		return user.RoleRider, true
	case rider.Rejected, rider.Deactivated:
		return user.RoleUser, true
	default:
		return user.RoleUnknown, false
	}
}

// ApplyRoleCascade aligns u's role with r's status. It reports whether the
// user changed and therefore needs saving.
func ApplyRoleCascade(r *rider.Rider, u *user.User) (bool, error) {
	role, ok := RoleForRiderStatus(r.Status())
	if !ok {
		return false, nil
	}
	return u.ChangeRole(role)
}
