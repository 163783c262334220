package user

import (
	"errors"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
)

// ErrUserIsNotConstructed is returned when a User was not created through
// NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// Identity is what the identity gateway vouches for: a provider subject and
// an e-mail claim. It carries no role; roles come from the user store.
type Identity struct {
	UID   string
	Email kernel.Email
}

// User is an account keyed by e-mail. Accounts are created or touched on
// every login.
type User struct {
	id            kernel.UUID
	email         kernel.Email
	name          string
	role          Role
	createdAt     time.Time
	lastLoginAt   time.Time
	isConstructed bool
}

// NewUser creates an account first seen at now.
func NewUser(id kernel.UUID, email kernel.Email, name string, role Role, now time.Time) (*User, error) {
	if err := errors.Join(id.Validate(), email.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	return &User{
		id:            id,
		email:         email,
		name:          strings.TrimSpace(name),
		role:          role,
		createdAt:     now,
		lastLoginAt:   now,
		isConstructed: true,
	}, nil
}

// RestoreUser rebuilds a user from storage.
func RestoreUser(
	id kernel.UUID,
	email kernel.Email,
	name string,
	role Role,
	createdAt, lastLoginAt time.Time,
) (*User, error) {
	u, err := NewUser(id, email, name, role, createdAt)
	if err != nil {
		return nil, err
	}
	u.lastLoginAt = lastLoginAt
	return u, nil
}

// Validate ensures the user was built by a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID        { return u.id }
func (u *User) Email() kernel.Email    { return u.email }
func (u *User) Name() string           { return u.name }
func (u *User) Role() Role             { return u.role }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) LastLoginAt() time.Time { return u.lastLoginAt }

// HasRole reports whether the user's role is one of roles.
func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.role == r {
			return true
		}
	}
	return false
}

// TouchLogin records a login at the given time.
func (u *User) TouchLogin(at time.Time) {
	u.lastLoginAt = at
}

// ChangeRole sets a new role. Admin accounts are never demoted by this
// method; the rider cascade must not strip an administrator's privileges.
// It reports whether the role actually changed.
func (u *User) ChangeRole(role Role) (bool, error) {
	if err := role.Validate(); err != nil {
		return false, err
	}
	if u.role == RoleAdmin || u.role == role {
		return false, nil
	}
	u.role = role
	return true, nil
}
