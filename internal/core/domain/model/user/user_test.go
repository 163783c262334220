package user_test

import (
	"testing"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), kernel.MustEmail("someone@example.com"), "Someone", role, time.Now())
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	u := newTestUser(t, user.RoleUser)

	require.NoError(t, u.Validate())
	assert.Equal(t, u.CreatedAt(), u.LastLoginAt())
	assert.True(t, u.HasRole(user.RoleAdmin, user.RoleUser))
	assert.False(t, u.HasRole(user.RoleRider))

	_, err := user.NewUser(kernel.NewUUID(), kernel.MustEmail("x@example.com"), "", user.RoleUnknown, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUser_ChangeRole(t *testing.T) {
	t.Run("user is promoted and demoted", func(t *testing.T) {
		u := newTestUser(t, user.RoleUser)

		changed, err := u.ChangeRole(user.RoleRider)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, user.RoleRider, u.Role())

		changed, err = u.ChangeRole(user.RoleRider)
		require.NoError(t, err)
		assert.False(t, changed)

		changed, err = u.ChangeRole(user.RoleUser)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, user.RoleUser, u.Role())
	})

	t.Run("admin is never demoted", func(t *testing.T) {
		u := newTestUser(t, user.RoleAdmin)

		changed, err := u.ChangeRole(user.RoleUser)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, user.RoleAdmin, u.Role())
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		u := newTestUser(t, user.RoleUser)

		_, err := u.ChangeRole(user.Role(9))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUser_TouchLogin(t *testing.T) {
	u := newTestUser(t, user.RoleUser)
	later := u.CreatedAt().Add(time.Hour)

	u.TouchLogin(later)

	assert.Equal(t, later, u.LastLoginAt())
}

func TestParseRole(t *testing.T) {
	r, err := user.ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, r)

	_, err = user.ParseRole("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
