package services_test

import (
	"testing"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleForRiderStatus(t *testing.T) {
	testCases := []struct {
		status   rider.Status
		role     user.Role
		expectOK bool
	}{
		{rider.Active, user.RoleRider, true},
		{rider.Rejected, user.RoleUser, true},
		{rider.Deactivated, user.RoleUser, true},
		{rider.Pending, user.RoleUnknown, false},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			role, ok := services.RoleForRiderStatus(tc.status)

			assert.Equal(t, tc.expectOK, ok)
			assert.Equal(t, tc.role, role)
		})
	}
}

func TestApplyRoleCascade(t *testing.T) {
	email := kernel.MustEmail("rider@example.com")
	u, err := user.NewUser(kernel.NewUUID(), email, "Rider", user.RoleUser, time.Now())
	require.NoError(t, err)
	r, err := rider.NewRider(kernel.NewUUID(), email, rider.Profile{Name: "Rider", District: "A"}, time.Now())
	require.NoError(t, err)

	changed, err := services.ApplyRoleCascade(r, u)
	require.NoError(t, err)
	assert.False(t, changed, "pending application leaves the role alone")

	require.NoError(t, r.ChangeStatus(rider.Active))
	changed, err = services.ApplyRoleCascade(r, u)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, user.RoleRider, u.Role())

	require.NoError(t, r.ChangeStatus(rider.Deactivated))
	changed, err = services.ApplyRoleCascade(r, u)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, user.RoleUser, u.Role())
}
