package rider_test

import (
	"testing"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRider(t *testing.T, status rider.Status, work rider.WorkStatus) *rider.Rider {
	t.Helper()
	r, err := rider.RestoreRider(
		kernel.NewUUID(),
		kernel.MustEmail("rider@example.com"),
		rider.Profile{Name: "Rahim", District: "Dhaka", Phone: "0170000000"},
		status,
		work,
		time.Now(),
	)
	require.NoError(t, err)
	return r
}

func TestNewRider(t *testing.T) {
	r, err := rider.NewRider(
		kernel.NewUUID(),
		kernel.MustEmail("rider@example.com"),
		rider.Profile{Name: " Rahim ", District: "Dhaka"},
		time.Now(),
	)

	require.NoError(t, err)
	assert.Equal(t, rider.Pending, r.Status())
	assert.Equal(t, rider.Idle, r.WorkStatus())
	assert.Equal(t, "Rahim", r.Profile().Name)

	_, err = rider.NewRider(kernel.NewUUID(), kernel.MustEmail("rider@example.com"), rider.Profile{}, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero rider.Rider
	require.ErrorIs(t, zero.Validate(), rider.ErrRiderIsNotConstructed)
}

func TestRider_ChangeStatus(t *testing.T) {
	legal := map[[2]rider.Status]bool{
		{rider.Pending, rider.Active}:     true,
		{rider.Pending, rider.Rejected}:   true,
		{rider.Active, rider.Deactivated}: true,
		{rider.Deactivated, rider.Active}: true,
	}
	all := []rider.Status{rider.Pending, rider.Active, rider.Rejected, rider.Deactivated}

	for _, from := range all {
		for _, to := range all {
			r := newTestRider(t, from, rider.Idle)

			err := r.ChangeStatus(to)

			if legal[[2]rider.Status{from, to}] {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, r.Status())
				continue
			}
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "%s -> %s", from, to)
			assert.Equal(t, from, r.Status())
		}
	}
}

func TestRider_CannotDeactivateWhileInDelivery(t *testing.T) {
	r := newTestRider(t, rider.Active, rider.InDelivery)

	err := r.ChangeStatus(rider.Deactivated)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, rider.Active, r.Status())
}

func TestRider_DeliveryWorkload(t *testing.T) {
	t.Run("active idle rider starts delivery", func(t *testing.T) {
		r := newTestRider(t, rider.Active, rider.Idle)

		require.NoError(t, r.StartDelivery())
		assert.Equal(t, rider.InDelivery, r.WorkStatus())

		r.FinishDelivery()
		assert.Equal(t, rider.Idle, r.WorkStatus())
	})

	t.Run("busy rider cannot start another delivery", func(t *testing.T) {
		r := newTestRider(t, rider.Active, rider.InDelivery)

		require.ErrorIs(t, r.StartDelivery(), errs.ErrValueIsInvalid)
	})

	t.Run("non active riders cannot start delivery", func(t *testing.T) {
		for _, status := range []rider.Status{rider.Pending, rider.Rejected, rider.Deactivated} {
			r := newTestRider(t, status, rider.Idle)

			require.ErrorIs(t, r.StartDelivery(), errs.ErrValueIsInvalid, status.String())
			assert.Equal(t, rider.Idle, r.WorkStatus())
		}
	})
}

func TestParseStatus(t *testing.T) {
	s, err := rider.ParseStatus("deactivated")
	require.NoError(t, err)
	assert.Equal(t, rider.Deactivated, s)

	_, err = rider.ParseStatus("banned")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	w, err := rider.ParseWorkStatus("in-delivery")
	require.NoError(t, err)
	assert.Equal(t, "in-delivery", w.String())
}
