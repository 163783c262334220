package parcel_test

import (
	"testing"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeliveryStatus(t *testing.T) {
	for wire, expected := range map[string]parcel.DeliveryStatus{
		"created":       parcel.Created,
		"rider_assign":  parcel.RiderAssign,
		"in-transit":    parcel.InTransit,
		"completed":     parcel.Completed,
		"not-collected": parcel.NotCollected,
	} {
		status, err := parcel.ParseDeliveryStatus(wire)

		require.NoError(t, err, wire)
		assert.Equal(t, expected, status)
		assert.Equal(t, wire, status.String())
	}

	for _, wire := range []string{"", "unknown", "delivered", "In-Transit"} {
		_, err := parcel.ParseDeliveryStatus(wire)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, wire)
	}
}

func TestDeliveryStatus_TransitionTable(t *testing.T) {
	all := []parcel.DeliveryStatus{
		parcel.Created, parcel.RiderAssign, parcel.InTransit, parcel.Completed, parcel.NotCollected,
	}
	legal := map[[2]parcel.DeliveryStatus]bool{
		{parcel.Created, parcel.RiderAssign}:      true,
		{parcel.RiderAssign, parcel.InTransit}:    true,
		{parcel.RiderAssign, parcel.NotCollected}: true,
		{parcel.InTransit, parcel.Completed}:      true,
		{parcel.InTransit, parcel.NotCollected}:   true,
	}

	for _, from := range all {
		for _, to := range all {
			err := from.CanTransitionTo(to)
			if legal[[2]parcel.DeliveryStatus{from, to}] {
				require.NoError(t, err, "%s -> %s", from, to)
				continue
			}
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "%s -> %s", from, to)
		}
	}
}

func TestDeliveryStatus_Predicates(t *testing.T) {
	assert.True(t, parcel.Completed.IsTerminal())
	assert.True(t, parcel.NotCollected.IsTerminal())
	assert.False(t, parcel.InTransit.IsTerminal())

	assert.True(t, parcel.RiderAssign.HasRider())
	assert.True(t, parcel.Completed.HasRider())
	assert.False(t, parcel.Created.HasRider())
	assert.False(t, parcel.NotCollected.HasRider())

	require.Error(t, parcel.DeliveryUnknown.Validate())
	require.Error(t, parcel.DeliveryStatus(42).Validate())
}

func TestParsePaymentStatus(t *testing.T) {
	status, err := parcel.ParsePaymentStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, parcel.Paid, status)

	_, err = parcel.ParsePaymentStatus("refunded")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, parcel.PaymentUnknown.Validate())
}
