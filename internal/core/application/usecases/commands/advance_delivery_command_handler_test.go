package commands_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/core/domain/model/tracking"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceDeliveryCommandHandler_Handle_PickUp(t *testing.T) {
	ctx := t.Context()

	testRider := newRider(t, riderEmail, rider.Active)
	testParcel := assignedParcel(t, testRider, "Dhaka", "Dhaka", "100.00")

	cmd, err := commands.NewAdvanceDeliveryCommand(testParcel.ID(), "in-transit", kernel.MustEmail(riderEmail), false)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		parcelRepo.On("Update", ctx, testParcel).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Add", ctx, mock.MatchedBy(func(e *tracking.Event) bool {
			return e.Status() == tracking.StatusPickedUp && e.TrackingID() == testParcel.TrackingID()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory[commands.DeliveryUoW])
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDeliveryCommandHandler(factory)
	got, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.InTransit, got.DeliveryStatus())
	assert.NotNil(t, got.PickedAt())
	assert.Nil(t, got.RiderEarn())
	uow.AssertNotCalled(t, "RiderRepository")
	uow.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
}

func TestAdvanceDeliveryCommandHandler_Handle_CompletionFixesEarnAndReleasesRider(t *testing.T) {
	tests := []struct {
		name             string
		senderDistrict   string
		receiverDistrict string
		cost             string
		want             string
	}{
		{"same district", "Dhaka", "dhaka ", "1000.00", "800.00"},
		{"cross district", "Dhaka", "Khulna", "1000.00", "300.00"},
		{"half up rounding", "Dhaka", "Khulna", "0.05", "0.02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()

			testRider := newRider(t, riderEmail, rider.Active)
			testParcel := assignedParcel(t, testRider, tt.senderDistrict, tt.receiverDistrict, tt.cost)
			require.NoError(t, testParcel.Advance(parcel.InTransit, testParcel.CreatedAt()))

			cmd, err := commands.NewAdvanceDeliveryCommand(testParcel.ID(), "completed", kernel.MustEmail(adminEmail), true)
			require.NoError(t, err)

			parcelRepo := new(MockParcelRepository)
			riderRepo := new(MockRiderRepository)
			trackingRepo := new(MockTrackingRepository)
			uow := new(MockUoW)

			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("ParcelRepository").Return(parcelRepo).Once(),
				parcelRepo.On("GetForUpdate", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
				parcelRepo.On("Update", ctx, testParcel).Return(nil).Once(),
				uow.On("RiderRepository").Return(riderRepo).Once(),
				riderRepo.On("GetForUpdate", ctx, testRider.ID()).Return(testRider, nil).Once(),
				riderRepo.On("Update", ctx, testRider).Return(nil).Once(),
				uow.On("TrackingRepository").Return(trackingRepo).Once(),
				trackingRepo.On("Add", ctx, mock.MatchedBy(func(e *tracking.Event) bool {
					return e.Status() == tracking.StatusDelivered && e.Details()["rider_earn"] == tt.want
				})).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockUoWFactory[commands.DeliveryUoW])
			factory.On("Create").Return(uow).Once()

			handler := commands.NewAdvanceDeliveryCommandHandler(factory)
			got, err := handler.Handle(ctx, cmd)

			require.NoError(t, err)
			require.NotNil(t, got.RiderEarn())
			assert.Equal(t, tt.want, got.RiderEarn().String())
			assert.NotNil(t, got.DeliveredAt())
			assert.Equal(t, rider.Idle, testRider.WorkStatus())
			uow.AssertExpectations(t)
			riderRepo.AssertExpectations(t)
		})
	}
}

func TestAdvanceDeliveryCommandHandler_Handle_NotCollectedReleasesRider(t *testing.T) {
	ctx := t.Context()

	testRider := newRider(t, riderEmail, rider.Active)
	testParcel := assignedParcel(t, testRider, "Dhaka", "Dhaka", "100.00")

	cmd, err := commands.NewAdvanceDeliveryCommand(testParcel.ID(), "not-collected", kernel.MustEmail(riderEmail), false)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("TrackingRepository").Return(trackingRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	parcelRepo.On("GetForUpdate", ctx, testParcel.ID()).Return(testParcel, nil).Once()
	parcelRepo.On("Update", ctx, testParcel).Return(nil).Once()
	riderRepo.On("GetForUpdate", ctx, testRider.ID()).Return(testRider, nil).Once()
	riderRepo.On("Update", ctx, testRider).Return(nil).Once()
	trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once()

	factory := new(MockUoWFactory[commands.DeliveryUoW])
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDeliveryCommandHandler(factory)
	got, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.NotCollected, got.DeliveryStatus())
	assert.Nil(t, got.Assignment())
	assert.Equal(t, rider.Idle, testRider.WorkStatus())
	riderRepo.AssertExpectations(t)
}

func TestAdvanceDeliveryCommandHandler_Handle_OtherRiderIsForbidden(t *testing.T) {
	ctx := t.Context()

	testRider := newRider(t, riderEmail, rider.Active)
	testParcel := assignedParcel(t, testRider, "Dhaka", "Dhaka", "100.00")

	cmd, err := commands.NewAdvanceDeliveryCommand(testParcel.ID(), "in-transit",
		kernel.MustEmail("intruder@example.com"), false)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory[commands.DeliveryUoW])
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, parcel.RiderAssign, testParcel.DeliveryStatus())
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdvanceDeliveryCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()

	testParcel := newCreatedParcel(t, "Dhaka", "Dhaka", "100.00")

	cmd, err := commands.NewAdvanceDeliveryCommand(testParcel.ID(), "completed", kernel.MustEmail(adminEmail), true)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory[commands.DeliveryUoW])
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, parcel.Created, testParcel.DeliveryStatus())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAdvanceDeliveryCommandHandler_Handle_ParcelNotFound(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceDeliveryCommand(parcelID, "in-transit", kernel.MustEmail(adminEmail), true)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, parcelID).
			Return(nil, errs.NewObjectNotFoundError("parcelId", parcelID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory[commands.DeliveryUoW])
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
