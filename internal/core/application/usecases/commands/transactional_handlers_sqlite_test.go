package commands_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/adapters/out/postgres/pgtest"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/core/domain/model/tracking"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// uowFactory narrows the generic unit of work to the interface a handler wants.
type uowFactory[T any] struct {
	base ports.UnitOfWorkFactory
}

func (f uowFactory[T]) Create() T {
	return any(f.base.Create()).(T)
}

type seqTrackingIDs struct{ n atomic.Int64 }

func (s *seqTrackingIDs) Next() string {
	return fmt.Sprintf("%019d", 1790000000000000000+s.n.Add(1))
}

// failingRiderUpdates lets every rider write fail after the parcel write went through.
type failingRiderUpdates struct {
	ports.UnitOfWork
}

func (u failingRiderUpdates) RiderRepository() ports.RiderRepository {
	return failingRiderRepository{u.UnitOfWork.RiderRepository()}
}

type failingRiderRepository struct {
	ports.RiderRepository
}

func (failingRiderRepository) Update(context.Context, *rider.Rider) error {
	return errors.New("injected rider update failure")
}

type faultyFactory struct {
	base ports.UnitOfWorkFactory
}

func (f faultyFactory) Create() commands.DeliveryUoW {
	return failingRiderUpdates{f.base.Create()}
}

type fixture struct {
	db   *gorm.DB
	base ports.UnitOfWorkFactory
	ids  *seqTrackingIDs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := pgtest.NewSQLite(t)
	return &fixture{
		db:   db,
		base: postgres.NewGormUnitOfWorkFactory(db, zap.NewNop()),
		ids:  &seqTrackingIDs{},
	}
}

func (f *fixture) createParcel(t *testing.T, senderDistrict, receiverDistrict, cost string) *parcel.Parcel {
	t.Helper()
	details := parcel.Details{
		Title:            "Documents",
		SenderName:       "Buyer",
		SenderDistrict:   senderDistrict,
		ReceiverName:     "Receiver",
		ReceiverDistrict: receiverDistrict,
	}
	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), kernel.MustEmail(buyerEmail), details, kernel.MustMoney(cost))
	require.NoError(t, err)

	p, err := commands.NewCreateParcelCommandHandler(uowFactory[commands.ParcelUoW]{f.base}, f.ids).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return p
}

func (f *fixture) login(t *testing.T, email string) *user.User {
	t.Helper()
	cmd, err := commands.NewLoginUserCommand(kernel.MustEmail(email), "Someone")
	require.NoError(t, err)

	result, err := commands.NewLoginUserCommandHandler(uowFactory[commands.AccountUoW]{f.base}, []kernel.Email{kernel.MustEmail(adminEmail)}).
		Handle(t.Context(), cmd)
	require.NoError(t, err)
	return result.User
}

func (f *fixture) applyRider(t *testing.T, email string) *rider.Rider {
	t.Helper()
	cmd, err := commands.NewApplyRiderCommand(kernel.NewUUID(), kernel.MustEmail(email),
		rider.Profile{Name: "Rider", District: "Dhaka", Phone: "01700000000"})
	require.NoError(t, err)

	r, err := commands.NewApplyRiderCommandHandler(uowFactory[commands.AccountUoW]{f.base}).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return r
}

func (f *fixture) changeRiderStatus(t *testing.T, riderID kernel.UUID, status string) commands.ChangeRiderStatusResult {
	t.Helper()
	cmd, err := commands.NewChangeRiderStatusCommand(riderID, status)
	require.NoError(t, err)

	result, err := commands.NewChangeRiderStatusCommandHandler(uowFactory[commands.AccountUoW]{f.base}).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return result
}

func (f *fixture) assign(ctx context.Context, factory commands.DeliveryUoWFactory, p *parcel.Parcel, r *rider.Rider) error {
	cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), r.Email(), kernel.MustEmail(adminEmail))
	if err != nil {
		return err
	}
	return commands.NewAssignRiderCommandHandler(factory).Handle(ctx, cmd)
}

func (f *fixture) advance(t *testing.T, p *parcel.Parcel, status string) *parcel.Parcel {
	t.Helper()
	cmd, err := commands.NewAdvanceDeliveryCommand(p.ID(), status, kernel.MustEmail(riderEmail), false)
	require.NoError(t, err)

	got, err := commands.NewAdvanceDeliveryCommandHandler(uowFactory[commands.DeliveryUoW]{f.base}).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return got
}

func (f *fixture) withdraw(ctx context.Context, amount string) error {
	cmd, err := commands.NewRecordWithdrawalCommand(kernel.MustEmail(riderEmail), kernel.MustMoney(amount))
	if err != nil {
		return err
	}
	_, err = commands.NewRecordWithdrawalCommandHandler(uowFactory[commands.LedgerUoW]{f.base}).Handle(ctx, cmd)
	return err
}

func (f *fixture) reload(t *testing.T, p *parcel.Parcel, r *rider.Rider) (*parcel.Parcel, *rider.Rider) {
	t.Helper()
	uow := f.base.Create()
	gotParcel, err := uow.ParcelRepository().Get(t.Context(), p.ID())
	require.NoError(t, err)
	gotRider, err := uow.RiderRepository().Get(t.Context(), r.ID())
	require.NoError(t, err)
	return gotParcel, gotRider
}

func (f *fixture) trackingStatuses(t *testing.T, trackingID string) []string {
	t.Helper()
	var statuses []string
	require.NoError(t, f.db.Table("tracking_events").
		Where("tracking_id = ?", trackingID).
		Order("created_at ASC").
		Pluck("status", &statuses).Error)
	return statuses
}

func TestAssignRider_FailedRiderWriteLeavesParcelUntouched(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	p := f.createParcel(t, "Dhaka", "Dhaka", "100.00")
	r := f.applyRider(t, riderEmail)
	f.changeRiderStatus(t, r.ID(), "active")

	err := f.assign(ctx, faultyFactory{f.base}, p, r)
	require.ErrorIs(t, err, errs.ErrTransactionFailed)

	gotParcel, gotRider := f.reload(t, p, r)
	assert.Equal(t, parcel.Created, gotParcel.DeliveryStatus())
	assert.Nil(t, gotParcel.Assignment())
	assert.Equal(t, rider.Idle, gotRider.WorkStatus())
	assert.Equal(t, []string{tracking.StatusParcelCreated}, f.trackingStatuses(t, p.TrackingID()))
}

func TestAssignRider_UnknownRiderFailsButParcelExists(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	p := f.createParcel(t, "Dhaka", "Dhaka", "100.00")
	ghost := newRider(t, riderEmail, rider.Active)

	err := f.assign(ctx, uowFactory[commands.DeliveryUoW]{f.base}, p, ghost)

	var txErr *errs.TransactionFailedError
	require.ErrorAs(t, err, &txErr)
	require.ErrorIs(t, txErr.Reason(), errs.ErrObjectNotFound)

	got, err := f.base.Create().ParcelRepository().Get(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, parcel.Created, got.DeliveryStatus())
}

func TestAssignRider_SecondAssignmentOfSameParcelFails(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	p := f.createParcel(t, "Dhaka", "Dhaka", "100.00")
	first := f.applyRider(t, riderEmail)
	f.changeRiderStatus(t, first.ID(), "active")
	second := f.applyRider(t, "second@example.com")
	f.changeRiderStatus(t, second.ID(), "active")

	factory := uowFactory[commands.DeliveryUoW]{f.base}
	require.NoError(t, f.assign(ctx, factory, p, first))
	require.ErrorIs(t, f.assign(ctx, factory, p, second), errs.ErrTransactionFailed)

	gotParcel, gotFirst := f.reload(t, p, first)
	_, gotSecond := f.reload(t, p, second)
	assert.True(t, gotParcel.IsAssignedTo(first.Email()))
	assert.Equal(t, rider.InDelivery, gotFirst.WorkStatus())
	assert.Equal(t, rider.Idle, gotSecond.WorkStatus())
}

func TestChangeRiderStatus_CascadesToUserRole(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	u := f.login(t, riderEmail)
	require.Equal(t, user.RoleUser, u.Role())

	r := f.applyRider(t, riderEmail)

	result := f.changeRiderStatus(t, r.ID(), "active")
	assert.True(t, result.RoleChanged)
	got, err := f.base.Create().UserRepository().GetByEmail(ctx, r.Email())
	require.NoError(t, err)
	assert.Equal(t, user.RoleRider, got.Role())

	result = f.changeRiderStatus(t, r.ID(), "deactivated")
	assert.True(t, result.RoleChanged)
	got, err = f.base.Create().UserRepository().GetByEmail(ctx, r.Email())
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, got.Role())
}

func TestDeliveryLifecycle_EarningsAndWithdrawals(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	r := f.applyRider(t, riderEmail)
	f.changeRiderStatus(t, r.ID(), "active")
	factory := uowFactory[commands.DeliveryUoW]{f.base}

	same := f.createParcel(t, "Dhaka", "Dhaka", "1000.00")
	require.NoError(t, f.assign(ctx, factory, same, r))
	f.advance(t, same, "in-transit")
	done := f.advance(t, same, "completed")
	require.NotNil(t, done.RiderEarn())
	assert.Equal(t, "800.00", done.RiderEarn().String())

	cross := f.createParcel(t, "Dhaka", "Khulna", "1000.00")
	require.NoError(t, f.assign(ctx, factory, cross, r))
	f.advance(t, cross, "in-transit")
	done = f.advance(t, cross, "completed")
	assert.Equal(t, "300.00", done.RiderEarn().String())

	gotParcel, gotRider := f.reload(t, cross, r)
	assert.Equal(t, parcel.Completed, gotParcel.DeliveryStatus())
	assert.Equal(t, rider.Idle, gotRider.WorkStatus())
	assert.Equal(t,
		[]string{tracking.StatusParcelCreated, tracking.StatusRiderAssigned, tracking.StatusPickedUp, tracking.StatusDelivered},
		f.trackingStatuses(t, cross.TrackingID()),
	)

	require.ErrorIs(t, f.withdraw(ctx, "1100.01"), errs.ErrValueIsOutOfRange)
	require.NoError(t, f.withdraw(ctx, "600.00"))
	require.ErrorIs(t, f.withdraw(ctx, "500.01"), errs.ErrValueIsOutOfRange)
	require.NoError(t, f.withdraw(ctx, "500.00"))

	total, err := f.base.Create().WithdrawalRepository().TotalByRider(ctx, r.Email())
	require.NoError(t, err)
	assert.Equal(t, "1100.00", total.String())
}

func TestAdvanceDelivery_NotCollectedFreesRiderForNextParcel(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)

	r := f.applyRider(t, riderEmail)
	f.changeRiderStatus(t, r.ID(), "active")
	factory := uowFactory[commands.DeliveryUoW]{f.base}

	abandoned := f.createParcel(t, "Dhaka", "Dhaka", "100.00")
	require.NoError(t, f.assign(ctx, factory, abandoned, r))
	f.advance(t, abandoned, "not-collected")

	next := f.createParcel(t, "Dhaka", "Dhaka", "100.00")
	require.NoError(t, f.assign(ctx, factory, next, r))

	gotParcel, _ := f.reload(t, abandoned, r)
	assert.Equal(t, parcel.NotCollected, gotParcel.DeliveryStatus())
	assert.Nil(t, gotParcel.Assignment())
}
