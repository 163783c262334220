package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/adapters/out/postgres/pgtest"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// UnitOfWorkIntegrationTestSuite exercises the unit of work against a real
// PostgreSQL server, including row locking between concurrent transactions.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Container
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB, zap.NewNop())
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.ParcelRepository())
	suite.NotNil(uow1.RiderRepository())
	suite.NotNil(uow2.TrackingRepository())
	suite.NotNil(uow2.WithdrawalRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentCommitsAtomically() {
	ctx := context.Background()
	p, r := suite.seed(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	lockedParcel, err := uow.ParcelRepository().GetForUpdate(ctx, p.ID())
	suite.Require().NoError(err)
	lockedRider, err := uow.RiderRepository().GetForUpdate(ctx, r.ID())
	suite.Require().NoError(err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(lockedParcel.AssignRider(lockedRider.ID(), lockedRider.Email(), now))
	suite.Require().NoError(lockedRider.StartDelivery())
	suite.Require().NoError(uow.ParcelRepository().Update(ctx, lockedParcel))
	suite.Require().NoError(uow.RiderRepository().Update(ctx, lockedRider))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	storedParcel, err := reader.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.RiderAssign, storedParcel.DeliveryStatus())
	suite.Require().NotNil(storedParcel.Assignment())
	suite.True(storedParcel.Assignment().RiderID.IsEqual(r.ID()))
	suite.WithinDuration(now, storedParcel.Assignment().AssignedAt, time.Millisecond)

	storedRider, err := reader.RiderRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(rider.InDelivery, storedRider.WorkStatus())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	p, r := suite.seed(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	lockedParcel, err := uow.ParcelRepository().GetForUpdate(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(lockedParcel.AssignRider(r.ID(), r.Email(), time.Now()))
	suite.Require().NoError(uow.ParcelRepository().Update(ctx, lockedParcel))
	suite.Require().NoError(uow.Rollback(ctx))

	stored, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Created, stored.DeliveryStatus())
	suite.Nil(stored.Assignment())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	parcel1 := newTestParcel("Dhaka", "Dhaka", "1000.00")
	parcel2 := newTestParcel("Dhaka", "Khulna", "500.00")

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.ParcelRepository().Add(ctx, parcel1))
	suite.Require().NoError(uow2.ParcelRepository().Add(ctx, parcel2))

	_, err := uow1.ParcelRepository().Get(ctx, parcel2.ID())
	suite.Require().Error(err, "UOW1 should not see parcel2")
	_, err = uow2.ParcelRepository().Get(ctx, parcel1.ID())
	suite.Require().Error(err, "UOW2 should not see parcel1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.ParcelRepository().Get(ctx, parcel1.ID())
	suite.Require().NoError(err)
	_, err = reader.ParcelRepository().Get(ctx, parcel2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// Two transactions race to assign different riders to the same parcel.
// The row lock serializes them and the loser observes rider_assign.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentAssignmentHasOneWinner() {
	ctx := context.Background()
	p, first := suite.seed(ctx)
	second := newTestRider("second@example.com")
	suite.Require().NoError(suite.factory.Create().RiderRepository().Add(ctx, second))

	var (
		wg      sync.WaitGroup
		results = make([]error, 2)
		start   = make(chan struct{})
	)
	for i, candidate := range []*rider.Rider{first, second} {
		wg.Add(1)
		go func(i int, candidate *rider.Rider) {
			defer wg.Done()
			<-start
			results[i] = assign(ctx, suite.factory, p.ID(), candidate.ID())
		}(i, candidate)
	}
	close(start)
	wg.Wait()

	failures := 0
	for _, err := range results {
		if err != nil {
			failures++
			suite.ErrorIs(err, errs.ErrValueIsInvalid, "loser should fail the transition")
		}
	}
	suite.Equal(1, failures)

	reader := suite.factory.Create()
	stored, err := reader.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.RiderAssign, stored.DeliveryStatus())

	busy := 0
	for _, candidate := range []*rider.Rider{first, second} {
		r, getErr := reader.RiderRepository().Get(ctx, candidate.ID())
		suite.Require().NoError(getErr)
		if r.WorkStatus() == rider.InDelivery {
			busy++
			suite.True(stored.Assignment().RiderID.IsEqual(r.ID()))
		}
	}
	suite.Equal(1, busy)
}

func (suite *UnitOfWorkIntegrationTestSuite) seed(ctx context.Context) (*parcel.Parcel, *rider.Rider) {
	p := newTestParcel("Dhaka", "Dhaka", "1000.00")
	r := newTestRider("rider@example.com")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.RiderRepository().Add(ctx, r))
	suite.Require().NoError(uow.Commit(ctx))
	return p, r
}

func assign(ctx context.Context, factory ports.UnitOfWorkFactory, parcelID, riderID kernel.UUID) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	p, err := uow.ParcelRepository().GetForUpdate(ctx, parcelID)
	if err != nil {
		return err
	}
	r, err := uow.RiderRepository().GetForUpdate(ctx, riderID)
	if err != nil {
		return err
	}
	if err = p.AssignRider(r.ID(), r.Email(), time.Now()); err != nil {
		return err
	}
	if err = r.StartDelivery(); err != nil {
		return err
	}
	if err = uow.ParcelRepository().Update(ctx, p); err != nil {
		return err
	}
	if err = uow.RiderRepository().Update(ctx, r); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
