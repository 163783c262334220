// Package postgres provides the GORM-based Unit of Work for parcelhub.
//
// A unit of work spans one business transaction. Every repository obtained
// from it after Begin runs inside the same database transaction, so a parcel
// assignment, the rider's work status, and the tracking entry that records
// them are committed or rolled back together.
//
// Basic usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	p, err := uow.ParcelRepository().GetForUpdate(ctx, parcelID)
//	if err != nil {
//	    return err
//	}
//	// mutate p ...
//	if err := uow.ParcelRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op returning
// gorm.ErrInvalidTransaction, which the deferred call ignores.
//
// Concurrency:
//   - Each UnitOfWork instance owns one transaction; goroutines must not share it
//   - Row locks are taken with the repositories' GetForUpdate methods
//   - Serialization and deadlock failures surface as TransactionFailedError
package postgres

import (
	"context"

	"parcelhub/internal/adapters/out/postgres/parcelrepo"
	"parcelhub/internal/adapters/out/postgres/paymentrepo"
	"parcelhub/internal/adapters/out/postgres/pgerr"
	"parcelhub/internal/adapters/out/postgres/riderrepo"
	"parcelhub/internal/adapters/out/postgres/trackingrepo"
	"parcelhub/internal/adapters/out/postgres/userrepo"
	"parcelhub/internal/adapters/out/postgres/withdrawalrepo"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool. Each Create call returns an independent transaction scope.
type GormUnitOfWorkFactory struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. A nil logger disables commit logging.
func NewGormUnitOfWorkFactory(db *gorm.DB, log *zap.Logger) *GormUnitOfWorkFactory {
	if log == nil {
		log = zap.NewNop()
	}
	return &GormUnitOfWorkFactory{db: db, log: log}
}

// Create produces a new UnitOfWork with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		log:               f.log,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and remembers the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	log               *zap.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerr.Translate("begin", tx.Error)
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit makes every write of the transaction permanent. Concurrency
// failures reported by the database are returned as TransactionFailedError.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return pgerr.Translate("commit", err)
	}

	uow.log.Debug("unit of work committed", zap.Int("aggregates", len(uow.trackedAggregates)))
	return nil
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// nothing is open, which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// ParcelRepository returns a parcel repository bound to the open transaction,
// or to the pool when none is open.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

// RiderRepository returns a rider repository bound to the open transaction.
func (uow *GormUnitOfWork) RiderRepository() ports.RiderRepository {
	return riderrepo.NewGormRiderRepository(uow.conn(), uow)
}

// UserRepository returns a user repository bound to the open transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TrackingRepository() ports.TrackingRepository {
	return trackingrepo.NewGormTrackingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) WithdrawalRepository() ports.WithdrawalRepository {
	return withdrawalrepo.NewGormWithdrawalRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many aggregate writes the current or last
// committed transaction recorded.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
