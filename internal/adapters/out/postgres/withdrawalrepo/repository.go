package withdrawalrepo

import (
	"context"

	"parcelhub/internal/adapters/out/postgres/pgerr"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/withdrawal"
	"parcelhub/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormWithdrawalRepository implements ports.WithdrawalRepository using GORM.
type GormWithdrawalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWithdrawalRepository creates a new GORM withdrawal repository.
func NewGormWithdrawalRepository(db *gorm.DB, tracker aggregateTracker) *GormWithdrawalRepository {
	return &GormWithdrawalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a withdrawal.
func (r *GormWithdrawalRepository) Add(ctx context.Context, record *withdrawal.Withdrawal) error {
	if record == nil {
		return errs.NewValueIsRequiredError("withdrawal")
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add withdrawal", err)
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// TotalByRider sums every withdrawal of the rider.
func (r *GormWithdrawalRepository) TotalByRider(ctx context.Context, riderEmail kernel.Email) (kernel.Money, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&WithdrawalDTO{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("rider_email = ?", riderEmail.String()).
		Scan(&total).Error
	if err != nil {
		return kernel.Money{}, pgerr.Translate("sum withdrawals", err)
	}
	return kernel.NewMoney(total.Round(kernel.MinorUnitPlaces))
}
