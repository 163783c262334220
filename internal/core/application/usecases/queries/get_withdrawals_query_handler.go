package queries

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetWithdrawalsQueryHandler serves both ledger reads: Total and History.
type GetWithdrawalsQueryHandler struct {
	db *gorm.DB
}

func NewGetWithdrawalsQueryHandler(db *gorm.DB) GetWithdrawalsQueryHandler {
	return GetWithdrawalsQueryHandler{db: db}
}

// Total sums every withdrawal of the rider. It is zero, not an error, for a
// rider who never withdrew or does not exist.
func (h GetWithdrawalsQueryHandler) Total(ctx context.Context, query GetWithdrawalsQuery) (kernel.Money, error) {
	if err := query.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var total decimal.Decimal
	err := h.db.WithContext(ctx).
		Table("withdrawals").
		Select("COALESCE(SUM(amount), 0)").
		Where("rider_email = ?", query.RiderEmail().String()).
		Scan(&total).Error
	if err != nil {
		return kernel.Money{}, err
	}
	return toMoney(total)
}

type withdrawalRow struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// History lists the rider's withdrawals, newest first.
func (h GetWithdrawalsQueryHandler) History(ctx context.Context, query GetWithdrawalsQuery) ([]WithdrawalView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []withdrawalRow
	err := h.db.WithContext(ctx).
		Table("withdrawals").
		Select("id, amount, created_at").
		Where("rider_email = ?", query.RiderEmail().String()).
		Order("created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	history := make([]WithdrawalView, 0, len(rows))
	for _, r := range rows {
		id, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		amount, amountErr := toMoney(r.Amount)
		if amountErr != nil {
			return nil, amountErr
		}
		history = append(history, WithdrawalView{ID: id, Amount: amount, CreatedAt: r.CreatedAt})
	}
	return history, nil
}
