// Package withdrawalrepo stores rider cash-outs.
package withdrawalrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/withdrawal"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalDTO is the row layout of the withdrawals table.
type WithdrawalDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RiderEmail string          `gorm:"index;not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (WithdrawalDTO) TableName() string {
	return "withdrawals"
}

func fromDomain(w *withdrawal.Withdrawal) WithdrawalDTO {
	return WithdrawalDTO{
		ID:         w.ID().Bytes(),
		RiderEmail: w.RiderEmail().String(),
		Amount:     w.Amount().Decimal(),
		CreatedAt:  w.CreatedAt(),
	}
}
