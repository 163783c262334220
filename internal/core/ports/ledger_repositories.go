package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/payment"
	"parcelhub/internal/core/domain/model/tracking"
	"parcelhub/internal/core/domain/model/withdrawal"
)

// PaymentRepository stores immutable payment records.
type PaymentRepository interface {
	Add(ctx context.Context, record *payment.Payment) error
}

// TrackingRepository appends to the tracking log. Events are never updated
// or deleted.
type TrackingRepository interface {
	Add(ctx context.Context, event *tracking.Event) error
}

// WithdrawalRepository appends rider cash-outs and sums them.
type WithdrawalRepository interface {
	Add(ctx context.Context, record *withdrawal.Withdrawal) error

	// TotalByRider sums every withdrawal of the rider. Returns zero, not an
	// error, for a rider without withdrawals.
	TotalByRider(ctx context.Context, riderEmail kernel.Email) (kernel.Money, error)
}
