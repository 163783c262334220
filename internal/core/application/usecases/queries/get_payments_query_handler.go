package queries

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewGetPaymentsQueryHandler(db *gorm.DB) GetPaymentsQueryHandler {
	return GetPaymentsQueryHandler{db: db}
}

// Handle returns the payer's payments, newest first.
func (h GetPaymentsQueryHandler) Handle(ctx context.Context, query GetPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Email().IsEqual(query.Requester()) {
		return nil, errs.NewForbiddenError("read payments of " + query.Email().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			email,
			amount,
			transaction_id,
			paid_at
		FROM payments
		WHERE email = ?
		ORDER BY paid_at DESC
	`, query.Email().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentView, 0)
	for rows.Next() {
		var (
			id, parcelID uuid.UUID
			amount       decimal.Decimal
			view         PaymentView
			paidAt       time.Time
		)
		if err = rows.Scan(&id, &parcelID, &view.Email, &amount, &view.TransactionID, &paidAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.ParcelID, err = kernel.UUIDFromBytes(parcelID[:]); err != nil {
			return nil, err
		}
		if view.Amount, err = toMoney(amount); err != nil {
			return nil, err
		}
		view.PaidAt = paidAt
		payments = append(payments, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
