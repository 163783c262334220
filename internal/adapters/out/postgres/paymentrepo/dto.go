// Package paymentrepo stores confirmed parcel payments.
package paymentrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO is the row layout of the payments table.
type PaymentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	Email         string          `gorm:"index;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TransactionID string
	PaidAt        time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Bytes(),
		ParcelID:      p.ParcelID().Bytes(),
		Email:         p.Email().String(),
		Amount:        p.Amount().Decimal(),
		TransactionID: p.TransactionID(),
		PaidAt:        p.PaidAt(),
	}
}
