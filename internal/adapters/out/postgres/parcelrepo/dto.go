// Package parcelrepo maps the Parcel aggregate onto the parcels table.
package parcelrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO is the row layout of the parcels table. Money columns are
// numeric(12,2); statuses are stored as their integer codes.
type ParcelDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID         string    `gorm:"uniqueIndex;not null"`
	CreatedBy          string    `gorm:"index;not null"`
	Title              string
	SenderName         string
	SenderDistrict     string `gorm:"not null"`
	ReceiverName       string
	ReceiverDistrict   string          `gorm:"not null"`
	TotalCost          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentStatus      int             `gorm:"index;not null"`
	DeliveryStatus     int             `gorm:"index;not null"`
	AssignedRiderID    *uuid.UUID      `gorm:"type:uuid;index"`
	AssignedRiderEmail *string         `gorm:"index"`
	AssignedAt         *time.Time
	PickedAt           *time.Time
	DeliveredAt        *time.Time
	RiderEarn          decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	CreatedAt          time.Time           `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	d := p.Details()
	dto := ParcelDTO{
		ID:               p.ID().Bytes(),
		TrackingID:       p.TrackingID(),
		CreatedBy:        p.CreatedBy().String(),
		Title:            d.Title,
		SenderName:       d.SenderName,
		SenderDistrict:   d.SenderDistrict,
		ReceiverName:     d.ReceiverName,
		ReceiverDistrict: d.ReceiverDistrict,
		TotalCost:        p.TotalCost().Decimal(),
		PaymentStatus:    int(p.PaymentStatus()),
		DeliveryStatus:   int(p.DeliveryStatus()),
		PickedAt:         p.PickedAt(),
		DeliveredAt:      p.DeliveredAt(),
		CreatedAt:        p.CreatedAt(),
	}

	if a := p.Assignment(); a != nil {
		riderID := a.RiderID.Bytes()
		riderEmail := a.RiderEmail.String()
		assignedAt := a.AssignedAt
		dto.AssignedRiderID = &riderID
		dto.AssignedRiderEmail = &riderEmail
		dto.AssignedAt = &assignedAt
	}

	if earn := p.RiderEarn(); earn != nil {
		dto.RiderEarn = decimal.NewNullDecimal(earn.Decimal())
	}

	return dto
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.NewEmail(dto.CreatedBy)
	if err != nil {
		return nil, err
	}

	totalCost, err := kernel.NewMoney(dto.TotalCost)
	if err != nil {
		return nil, err
	}

	var assignment *parcel.Assignment
	if dto.AssignedRiderID != nil && dto.AssignedRiderEmail != nil {
		riderID, idErr := kernel.UUIDFromBytes(dto.AssignedRiderID[:])
		if idErr != nil {
			return nil, idErr
		}
		riderEmail, emailErr := kernel.NewEmail(*dto.AssignedRiderEmail)
		if emailErr != nil {
			return nil, emailErr
		}
		assignment = &parcel.Assignment{RiderID: riderID, RiderEmail: riderEmail}
		if dto.AssignedAt != nil {
			assignment.AssignedAt = *dto.AssignedAt
		}
	}

	var riderEarn *kernel.Money
	if dto.RiderEarn.Valid {
		earn, earnErr := kernel.NewMoney(dto.RiderEarn.Decimal)
		if earnErr != nil {
			return nil, earnErr
		}
		riderEarn = &earn
	}

	return parcel.RestoreParcel(parcel.Snapshot{
		ID:         id,
		TrackingID: dto.TrackingID,
		CreatedBy:  createdBy,
		Details: parcel.Details{
			Title:            dto.Title,
			SenderName:       dto.SenderName,
			SenderDistrict:   dto.SenderDistrict,
			ReceiverName:     dto.ReceiverName,
			ReceiverDistrict: dto.ReceiverDistrict,
		},
		TotalCost:      totalCost,
		PaymentStatus:  parcel.PaymentStatus(dto.PaymentStatus),
		DeliveryStatus: parcel.DeliveryStatus(dto.DeliveryStatus),
		Assignment:     assignment,
		PickedAt:       dto.PickedAt,
		DeliveredAt:    dto.DeliveredAt,
		RiderEarn:      riderEarn,
		CreatedAt:      dto.CreatedAt,
	})
}
