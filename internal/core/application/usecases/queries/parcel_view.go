// Package queries contains read operations for retrieving system state.
// Handlers read straight from the database with SQL and return read models;
// they never load aggregates and never write.
package queries

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelView is the read model of a parcel as customers, riders and
// administrators see it.
type ParcelView struct {
	ID                 kernel.UUID
	TrackingID         string
	Title              string
	CreatedBy          string
	SenderName         string
	SenderDistrict     string
	ReceiverName       string
	ReceiverDistrict   string
	TotalCost          kernel.Money
	PaymentStatus      string
	DeliveryStatus     string
	AssignedRiderID    *kernel.UUID
	AssignedRiderEmail *string
	AssignedAt         *time.Time
	PickedAt           *time.Time
	DeliveredAt        *time.Time
	RiderEarn          *kernel.Money
	CreatedAt          time.Time
}

const parcelColumns = `
	id, tracking_id, title, created_by,
	sender_name, sender_district, receiver_name, receiver_district,
	total_cost, payment_status, delivery_status,
	assigned_rider_id, assigned_rider_email, assigned_at, picked_at, delivered_at,
	rider_earn, created_at`

type parcelRow struct {
	ID                 uuid.UUID
	TrackingID         string
	Title              string
	CreatedBy          string
	SenderName         string
	SenderDistrict     string
	ReceiverName       string
	ReceiverDistrict   string
	TotalCost          decimal.Decimal
	PaymentStatus      int
	DeliveryStatus     int
	AssignedRiderID    *uuid.UUID
	AssignedRiderEmail *string
	AssignedAt         *time.Time
	PickedAt           *time.Time
	DeliveredAt        *time.Time
	RiderEarn          decimal.NullDecimal
	CreatedAt          time.Time
}

func (r parcelRow) toView() (ParcelView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ParcelView{}, err
	}
	cost, err := toMoney(r.TotalCost)
	if err != nil {
		return ParcelView{}, err
	}

	view := ParcelView{
		ID:                 id,
		TrackingID:         r.TrackingID,
		Title:              r.Title,
		CreatedBy:          r.CreatedBy,
		SenderName:         r.SenderName,
		SenderDistrict:     r.SenderDistrict,
		ReceiverName:       r.ReceiverName,
		ReceiverDistrict:   r.ReceiverDistrict,
		TotalCost:          cost,
		PaymentStatus:      parcel.PaymentStatus(r.PaymentStatus).String(),
		DeliveryStatus:     parcel.DeliveryStatus(r.DeliveryStatus).String(),
		AssignedRiderEmail: r.AssignedRiderEmail,
		AssignedAt:         r.AssignedAt,
		PickedAt:           r.PickedAt,
		DeliveredAt:        r.DeliveredAt,
		CreatedAt:          r.CreatedAt,
	}

	if r.AssignedRiderID != nil {
		riderID, idErr := kernel.UUIDFromBytes(r.AssignedRiderID[:])
		if idErr != nil {
			return ParcelView{}, idErr
		}
		view.AssignedRiderID = &riderID
	}
	if r.RiderEarn.Valid {
		earn, earnErr := toMoney(r.RiderEarn.Decimal)
		if earnErr != nil {
			return ParcelView{}, earnErr
		}
		view.RiderEarn = &earn
	}
	return view, nil
}

func toParcelViews(rows []parcelRow) ([]ParcelView, error) {
	views := make([]ParcelView, 0, len(rows))
	for _, r := range rows {
		v, err := r.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// toMoney rounds away the float drift some drivers introduce on numeric sums.
func toMoney(d decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(d.Round(kernel.MinorUnitPlaces))
}
