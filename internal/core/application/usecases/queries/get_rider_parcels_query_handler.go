package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetRiderParcelsQueryHandler struct {
	db *gorm.DB
}

func NewGetRiderParcelsQueryHandler(db *gorm.DB) GetRiderParcelsQueryHandler {
	return GetRiderParcelsQueryHandler{db: db}
}

// Handle returns the rider's parcels, most recently assigned first.
func (h GetRiderParcelsQueryHandler) Handle(ctx context.Context, query GetRiderParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("parcels").
		Select(parcelColumns).
		Where("assigned_rider_email = ?", query.RiderEmail().String())
	if s := query.DeliveryStatus(); s != nil {
		tx = tx.Where("delivery_status = ?", int(*s))
	}

	var rows []parcelRow
	if err := tx.Order("assigned_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toParcelViews(rows)
}
