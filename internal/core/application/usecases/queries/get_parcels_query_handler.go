package queries

import (
	"context"

	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelsQueryHandler reads the parcel list.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle returns matching parcels ordered by creation time, newest first.
// A non-admin asking for someone else's parcels gets a ForbiddenError.
func (h GetParcelsQueryHandler) Handle(ctx context.Context, query GetParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	email := query.Email()
	if !query.RequesterIsAdmin() {
		if email != nil && !email.IsEqual(query.Requester()) {
			return nil, errs.NewForbiddenError("list parcels of " + email.String())
		}
		requester := query.Requester()
		email = &requester
	}

	tx := h.db.WithContext(ctx).Table("parcels").Select(parcelColumns)
	if email != nil {
		tx = tx.Where("created_by = ?", email.String())
	}
	if s := query.DeliveryStatus(); s != nil {
		tx = tx.Where("delivery_status = ?", int(*s))
	}
	if s := query.PaymentStatus(); s != nil {
		tx = tx.Where("payment_status = ?", int(*s))
	}

	var rows []parcelRow
	if err := tx.Order("created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toParcelViews(rows)
}
