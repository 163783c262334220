package queries

import (
	"context"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rider"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetRidersQueryHandler struct {
	db *gorm.DB
}

func NewGetRidersQueryHandler(db *gorm.DB) GetRidersQueryHandler {
	return GetRidersQueryHandler{db: db}
}

type riderRow struct {
	ID         uuid.UUID
	Email      string
	Name       string
	District   string
	Phone      string
	Status     int
	WorkStatus int
	CreatedAt  time.Time
}

// Handle returns matching riders, newest application first.
func (h GetRidersQueryHandler) Handle(ctx context.Context, query GetRidersQuery) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("riders").
		Select("id, email, name, district, phone, status, work_status, created_at")
	if s := query.Status(); s != nil {
		tx = tx.Where("status = ?", int(*s))
	}
	if search := query.Search(); search != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var rows []riderRow
	if err := tx.Order("created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	riders := make([]RiderView, 0, len(rows))
	for _, r := range rows {
		id, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		riders = append(riders, RiderView{
			ID:         id,
			Email:      r.Email,
			Name:       r.Name,
			District:   r.District,
			Phone:      r.Phone,
			Status:     rider.Status(r.Status).String(),
			WorkStatus: rider.WorkStatus(r.WorkStatus).String(),
			CreatedAt:  r.CreatedAt,
		})
	}
	return riders, nil
}
