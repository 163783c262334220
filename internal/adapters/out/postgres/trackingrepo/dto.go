// Package trackingrepo stores the append-only parcel tracking log.
package trackingrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/tracking"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventDTO is the row layout of the tracking_events table. Details are
// kept as a JSON document.
type EventDTO struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	TrackingID string            `gorm:"index;not null"`
	Status     string            `gorm:"not null"`
	Details    datatypes.JSONMap `gorm:"type:jsonb"`
	UpdatedBy  string            `gorm:"not null"`
	CreatedAt  time.Time         `gorm:"index;not null"`
}

// TableName overrides GORM's default naming convention.
func (EventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(e *tracking.Event) EventDTO {
	return EventDTO{
		ID:         e.ID().Bytes(),
		TrackingID: e.TrackingID(),
		Status:     e.Status(),
		Details:    datatypes.JSONMap(e.Details()),
		UpdatedBy:  e.UpdatedBy().String(),
		CreatedAt:  e.CreatedAt(),
	}
}
