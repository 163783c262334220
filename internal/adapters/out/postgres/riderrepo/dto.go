// Package riderrepo maps the Rider aggregate onto the riders table.
package riderrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO is the row layout of the riders table. One application per e-mail.
type RiderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"uniqueIndex;not null"`
	Name       string
	District   string
	Phone      string
	Status     int       `gorm:"index;not null"`
	WorkStatus int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(r *rider.Rider) RiderDTO {
	p := r.Profile()
	return RiderDTO{
		ID:         r.ID().Bytes(),
		Email:      r.Email().String(),
		Name:       p.Name,
		District:   p.District,
		Phone:      p.Phone,
		Status:     int(r.Status()),
		WorkStatus: int(r.WorkStatus()),
		CreatedAt:  r.CreatedAt(),
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(
		id,
		email,
		rider.Profile{Name: dto.Name, District: dto.District, Phone: dto.Phone},
		rider.Status(dto.Status),
		rider.WorkStatus(dto.WorkStatus),
		dto.CreatedAt,
	)
}
