package riderrepo

import (
	"context"
	"errors"

	"parcelhub/internal/adapters/out/postgres/pgerr"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRiderRepository implements ports.RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRiderRepository creates a new GORM rider repository.
func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rider application. A second application for the same
// e-mail is reported as ObjectAlreadyExistsError.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("rider", dto.Email, err)
		}
		return pgerr.Translate("add rider", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing rider.
func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RiderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "email", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate("update rider", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("riderId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rider by ID.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.take(r.db.WithContext(ctx), "riderId", id.String(), "id = ?", id.Bytes())
}

// GetForUpdate retrieves a rider by ID and locks the row.
func (r *GormRiderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.take(r.locked(ctx), "riderId", id.String(), "id = ?", id.Bytes())
}

// GetByEmail retrieves the rider registered under email.
func (r *GormRiderRepository) GetByEmail(ctx context.Context, email kernel.Email) (*rider.Rider, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}
	return r.take(r.db.WithContext(ctx), "riderEmail", email.String(), "email = ?", email.String())
}

// GetByEmailForUpdate retrieves the rider registered under email and locks the row.
func (r *GormRiderRepository) GetByEmailForUpdate(ctx context.Context, email kernel.Email) (*rider.Rider, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}
	return r.take(r.locked(ctx), "riderEmail", email.String(), "email = ?", email.String())
}

// GetAll retrieves every rider ordered by application time.
func (r *GormRiderRepository) GetAll(ctx context.Context) ([]*rider.Rider, error) {
	var dtos []RiderDTO
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate("list riders", err)
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		rd, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, rd)
	}

	return riders, nil
}

func (r *GormRiderRepository) locked(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *GormRiderRepository) take(db *gorm.DB, param, value string, query string, args ...any) (*rider.Rider, error) {
	var dto RiderDTO
	if err := db.Where(query, args...).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, value)
		}
		return nil, pgerr.Translate("get rider", err)
	}
	return toDomain(dto)
}
