package parcelrepo

import (
	"context"
	"errors"

	"parcelhub/internal/adapters/out/postgres/pgerr"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("trackingId", dto.TrackingID, err)
		}
		return pgerr.Translate("add parcel", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every mutable column, including the ones cleared to NULL
// when an assignment is dropped.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate("update parcel", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcelId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a parcel by ID with SELECT ... FOR UPDATE.
func (r *GormParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormParcelRepository) get(_ context.Context, db *gorm.DB, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := db.Where("id = ?", id.Bytes()).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcelId", id.String())
		}
		return nil, pgerr.Translate("get parcel", err)
	}

	return toDomain(dto)
}

// Delete removes a parcel by ID.
func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&ParcelDTO{})
	if result.Error != nil {
		return pgerr.Translate("delete parcel", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcelId", id.String())
	}
	return nil
}

// TotalEarnedByRider sums rider_earn of the rider's completed parcels.
func (r *GormParcelRepository) TotalEarnedByRider(ctx context.Context, riderEmail kernel.Email) (kernel.Money, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Select("COALESCE(SUM(rider_earn), 0)").
		Where("assigned_rider_email = ? AND delivery_status = ?", riderEmail.String(), int(parcel.Completed)).
		Scan(&total).Error
	if err != nil {
		return kernel.Money{}, pgerr.Translate("sum rider earnings", err)
	}
	return kernel.NewMoney(total.Round(kernel.MinorUnitPlaces))
}
