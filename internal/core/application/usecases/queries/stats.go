package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ParcelStats aggregates a set of parcels. Every known status appears in the
// maps, with zero when no parcel has it.
type ParcelStats struct {
	Total            int64            `json:"total"`
	ByDeliveryStatus map[string]int64 `json:"byDeliveryStatus"`
	ByPaymentStatus  map[string]int64 `json:"byPaymentStatus"`
	Revenue          decimal.Decimal  `json:"revenue"`
	RiderEarnings    decimal.Decimal  `json:"riderEarnings"`
	Margin           decimal.Decimal  `json:"margin"`
}

type statusCount struct {
	Status int
	Total  int64
}

type parcelSums struct {
	Revenue       decimal.Decimal
	RiderEarnings decimal.Decimal
	Margin        decimal.Decimal
}

// aggregateParcels computes ParcelStats over the parcels selected by scope,
// running the three aggregate statements concurrently.
func aggregateParcels(ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB) (ParcelStats, error) {
	var (
		byDelivery []statusCount
		byPayment  []statusCount
		sums       parcelSums
	)

	g, gctx := errgroup.WithContext(ctx)
	parcels := func() *gorm.DB {
		return db.WithContext(gctx).Table("parcels").Scopes(scope)
	}

	g.Go(func() error {
		return parcels().
			Select("delivery_status AS status, COUNT(*) AS total").
			Group("delivery_status").
			Scan(&byDelivery).Error
	})
	g.Go(func() error {
		return parcels().
			Select("payment_status AS status, COUNT(*) AS total").
			Group("payment_status").
			Scan(&byPayment).Error
	})
	g.Go(func() error {
		return parcels().
			Select(`
				COALESCE(SUM(CASE WHEN payment_status = ? THEN total_cost ELSE 0 END), 0) AS revenue,
				COALESCE(SUM(CASE WHEN delivery_status = ? THEN rider_earn ELSE 0 END), 0) AS rider_earnings,
				COALESCE(SUM(CASE WHEN payment_status = ? AND delivery_status = ?
					THEN total_cost - rider_earn ELSE 0 END), 0) AS margin`,
				int(parcel.Paid), int(parcel.Completed), int(parcel.Paid), int(parcel.Completed),
			).
			Scan(&sums).Error
	})

	if err := g.Wait(); err != nil {
		return ParcelStats{}, err
	}

	stats := ParcelStats{
		ByDeliveryStatus: map[string]int64{},
		ByPaymentStatus:  map[string]int64{},
		Revenue:          roundMinor(sums.Revenue),
		RiderEarnings:    roundMinor(sums.RiderEarnings),
		Margin:           roundMinor(sums.Margin),
	}
	for _, s := range []parcel.DeliveryStatus{
		parcel.Created, parcel.RiderAssign, parcel.InTransit, parcel.Completed, parcel.NotCollected,
	} {
		stats.ByDeliveryStatus[s.String()] = 0
	}
	for _, s := range []parcel.PaymentStatus{parcel.Unpaid, parcel.Paid} {
		stats.ByPaymentStatus[s.String()] = 0
	}
	for _, c := range byDelivery {
		stats.ByDeliveryStatus[parcel.DeliveryStatus(c.Status).String()] += c.Total
		stats.Total += c.Total
	}
	for _, c := range byPayment {
		stats.ByPaymentStatus[parcel.PaymentStatus(c.Status).String()] += c.Total
	}
	return stats, nil
}

func sumWithdrawals(ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.WithContext(ctx).
		Table("withdrawals").
		Scopes(scope).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return roundMinor(total), err
}

func allRows(db *gorm.DB) *gorm.DB { return db }

func roundMinor(d decimal.Decimal) decimal.Decimal {
	return d.Round(kernel.MinorUnitPlaces)
}
