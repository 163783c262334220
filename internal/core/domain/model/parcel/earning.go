package parcel

import (
	"strings"

	"parcelhub/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// SameDistrictRate is the rider share when pickup and drop-off share a district.
	SameDistrictRate = decimal.RequireFromString("0.8")

	// CrossDistrictRate is the rider share for deliveries between districts.
	CrossDistrictRate = decimal.RequireFromString("0.3")
)

// EarnRate picks the rider share for a route. Districts are compared
// case-insensitively after trimming.
func EarnRate(senderDistrict, receiverDistrict string) decimal.Decimal {
	if strings.EqualFold(strings.TrimSpace(senderDistrict), strings.TrimSpace(receiverDistrict)) {
		return SameDistrictRate
	}
	return CrossDistrictRate
}

// RiderEarning returns totalCost × EarnRate rounded half-up to the minor unit.
func RiderEarning(totalCost kernel.Money, senderDistrict, receiverDistrict string) kernel.Money {
	return totalCost.MulRate(EarnRate(senderDistrict, receiverDistrict))
}
