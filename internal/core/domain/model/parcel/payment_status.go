package parcel

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// PaymentStatus records whether the customer has paid for the parcel.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	Unpaid
	Paid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "unknown",
		Unpaid:         "unpaid",
		Paid:           "paid",
	}
}

// ParsePaymentStatus maps a wire string onto a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "unpaid":
		return Unpaid, nil
	case "paid":
		return Paid, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%q is not a payment status", s),
		)
	}
}

func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects PaymentUnknown and out-of-range values.
func (s PaymentStatus) Validate() error {
	if s != Unpaid && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}
