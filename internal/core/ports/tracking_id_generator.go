package ports

// TrackingIDGenerator issues customer-facing tracking numbers.
type TrackingIDGenerator interface {
	Next() string
}
