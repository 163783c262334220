package ports

import (
	"context"
	"time"
)

// StatsCache stores serialized dashboard read models for a short time.
// A miss is reported with found == false and a nil error.
type StatsCache interface {
	Get(ctx context.Context, key string, dest any) (found bool, err error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
