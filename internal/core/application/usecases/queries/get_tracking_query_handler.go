package queries

import (
	"context"
	"encoding/json"
	"time"

	"parcelhub/internal/pkg/errs"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GetTrackingQueryHandler struct {
	db *gorm.DB
}

func NewGetTrackingQueryHandler(db *gorm.DB) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{db: db}
}

type trackingRow struct {
	TrackingID string
	Status     string
	Details    datatypes.JSONMap
	UpdatedBy  string
	CreatedAt  time.Time
}

// Handle returns the history oldest first. An unknown tracking id yields an
// ObjectNotFoundError rather than an empty list.
func (h GetTrackingQueryHandler) Handle(ctx context.Context, query GetTrackingQuery) ([]TrackingEventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []trackingRow
	err := h.db.WithContext(ctx).
		Table("tracking_events").
		Select("tracking_id, status, details, updated_by, created_at").
		Where("tracking_id = ?", query.TrackingID()).
		Order("created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("trackingId", query.TrackingID())
	}

	events := make([]TrackingEventView, 0, len(rows))
	for _, r := range rows {
		details := map[string]any{}
		for k, v := range r.Details {
			details[k] = nativeJSON(v)
		}
		events = append(events, TrackingEventView{
			TrackingID: r.TrackingID,
			Status:     r.Status,
			Details:    details,
			UpdatedBy:  r.UpdatedBy,
			CreatedAt:  r.CreatedAt,
		})
	}
	return events, nil
}

// nativeJSON turns the json.Number values JSONMap decodes into int64 or
// float64, descending into nested objects and arrays.
func nativeJSON(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = nativeJSON(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = nativeJSON(e)
		}
		return out
	default:
		return v
	}
}
