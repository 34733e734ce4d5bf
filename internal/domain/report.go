package domain

import (
	"context"
	"time"
)

// Report is a citizen-submitted infrastructure issue. The report store is
// the source of truth; this service only reads reports and derives
// knowledge documents from them.
type Report struct {
	ID          string         `bson:"_id"`
	Title       string         `bson:"title"`
	Category    string         `bson:"category"`
	Status      string         `bson:"status"`
	Priority    string         `bson:"priority"`
	Location    string         `bson:"location"`
	Description string         `bson:"description"`
	CreatedAt   time.Time      `bson:"createdAt"`
	Updates     []ReportUpdate `bson:"updates,omitempty"`
}

// ReportUpdate is one entry in a report's status history.
type ReportUpdate struct {
	Status    string    `bson:"status"`
	Note      string    `bson:"note,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Well-known report statuses.
const (
	ReportStatusPending    = "pending"
	ReportStatusInProgress = "in-progress"
	ReportStatusResolved   = "resolved"
)

// ReportFilter narrows a report store query. Category and Status match by
// exact equality, Location by case-insensitive substring containment.
// Zero-value fields are ignored.
type ReportFilter struct {
	Category string
	Location string
	Status   string
}

// ReportStore abstracts the external report collection. Implementations
// must translate connectivity failures into ErrSourceUnavailable so callers
// can decide between degrading and surfacing a 503.
type ReportStore interface {
	FindAll(ctx context.Context, filter ReportFilter, limit int64) ([]Report, error)
}
