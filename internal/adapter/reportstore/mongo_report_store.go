// Package reportstore reads citizen reports from MongoDB. The report
// collection is owned by the CRUD backend; this service only queries it.
package reportstore

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nagrik-rag/internal/domain"
)

type MongoReportStore struct {
	collection *mongo.Collection
	timeout    time.Duration
	logger     *slog.Logger
}

// NewMongoReportStore creates a report store over the given collection.
// Every query is bounded by timeout so an unreachable Mongo degrades the
// caller instead of hanging it.
func NewMongoReportStore(client *mongo.Client, database, collection string, timeout time.Duration, logger *slog.Logger) *MongoReportStore {
	return &MongoReportStore{
		collection: client.Database(database).Collection(collection),
		timeout:    timeout,
		logger:     logger,
	}
}

// FindAll fetches reports matching the filter, newest first, capped at
// limit when limit > 0. Connectivity failures are translated to
// domain.ErrSourceUnavailable.
func (s *MongoReportStore) FindAll(ctx context.Context, filter domain.ReportFilter, limit int64) ([]domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Location != "" {
		// Case-insensitive substring containment. The user input is
		// quoted so it can never be interpreted as a pattern.
		query["location"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Location),
			Options: "i",
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.collection.Find(ctx, query, opts)
	if err != nil {
		s.logger.Warn("report store query failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer cursor.Close(ctx)

	var reports []domain.Report
	if err := cursor.All(ctx, &reports); err != nil {
		s.logger.Warn("report store decode failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	return reports, nil
}

var _ domain.ReportStore = (*MongoReportStore)(nil)
