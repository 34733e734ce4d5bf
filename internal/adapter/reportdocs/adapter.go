// Package reportdocs maps citizen reports onto knowledge documents so the
// retriever can rank live report data alongside the static knowledge base.
package reportdocs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"nagrik-rag/internal/domain"
)

const (
	cacheSize = 64
	cacheTTL  = 30 * time.Second
)

// Adapter converts reports from the report store into knowledge documents.
// Fetch results are cached briefly so a burst of queries does not hammer
// Mongo; the store remains the source of truth and the cache is best
// effort.
type Adapter struct {
	store      domain.ReportStore
	fetchLimit int64
	cache      *expirable.LRU[string, []domain.KnowledgeDocument]
	logger     *slog.Logger
}

// NewAdapter creates an adapter over the given report store. fetchLimit
// caps unfiltered loads; zero means unlimited.
func NewAdapter(store domain.ReportStore, fetchLimit int64, logger *slog.Logger) *Adapter {
	return &Adapter{
		store:      store,
		fetchLimit: fetchLimit,
		cache:      expirable.NewLRU[string, []domain.KnowledgeDocument](cacheSize, nil, cacheTTL),
		logger:     logger,
	}
}

// LoadAllAsDocuments fetches every report (up to the configured limit) and
// maps each to a knowledge document. The document store is not touched;
// the caller decides whether to upsert. Returns
// domain.ErrSourceUnavailable when the store cannot be reached.
func (a *Adapter) LoadAllAsDocuments(ctx context.Context) ([]domain.KnowledgeDocument, error) {
	return a.load(ctx, domain.ReportFilter{})
}

// LoadByCategory maps reports whose category equals category exactly.
func (a *Adapter) LoadByCategory(ctx context.Context, category string) ([]domain.KnowledgeDocument, error) {
	return a.load(ctx, domain.ReportFilter{Category: category})
}

// LoadByLocation maps reports whose location contains the given substring,
// case-insensitively.
func (a *Adapter) LoadByLocation(ctx context.Context, location string) ([]domain.KnowledgeDocument, error) {
	return a.load(ctx, domain.ReportFilter{Location: location})
}

// LoadByStatus maps reports whose status equals status exactly.
func (a *Adapter) LoadByStatus(ctx context.Context, status string) ([]domain.KnowledgeDocument, error) {
	return a.load(ctx, domain.ReportFilter{Status: status})
}

// LoadFiltered maps reports matching every set field of the filter.
func (a *Adapter) LoadFiltered(ctx context.Context, filter domain.ReportFilter) ([]domain.KnowledgeDocument, error) {
	return a.load(ctx, filter)
}

func (a *Adapter) load(ctx context.Context, filter domain.ReportFilter) ([]domain.KnowledgeDocument, error) {
	key := cacheKey(filter)
	if docs, ok := a.cache.Get(key); ok {
		return docs, nil
	}

	reports, err := a.store.FindAll(ctx, filter, a.fetchLimit)
	if err != nil {
		return nil, err
	}

	docs := make([]domain.KnowledgeDocument, 0, len(reports))
	for _, r := range reports {
		docs = append(docs, MapReport(r))
	}

	a.cache.Add(key, docs)
	a.logger.Debug("mapped reports to documents", "count", len(docs), "filter", key)
	return docs, nil
}

// MapReport converts one report into its knowledge document. A report maps
// to exactly one document whose ID is the report ID, so re-mapping an
// updated report replaces the earlier document in the store.
func MapReport(r domain.Report) domain.KnowledgeDocument {
	content := r.Title
	if desc := strings.TrimSpace(r.Description); desc != "" {
		content = r.Title + "\n" + desc
	}

	return domain.KnowledgeDocument{
		ID:       r.ID,
		Title:    r.Title,
		Content:  content,
		Category: r.Category,
		Metadata: map[string]string{
			"status":   r.Status,
			"priority": r.Priority,
			"location": r.Location,
			"source":   "report",
		},
		Timestamp: r.CreatedAt,
	}
}

func cacheKey(f domain.ReportFilter) string {
	return fmt.Sprintf("c=%s|l=%s|s=%s", f.Category, strings.ToLower(f.Location), f.Status)
}
