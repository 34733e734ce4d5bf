package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"nagrik-rag/internal/domain"
)

// RetrieveDocumentsInput defines the input parameters for retrieval.
type RetrieveDocumentsInput struct {
	Query      string
	Filter     domain.ReportFilter
	MaxResults int
}

// RetrieveDocumentsOutput carries the ranked results and whether the
// report source was unreachable during the refresh step.
type RetrieveDocumentsOutput struct {
	Results        []domain.ScoredDocument
	SourceDegraded bool
}

// RetrieveDocumentsUsecase refreshes the document store from the report
// source and ranks documents against a query.
type RetrieveDocumentsUsecase interface {
	Execute(ctx context.Context, input RetrieveDocumentsInput) (*RetrieveDocumentsOutput, error)
	SearchByFilter(ctx context.Context, filter domain.ReportFilter, limit int) ([]domain.KnowledgeDocument, error)
	Refresh(ctx context.Context) error
}

type retrieveDocumentsUsecase struct {
	store  *domain.DocumentStore
	source domain.ReportDocumentSource
	scorer domain.KeywordScorer
	logger *slog.Logger
}

// NewRetrieveDocumentsUsecase creates a retrieval usecase over the shared
// document store.
func NewRetrieveDocumentsUsecase(
	store *domain.DocumentStore,
	source domain.ReportDocumentSource,
	scorer domain.KeywordScorer,
	logger *slog.Logger,
) RetrieveDocumentsUsecase {
	return &retrieveDocumentsUsecase{
		store:  store,
		source: source,
		scorer: scorer,
		logger: logger,
	}
}

// Execute runs one retrieval pass: refresh report-derived documents, then
// score a snapshot of the store against the query. A report-source outage
// degrades to the static document set instead of failing the query.
func (u *retrieveDocumentsUsecase) Execute(ctx context.Context, input RetrieveDocumentsInput) (*RetrieveDocumentsOutput, error) {
	out := &RetrieveDocumentsOutput{}

	if strings.TrimSpace(input.Query) == "" {
		return out, nil
	}

	docs, err := u.loadForFilter(ctx, input.Filter)
	switch {
	case err == nil:
		for _, doc := range docs {
			u.store.Upsert(doc)
		}
	case errors.Is(err, domain.ErrSourceUnavailable):
		u.logger.Warn("report source unavailable, retrieval falls back to static documents", "error", err)
		out.SourceDegraded = true
	default:
		return nil, err
	}

	out.Results = u.scorer.Search(input.Query, u.store.GetAll(), input.MaxResults)
	return out, nil
}

// SearchByFilter returns report-derived documents matching the filter,
// newest first, capped at limit. Unlike Execute, a report-source outage is
// surfaced to the caller.
func (u *retrieveDocumentsUsecase) SearchByFilter(ctx context.Context, filter domain.ReportFilter, limit int) ([]domain.KnowledgeDocument, error) {
	docs, err := u.loadForFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

// Refresh pulls all report-derived documents into the store. Used by the
// background refresher between queries.
func (u *retrieveDocumentsUsecase) Refresh(ctx context.Context) error {
	docs, err := u.source.LoadAllAsDocuments(ctx)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		u.store.Upsert(doc)
	}
	u.logger.Debug("document store refreshed", "reports", len(docs), "total", u.store.Len())
	return nil
}

func (u *retrieveDocumentsUsecase) loadForFilter(ctx context.Context, filter domain.ReportFilter) ([]domain.KnowledgeDocument, error) {
	if filter == (domain.ReportFilter{}) {
		return u.source.LoadAllAsDocuments(ctx)
	}
	return u.source.LoadFiltered(ctx, filter)
}
