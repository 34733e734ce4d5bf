package usecase

import (
	"context"

	"nagrik-rag/internal/domain"
)

// AnalyticsUsecase computes summary statistics over the report corpus.
type AnalyticsUsecase interface {
	Execute(ctx context.Context) (*domain.ReportAnalytics, error)
}

type analyticsUsecase struct {
	store domain.ReportStore
}

// NewAnalyticsUsecase creates an analytics usecase over the report store.
func NewAnalyticsUsecase(store domain.ReportStore) AnalyticsUsecase {
	return &analyticsUsecase{store: store}
}

// Execute aggregates the full report corpus. When the store is
// unreachable the error carries domain.ErrSourceUnavailable so the caller
// can surface an explicit unavailable condition rather than reporting zero
// reports.
func (u *analyticsUsecase) Execute(ctx context.Context) (*domain.ReportAnalytics, error) {
	reports, err := u.store.FindAll(ctx, domain.ReportFilter{}, 0)
	if err != nil {
		return nil, err
	}

	analytics := domain.AggregateReports(reports)
	return &analytics, nil
}
