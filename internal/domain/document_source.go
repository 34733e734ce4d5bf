package domain

import "context"

// ReportDocumentSource loads report-derived knowledge documents. It never
// mutates the document store; callers decide whether to upsert what it
// returns. Load failures are reported as ErrSourceUnavailable.
type ReportDocumentSource interface {
	LoadAllAsDocuments(ctx context.Context) ([]KnowledgeDocument, error)
	LoadByCategory(ctx context.Context, category string) ([]KnowledgeDocument, error)
	LoadByLocation(ctx context.Context, location string) ([]KnowledgeDocument, error)
	LoadByStatus(ctx context.Context, status string) ([]KnowledgeDocument, error)
	LoadFiltered(ctx context.Context, filter ReportFilter) ([]KnowledgeDocument, error)
}
