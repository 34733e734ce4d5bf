package rag_http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"nagrik-rag/internal/domain"
	"nagrik-rag/internal/usecase"
)

type Handler struct {
	answerUsecase    usecase.AnswerQueryUsecase
	retrieveUsecase  usecase.RetrieveDocumentsUsecase
	analyticsUsecase usecase.AnalyticsUsecase
	searchLimit      int
}

func NewHandler(
	answerUsecase usecase.AnswerQueryUsecase,
	retrieveUsecase usecase.RetrieveDocumentsUsecase,
	analyticsUsecase usecase.AnalyticsUsecase,
	searchLimit int,
) *Handler {
	return &Handler{
		answerUsecase:    answerUsecase,
		retrieveUsecase:  retrieveUsecase,
		analyticsUsecase: analyticsUsecase,
		searchLimit:      searchLimit,
	}
}

// QueryConfigRequest mirrors the recognized per-request options.
type QueryConfigRequest struct {
	Category             string  `json:"category,omitempty"`
	Location             string  `json:"location,omitempty"`
	Status               string  `json:"status,omitempty"`
	Temperature          float64 `json:"temperature,omitempty"`
	MaxDocuments         int     `json:"maxDocuments,omitempty"`
	Voice                bool    `json:"voice,omitempty"`
	IncludeIndianContext bool    `json:"includeIndianContext,omitempty"`
	RegionalContext      string  `json:"regionalContext,omitempty"`
	GovernanceContext    bool    `json:"governanceContext,omitempty"`
	UserSpecific         bool    `json:"userSpecific,omitempty"`
	UserID               string  `json:"userId,omitempty"`
}

type QueryRequest struct {
	Query  string              `json:"query"`
	Config *QueryConfigRequest `json:"config,omitempty"`
}

type SourceResponse struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Category string            `json:"category"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type QueryResponse struct {
	Answer         string           `json:"answer"`
	Sources        []SourceResponse `json:"sources"`
	Confidence     float64          `json:"confidence"`
	ContextUsed    []string         `json:"contextUsed,omitempty"`
	Suggestions    []string         `json:"suggestions,omitempty"`
	RelatedIssues  []string         `json:"relatedIssues,omitempty"`
	EscalationPath []string         `json:"escalationPath,omitempty"`
	RequestID      string           `json:"requestId"`
	Degraded       bool             `json:"degraded,omitempty"`
}

// Answer a query with RAG generation
// (POST /v1/rag/query)
func (h *Handler) Query(ctx echo.Context) error {
	var req QueryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if strings.TrimSpace(req.Query) == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "query is required"})
	}

	input := usecase.AnswerQueryInput{Query: req.Query}
	if req.Config != nil {
		input.Config = usecase.QueryConfig{
			Category:             req.Config.Category,
			Location:             req.Config.Location,
			Status:               req.Config.Status,
			Temperature:          req.Config.Temperature,
			MaxDocuments:         req.Config.MaxDocuments,
			Voice:                req.Config.Voice,
			IncludeIndianContext: req.Config.IncludeIndianContext,
			RegionalContext:      req.Config.RegionalContext,
			GovernanceContext:    req.Config.GovernanceContext,
			UserSpecific:         req.Config.UserSpecific,
			UserID:               req.Config.UserID,
		}
	}

	output, err := h.answerUsecase.Execute(ctx.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuery):
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "query is required"})
		case errors.Is(err, domain.ErrGenerationUnavailable):
			return ctx.JSON(http.StatusInternalServerError, map[string]string{
				"error":   "answer generation failed",
				"details": err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, map[string]string{
				"error":   "internal error",
				"details": err.Error(),
			})
		}
	}

	sources := make([]SourceResponse, 0, len(output.Sources))
	for _, s := range output.Sources {
		sources = append(sources, SourceResponse{
			ID:       s.ID,
			Title:    s.Title,
			Category: s.Category,
			Content:  s.Content,
			Metadata: s.Metadata,
		})
	}

	return ctx.JSON(http.StatusOK, QueryResponse{
		Answer:         output.Answer,
		Sources:        sources,
		Confidence:     output.Confidence,
		ContextUsed:    output.ContextUsed,
		Suggestions:    output.Suggestions,
		RelatedIssues:  output.RelatedIssues,
		EscalationPath: output.EscalationPath,
		RequestID:      output.RequestID,
		Degraded:       output.Degraded,
	})
}

// Report corpus analytics
// (GET /v1/rag/analytics)
func (h *Handler) Analytics(ctx echo.Context) error {
	analytics, err := h.analyticsUsecase.Execute(ctx.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			// Unavailability is a distinct condition, never conflated
			// with zero reports.
			return ctx.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"error":     "report store unavailable",
				"analytics": nil,
			})
		}
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "internal error",
			"details": err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, analytics)
}

type SearchRequest struct {
	Category string `json:"category,omitempty"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

type SearchResponse struct {
	Documents []SourceResponse `json:"documents"`
	Count     int              `json:"count"`
}

// Filtered report-document search
// (POST /v1/rag/search)
func (h *Handler) Search(ctx echo.Context) error {
	var req SearchRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	limit := req.Limit
	if limit <= 0 {
		limit = h.searchLimit
	}

	docs, err := h.retrieveUsecase.SearchByFilter(ctx.Request().Context(), domain.ReportFilter{
		Category: req.Category,
		Location: req.Location,
		Status:   req.Status,
	}, limit)
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"error":     "report store unavailable",
				"documents": nil,
			})
		}
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "internal error",
			"details": err.Error(),
		})
	}

	documents := make([]SourceResponse, 0, len(docs))
	for _, d := range docs {
		documents = append(documents, SourceResponse{
			ID:       d.ID,
			Title:    d.Title,
			Category: d.Category,
			Content:  d.Content,
			Metadata: d.Metadata,
		})
	}

	return ctx.JSON(http.StatusOK, SearchResponse{Documents: documents, Count: len(documents)})
}
