package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"nagrik-rag/internal/domain"
)

// FallbackAnswer is returned when the generation backend produces an empty
// completion. An empty answer is a defect, never a valid response.
const FallbackAnswer = "I could not produce an answer for this question from the available reports and knowledge base. Please rephrase or narrow the question."

// AnswerQueryInput encapsulates the parameters that drive an answer request.
type AnswerQueryInput struct {
	Query  string
	Config QueryConfig
}

// AnswerSource is a document that grounded the answer, trimmed for
// transport.
type AnswerSource struct {
	ID       string
	Title    string
	Category string
	Content  string
	Metadata map[string]string
}

// AnswerQueryOutput is the normalized response returned to API clients.
type AnswerQueryOutput struct {
	Answer         string
	Sources        []AnswerSource
	Confidence     float64
	ContextUsed    []string
	Suggestions    []string
	RelatedIssues  []string
	EscalationPath []string
	RequestID      string
	// Degraded reports that the answer was produced from static
	// documents only because the report source was unreachable.
	Degraded bool
}

// AnswerQueryUsecase defines the contract for generating grounded answers.
type AnswerQueryUsecase interface {
	Execute(ctx context.Context, input AnswerQueryInput) (*AnswerQueryOutput, error)
}

type answerQueryUsecase struct {
	retrieve      RetrieveDocumentsUsecase
	analytics     AnalyticsUsecase
	assembler     ContextAssembler
	promptBuilder PromptBuilder
	parser        OutputParser
	scorer        domain.KeywordScorer
	llmClient     domain.LLMClient
	defaults      AnswerDefaults
	logger        *slog.Logger
}

// NewAnswerQueryUsecase wires together the components needed to answer a
// query.
func NewAnswerQueryUsecase(
	retrieve RetrieveDocumentsUsecase,
	analytics AnalyticsUsecase,
	assembler ContextAssembler,
	promptBuilder PromptBuilder,
	parser OutputParser,
	scorer domain.KeywordScorer,
	llmClient domain.LLMClient,
	defaults AnswerDefaults,
	logger *slog.Logger,
) AnswerQueryUsecase {
	return &answerQueryUsecase{
		retrieve:      retrieve,
		analytics:     analytics,
		assembler:     assembler,
		promptBuilder: promptBuilder,
		parser:        parser,
		scorer:        scorer,
		llmClient:     llmClient,
		defaults:      defaults,
		logger:        logger,
	}
}

func (u *answerQueryUsecase) Execute(ctx context.Context, input AnswerQueryInput) (*AnswerQueryOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, domain.ErrInvalidQuery
	}

	cfg := input.Config.withDefaults(u.defaults)
	requestID := uuid.NewString()

	var (
		retrieved *RetrieveDocumentsOutput
		stats     *domain.ReportAnalytics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		retrieved, err = u.retrieve.Execute(gctx, RetrieveDocumentsInput{
			Query:      input.Query,
			Filter:     domain.ReportFilter{Category: cfg.Category, Location: cfg.Location, Status: cfg.Status},
			MaxResults: cfg.MaxDocuments,
		})
		return err
	})
	g.Go(func() error {
		a, err := u.analytics.Execute(gctx)
		if err != nil {
			// Analytics is grounding, not a requirement; answer
			// without it when the corpus is unreachable.
			if errors.Is(err, domain.ErrSourceUnavailable) {
				return nil
			}
			return err
		}
		stats = a
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	contextBlock, included := u.assembler.Assemble(retrieved.Results, cfg.MaxDocuments, u.defaults.MaxContextLength)
	matched, total := u.scorer.MatchedTerms(input.Query, included)

	prompt, err := u.promptBuilder.Build(PromptInput{
		Query:                input.Query,
		Persona:              u.defaults.Persona,
		ContextBlock:         contextBlock,
		Analytics:            stats,
		IncludeIndianContext: cfg.IncludeIndianContext,
		RegionalContext:      cfg.RegionalContext,
		GovernanceContext:    cfg.GovernanceContext,
		Voice:                cfg.Voice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	llmResp, err := u.llmClient.Generate(ctx, prompt, domain.GenerateOptions{Temperature: cfg.Temperature})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err)
	}
	if llmResp == nil {
		return nil, fmt.Errorf("%w: empty generation response", domain.ErrGenerationUnavailable)
	}

	answer, extras := u.parser.Parse(llmResp.Text)
	if strings.TrimSpace(answer) == "" {
		u.logger.Warn("generation returned empty answer, substituting fallback", "request_id", requestID)
		answer = FallbackAnswer
	}

	out := &AnswerQueryOutput{
		Answer:         answer,
		Sources:        u.buildSources(included),
		Confidence:     confidence(matched, total, len(included)),
		ContextUsed:    distinctCategories(included),
		Suggestions:    extras.Suggestions,
		RelatedIssues:  extras.RelatedIssues,
		EscalationPath: extras.EscalationPath,
		RequestID:      requestID,
		Degraded:       retrieved.SourceDegraded,
	}

	u.logger.Info("answered query",
		"request_id", requestID,
		"sources", len(out.Sources),
		"confidence", out.Confidence,
		"degraded", out.Degraded,
		"model", u.llmClient.Version(),
	)
	return out, nil
}

func (u *answerQueryUsecase) buildSources(docs []domain.KnowledgeDocument) []AnswerSource {
	sources := make([]AnswerSource, 0, len(docs))
	for _, doc := range docs {
		content := doc.Content
		if limit := u.defaults.SourceContentLimit; limit > 0 && len(content) > limit {
			content = content[:limit]
		}
		sources = append(sources, AnswerSource{
			ID:       doc.ID,
			Title:    doc.Title,
			Category: doc.Category,
			Content:  content,
			Metadata: doc.Metadata,
		})
	}
	return sources
}

// confidence derives a score in [0,1] from retrieval quality alone: the
// fraction of query terms covered by the included sources and how many
// sources were found (saturating at five). Pure function, monotonically
// non-decreasing in the source count.
func confidence(matchedTerms, totalTerms, sources int) float64 {
	if totalTerms == 0 {
		return 0
	}

	coverage := float64(matchedTerms) / float64(totalTerms)
	sourceSignal := float64(sources) / 5.0
	if sourceSignal > 1 {
		sourceSignal = 1
	}

	c := 0.2 + 0.5*coverage + 0.3*sourceSignal
	if c > 1 {
		c = 1
	}
	return c
}

func distinctCategories(docs []domain.KnowledgeDocument) []string {
	seen := make(map[string]struct{}, len(docs))
	var categories []string
	for _, doc := range docs {
		if doc.Category == "" {
			continue
		}
		if _, ok := seen[doc.Category]; ok {
			continue
		}
		seen[doc.Category] = struct{}{}
		categories = append(categories, doc.Category)
	}
	return categories
}
