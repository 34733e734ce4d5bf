package usecase_test

import (
	"context"
	"errors"
	"testing"

	"nagrik-rag/internal/domain"
	"nagrik-rag/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLMClient struct {
	response *domain.LLMResponse
	err      error
	calls    int
	prompts  []string
	opts     []domain.GenerateOptions
}

func (s *stubLLMClient) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (*domain.LLMResponse, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	s.opts = append(s.opts, opts)
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *stubLLMClient) Version() string { return "stub" }

type stubAnalytics struct {
	analytics *domain.ReportAnalytics
	err       error
}

func (s *stubAnalytics) Execute(ctx context.Context) (*domain.ReportAnalytics, error) {
	return s.analytics, s.err
}

func newAnswerUsecase(source *stubDocumentSource, llm *stubLLMClient, analytics usecase.AnalyticsUsecase) usecase.AnswerQueryUsecase {
	store := domain.NewDocumentStore(staticSeed())
	scorer := domain.NewKeywordScorer()
	retrieve := usecase.NewRetrieveDocumentsUsecase(store, source, scorer, discardLogger())
	if analytics == nil {
		analytics = &stubAnalytics{}
	}

	return usecase.NewAnswerQueryUsecase(
		retrieve,
		analytics,
		usecase.NewContextAssembler(),
		usecase.NewCivicPromptBuilder(),
		usecase.NewOutputParser(),
		scorer,
		llm,
		usecase.AnswerDefaults{
			Temperature:        0.3,
			VoiceTemperature:   0.2,
			MaxDocuments:       5,
			VoiceMaxDocuments:  3,
			MaxContextLength:   6000,
			SourceContentLimit: 400,
		},
		discardLogger(),
	)
}

func TestAnswerQuery_GroundedAnswer(t *testing.T) {
	llm := &stubLLMClient{response: &domain.LLMResponse{
		Text: "Potholes are caused by water infiltration into the road subbase.\n```json\n" +
			`{"suggestions": ["report drainage defects"], "related_issues": [], "escalation_path": ["ward office"]}` +
			"\n```",
		Done: true,
	}}
	uc := newAnswerUsecase(&stubDocumentSource{}, llm, nil)

	out, err := uc.Execute(context.Background(), usecase.AnswerQueryInput{Query: "what causes potholes"})
	require.NoError(t, err)

	assert.Contains(t, out.Answer, "water infiltration")
	require.Len(t, out.Sources, 1)
	assert.Equal(t, "kb-1", out.Sources[0].ID)
	assert.Equal(t, []string{"diagnosis"}, out.ContextUsed)
	assert.Equal(t, []string{"report drainage defects"}, out.Suggestions)
	assert.Equal(t, []string{"ward office"}, out.EscalationPath)
	assert.Greater(t, out.Confidence, 0.0)
	assert.LessOrEqual(t, out.Confidence, 1.0)
	assert.NotEmpty(t, out.RequestID)

	// The prompt carries the retrieved document and the literal query.
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Pothole Guide")
	assert.Contains(t, llm.prompts[0], "what causes potholes")
}

func TestAnswerQuery_EmptyQueryRejectedBeforeExternalCalls(t *testing.T) {
	source := &stubDocumentSource{}
	llm := &stubLLMClient{}
	uc := newAnswerUsecase(source, llm, nil)

	_, err := uc.Execute(context.Background(), usecase.AnswerQueryInput{Query: "  "})

	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
	assert.Equal(t, 0, source.calls)
	assert.Equal(t, 0, llm.calls)
}

func TestAnswerQuery_GenerationFailure(t *testing.T) {
	llm := &stubLLMClient{err: errors.New("connection refused")}
	uc := newAnswerUsecase(&stubDocumentSource{}, llm, nil)

	_, err := uc.Execute(context.Background(), usecase.AnswerQueryInput{Query: "what causes potholes"})
	assert.ErrorIs(t, err, domain.ErrGenerationUnavailable)
}

func TestAnswerQuery_EmptyCompletionGetsFallbackSentence(t *testing.T) {
	llm := &stubLLMClient{response: &domain.LLMResponse{Text: "   ", Done: true}}
	uc := newAnswerUsecase(&stubDocumentSource{}, llm, nil)

	out, err := uc.Execute(context.Background(), usecase.AnswerQueryInput{Query: "what causes potholes"})
	require.NoError(t, err)
	assert.Equal(t, usecase.FallbackAnswer, out.Answer)
}

func TestAnswerQuery_SourceOutageDegradesToStatic(t *testing.T) {
	source := &stubDocumentSource{err: domain.ErrSourceUnavailable}
	llm := &stubLLMClient{response: &domain.LLMResponse{Text: "Static-grounded answer.", Done: true}}
	uc := newAnswerUsecase(source, llm, &stubAnalytics{err: domain.ErrSourceUnavailable})

	out, err := uc.Execute(context.Background(), usecase.AnswerQueryInput{Query: "what causes potholes"})
	require.NoError(t, err)
	assert.True(t, out.Degraded)
	require.Len(t, out.Sources, 1)
	assert.Equal(t, "kb-1", out.Sources[0].ID)
}

func TestAnswerQuery_VoiceDefaults(t *testing.T) {
	llm := &stubLLMClient{response: &domain.LLMResponse{Text: "Short answer.", Done: true}}
	uc := newAnswerUsecase(&stubDocumentSource{}, llm, nil)

	_, err := uc.Execute(context.Background(), usecase.AnswerQueryInput{
		Query:  "what causes potholes",
		Config: usecase.QueryConfig{Voice: true},
	})
	require.NoError(t, err)

	require.Len(t, llm.opts, 1)
	assert.Equal(t, 0.2, llm.opts[0].Temperature)
	assert.Contains(t, llm.prompts[0], "spoken sentences")
}

func TestAnswerQuery_TemperatureOverride(t *testing.T) {
	llm := &stubLLMClient{response: &domain.LLMResponse{Text: "Answer.", Done: true}}
	uc := newAnswerUsecase(&stubDocumentSource{}, llm, nil)

	_, err := uc.Execute(context.Background(), usecase.AnswerQueryInput{
		Query:  "what causes potholes",
		Config: usecase.QueryConfig{Temperature: 0.4},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.4, llm.opts[0].Temperature)
}

func TestAnswerQuery_MalformedTrailerDoesNotFail(t *testing.T) {
	llm := &stubLLMClient{response: &domain.LLMResponse{
		Text: "Good answer.\n```json\n{broken\n```",
		Done: true,
	}}
	uc := newAnswerUsecase(&stubDocumentSource{}, llm, nil)

	out, err := uc.Execute(context.Background(), usecase.AnswerQueryInput{Query: "what causes potholes"})
	require.NoError(t, err)
	assert.Equal(t, "Good answer.", out.Answer)
	assert.Empty(t, out.Suggestions)
	assert.Empty(t, out.EscalationPath)
}

func TestAnswerQuery_ConfidenceMonotoneInSources(t *testing.T) {
	llm := &stubLLMClient{response: &domain.LLMResponse{Text: "Answer.", Done: true}}

	// Same query matched against progressively larger report corpora; the
	// query term appears in every document so term coverage is fixed.
	var previous float64
	for _, n := range []int{0, 1, 2, 4} {
		var docs []domain.KnowledgeDocument
		for i := 0; i < n; i++ {
			docs = append(docs, domain.KnowledgeDocument{
				ID:      "rep-" + string(rune('a'+i)),
				Title:   "Pothole report",
				Content: "Pothole report\nanother pothole",
			})
		}
		uc := newAnswerUsecase(&stubDocumentSource{docs: docs}, llm, nil)

		out, err := uc.Execute(context.Background(), usecase.AnswerQueryInput{Query: "pothole"})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, out.Confidence, previous, "sources=%d", n)
		previous = out.Confidence
	}
}

func TestAnswerQuery_AnalyticsInjectedIntoPrompt(t *testing.T) {
	llm := &stubLLMClient{response: &domain.LLMResponse{Text: "Answer.", Done: true}}
	analytics := &stubAnalytics{analytics: &domain.ReportAnalytics{TotalReports: 42, PendingReports: 40}}
	uc := newAnswerUsecase(&stubDocumentSource{}, llm, analytics)

	_, err := uc.Execute(context.Background(), usecase.AnswerQueryInput{Query: "how many reports are pending"})
	require.NoError(t, err)
	assert.Contains(t, llm.prompts[0], "Total reports: 42")
}
