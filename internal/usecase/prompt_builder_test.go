package usecase_test

import (
	"testing"

	"nagrik-rag/internal/domain"
	"nagrik-rag/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCivicPromptBuilder_Build(t *testing.T) {
	builder := usecase.NewCivicPromptBuilder()

	prompt, err := builder.Build(usecase.PromptInput{
		Query:        "what causes potholes",
		ContextBlock: "### Pothole Guide (Category: diagnosis)\npotholes are caused by water infiltration",
	})

	require.NoError(t, err)
	assert.Contains(t, prompt, usecase.DefaultPersona)
	assert.Contains(t, prompt, "<context>")
	assert.Contains(t, prompt, "potholes are caused by water infiltration")
	assert.Contains(t, prompt, "<query>\nwhat causes potholes")
	assert.Contains(t, prompt, "```json")
}

func TestCivicPromptBuilder_Build_PersonaOverride(t *testing.T) {
	builder := usecase.NewCivicPromptBuilder()

	prompt, err := builder.Build(usecase.PromptInput{
		Query:   "q",
		Persona: "You are the municipal helpline.",
	})

	require.NoError(t, err)
	assert.Contains(t, prompt, "You are the municipal helpline.")
	assert.NotContains(t, prompt, usecase.DefaultPersona)
}

func TestCivicPromptBuilder_Build_ContextToggles(t *testing.T) {
	builder := usecase.NewCivicPromptBuilder()

	prompt, err := builder.Build(usecase.PromptInput{
		Query:                "q",
		IncludeIndianContext: true,
		RegionalContext:      "Pune",
		GovernanceContext:    true,
		Voice:                true,
	})

	require.NoError(t, err)
	assert.Contains(t, prompt, "Indian municipal governance")
	assert.Contains(t, prompt, "Pune")
	assert.Contains(t, prompt, "escalation path")
	assert.Contains(t, prompt, "spoken sentences")
}

func TestCivicPromptBuilder_Build_AnalyticsSummary(t *testing.T) {
	builder := usecase.NewCivicPromptBuilder()

	prompt, err := builder.Build(usecase.PromptInput{
		Query: "how many reports are pending",
		Analytics: &domain.ReportAnalytics{
			TotalReports:    10,
			ResolvedReports: 4,
			PendingReports:  5,
			UniqueLocations: 3,
		},
	})

	require.NoError(t, err)
	assert.Contains(t, prompt, "<report_summary>")
	assert.Contains(t, prompt, "Total reports: 10")
}

func TestCivicPromptBuilder_Build_EmptyQuery(t *testing.T) {
	builder := usecase.NewCivicPromptBuilder()
	_, err := builder.Build(usecase.PromptInput{Query: "  "})
	assert.Error(t, err)
}
