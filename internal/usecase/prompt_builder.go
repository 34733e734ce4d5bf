package usecase

import (
	"fmt"
	"strings"

	"nagrik-rag/internal/domain"
)

// DefaultPersona is the system persona used when none is configured.
const DefaultPersona = "You are a helpful assistant specialized in infrastructure reporting and civic issues."

// PromptInput contains the pieces that feed into the prompt builder.
type PromptInput struct {
	Query        string
	Persona      string
	ContextBlock string
	// Analytics, when present, grounds report-scoped questions with
	// corpus-level numbers.
	Analytics *domain.ReportAnalytics

	IncludeIndianContext bool
	RegionalContext      string
	GovernanceContext    bool
	Voice                bool
}

// PromptBuilder composes the prompt sent to the generation backend.
type PromptBuilder interface {
	Build(input PromptInput) (string, error)
}

// CivicPromptBuilder builds grounded prompts that separate persona,
// instructions, context, and query into tagged sections.
type CivicPromptBuilder struct{}

// NewCivicPromptBuilder creates a prompt builder instance.
func NewCivicPromptBuilder() PromptBuilder {
	return &CivicPromptBuilder{}
}

// Build renders the prompt text.
func (b *CivicPromptBuilder) Build(input PromptInput) (string, error) {
	if strings.TrimSpace(input.Query) == "" {
		return "", fmt.Errorf("query is required")
	}

	persona := strings.TrimSpace(input.Persona)
	if persona == "" {
		persona = DefaultPersona
	}

	var sb strings.Builder
	sb.WriteString(persona)
	sb.WriteString("\n\n<instructions>\n")
	sb.WriteString("- Ground your answer strictly in the documents inside <context>. Do not invent facts.\n")
	sb.WriteString("- If the context does not cover the question, say so plainly instead of guessing.\n")
	if input.Voice {
		sb.WriteString("- Answer in two or three short spoken sentences, no lists or headings.\n")
	}
	if input.IncludeIndianContext {
		sb.WriteString("- Frame the answer for Indian municipal governance: wards, councillors, and urban local bodies.\n")
	}
	if input.RegionalContext != "" {
		sb.WriteString("- Anchor the answer to the region: ")
		sb.WriteString(strings.TrimSpace(input.RegionalContext))
		sb.WriteString(".\n")
	}
	if input.GovernanceContext {
		sb.WriteString("- Name the responsible agency and the escalation path where the context provides them.\n")
	}
	sb.WriteString("- After the answer, append one fenced block exactly in this form:\n")
	sb.WriteString("```json\n")
	sb.WriteString(`{"suggestions": ["..."], "related_issues": ["..."], "escalation_path": ["..."]}` + "\n")
	sb.WriteString("```\n")
	sb.WriteString("  Leave arrays empty when you have nothing useful to add.\n")
	sb.WriteString("</instructions>\n")

	if input.Analytics != nil {
		a := input.Analytics
		sb.WriteString("\n<report_summary>\n")
		sb.WriteString(fmt.Sprintf("Total reports: %d. Resolved: %d. Pending: %d. In progress: %d. Distinct locations: %d.\n",
			a.TotalReports, a.ResolvedReports, a.PendingReports, a.InProgressReports, a.UniqueLocations))
		sb.WriteString("</report_summary>\n")
	}

	sb.WriteString("\n<context>\n")
	if input.ContextBlock != "" {
		sb.WriteString(input.ContextBlock)
		sb.WriteString("\n")
	}
	sb.WriteString("</context>\n")

	sb.WriteString("\n<query>\n")
	sb.WriteString(input.Query)
	sb.WriteString("\n</query>\n")

	return sb.String(), nil
}
