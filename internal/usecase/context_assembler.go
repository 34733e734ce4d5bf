package usecase

import (
	"fmt"
	"strings"

	"nagrik-rag/internal/domain"
)

// ContextAssembler turns ranked documents into the bounded context block
// fed to the generation prompt.
type ContextAssembler struct{}

// NewContextAssembler creates an assembler instance (stateless).
func NewContextAssembler() ContextAssembler {
	return ContextAssembler{}
}

// Assemble formats the top maxDocuments results into a context string and
// returns the documents actually included. A document is either included
// whole or not at all: when appending the next formatted document would
// push the context past maxContextLength, assembly stops. Downstream
// confidence and source counts must use the returned subset, not the full
// retrieval set.
func (ContextAssembler) Assemble(results []domain.ScoredDocument, maxDocuments, maxContextLength int) (string, []domain.KnowledgeDocument) {
	if maxDocuments <= 0 {
		return "", nil
	}
	if len(results) > maxDocuments {
		results = results[:maxDocuments]
	}

	var sb strings.Builder
	var included []domain.KnowledgeDocument

	for _, r := range results {
		block := fmt.Sprintf("### %s (Category: %s)\n%s", r.Document.Title, r.Document.Category, r.Document.Content)

		projected := sb.Len() + len(block)
		if sb.Len() > 0 {
			projected += 2 // blank-line separator
		}
		if maxContextLength > 0 && projected > maxContextLength {
			break
		}

		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(block)
		included = append(included, r.Document)
	}

	return sb.String(), included
}
