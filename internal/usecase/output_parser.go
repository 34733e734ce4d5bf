package usecase

import (
	"encoding/json"
	"strings"
)

// EnhancedFields are the structured extras the prompt asks the model to
// append after the prose answer.
type EnhancedFields struct {
	Suggestions    []string `json:"suggestions"`
	RelatedIssues  []string `json:"related_issues"`
	EscalationPath []string `json:"escalation_path"`
}

// OutputParser splits a raw completion into the prose answer and the
// structured trailer.
type OutputParser struct{}

// NewOutputParser creates a parser instance (stateless).
func NewOutputParser() OutputParser {
	return OutputParser{}
}

// Parse extracts the trailing fenced JSON block from raw. Malformed or
// missing trailers degrade to empty fields; parsing never fails the
// response.
func (OutputParser) Parse(raw string) (string, EnhancedFields) {
	var fields EnhancedFields

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fields
	}

	fenceStart := strings.LastIndex(trimmed, "```json")
	if fenceStart == -1 {
		return trimmed, fields
	}

	body := trimmed[fenceStart+len("```json"):]
	fenceEnd := strings.Index(body, "```")
	if fenceEnd == -1 {
		// Unterminated fence: keep the prose, drop the fragment.
		return strings.TrimSpace(trimmed[:fenceStart]), fields
	}

	payload := strings.TrimSpace(body[:fenceEnd])
	answer := strings.TrimSpace(trimmed[:fenceStart] + body[fenceEnd+len("```"):])

	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return answer, EnhancedFields{}
	}
	return answer, fields
}
