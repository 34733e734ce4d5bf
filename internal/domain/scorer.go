package domain

import (
	"sort"
	"strings"
)

// KeywordScorer ranks documents by term-frequency keyword matching. Query
// terms are matched as literal substrings, never as patterns, so terms
// containing regex metacharacters cannot be misinterpreted or cause errors.
type KeywordScorer struct{}

// NewKeywordScorer creates a scorer instance (stateless).
func NewKeywordScorer() KeywordScorer {
	return KeywordScorer{}
}

// Search scores every document against the query and returns at most
// maxResults documents ordered by descending score. Documents with equal
// scores retain their relative order in the input slice, which makes
// repeated searches over an unchanged store deterministic. An empty or
// whitespace-only query returns an empty result.
func (KeywordScorer) Search(query string, docs []KnowledgeDocument, maxResults int) []ScoredDocument {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 || maxResults <= 0 {
		return nil
	}

	scored := make([]ScoredDocument, 0, len(docs))
	for _, doc := range docs {
		haystack := strings.ToLower(doc.Title + " " + doc.Content)
		score := 0
		for _, term := range terms {
			score += strings.Count(haystack, term)
		}
		if score == 0 {
			continue
		}
		scored = append(scored, ScoredDocument{Document: doc, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}

// MatchedTerms reports how many of the query's terms occur in at least one
// of the given documents. Used as a confidence signal.
func (KeywordScorer) MatchedTerms(query string, docs []KnowledgeDocument) (matched, total int) {
	terms := strings.Fields(strings.ToLower(query))
	total = len(terms)

	for _, term := range terms {
		for _, doc := range docs {
			haystack := strings.ToLower(doc.Title + " " + doc.Content)
			if strings.Contains(haystack, term) {
				matched++
				break
			}
		}
	}
	return matched, total
}
