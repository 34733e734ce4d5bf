package domain

import (
	"sync"
	"time"
)

// KnowledgeDocument is the unit of retrieval. Documents come from two places:
// the static civic knowledge base seeded at startup, and reports mapped on
// demand by the report adapter.
type KnowledgeDocument struct {
	ID       string
	Title    string
	Content  string
	Category string
	Metadata map[string]string
	// Embedding is reserved for a vector-backed retriever. The keyword
	// scorer ignores it.
	Embedding []float32
	Timestamp time.Time
}

// ScoredDocument pairs a document with its relevance score for a query.
type ScoredDocument struct {
	Document KnowledgeDocument
	Score    int
}

// DocumentStore is an in-memory document collection keyed by document ID.
// Upsert is last-write-wins, so re-mapping an updated report refreshes its
// document without duplication. Reads take a snapshot so a concurrent
// refresh never tears a retrieval pass.
type DocumentStore struct {
	mu    sync.RWMutex
	docs  map[string]KnowledgeDocument
	order []string
}

// NewDocumentStore creates an empty store and upserts the given seed
// documents in order.
func NewDocumentStore(seed []KnowledgeDocument) *DocumentStore {
	s := &DocumentStore{
		docs: make(map[string]KnowledgeDocument, len(seed)),
	}
	for _, doc := range seed {
		s.Upsert(doc)
	}
	return s
}

// Upsert inserts the document or replaces the existing one with the same ID.
// Replacement keeps the original insertion position so repeated refreshes do
// not reshuffle tie-break order.
func (s *DocumentStore) Upsert(doc KnowledgeDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[doc.ID]; !exists {
		s.order = append(s.order, doc.ID)
	}
	s.docs[doc.ID] = doc
}

// Get returns the document for id, or false when it is not present.
func (s *DocumentStore) Get(id string) (KnowledgeDocument, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	return doc, ok
}

// GetAll returns a snapshot of all documents in insertion order.
func (s *DocumentStore) GetAll() []KnowledgeDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]KnowledgeDocument, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}

// Len returns the number of stored documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
