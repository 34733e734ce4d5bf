package domain_test

import (
	"sync"
	"testing"
	"time"

	"nagrik-rag/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore_UpsertReplacesByID(t *testing.T) {
	store := domain.NewDocumentStore(nil)

	store.Upsert(domain.KnowledgeDocument{ID: "a", Title: "first"})
	store.Upsert(domain.KnowledgeDocument{ID: "b", Title: "second"})
	store.Upsert(domain.KnowledgeDocument{ID: "a", Title: "replaced"})

	assert.Equal(t, 2, store.Len())

	doc, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "replaced", doc.Title)
}

func TestDocumentStore_GetAll_InsertionOrderPreserved(t *testing.T) {
	store := domain.NewDocumentStore([]domain.KnowledgeDocument{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	})

	// Re-upserting does not move a document to the back.
	store.Upsert(domain.KnowledgeDocument{ID: "a", Title: "updated"})

	all := store.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
	assert.Equal(t, "updated", all[0].Title)
}

func TestDocumentStore_Get_Missing(t *testing.T) {
	store := domain.NewDocumentStore(nil)
	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestDocumentStore_ConcurrentReadersSingleWriter(t *testing.T) {
	store := domain.NewDocumentStore([]domain.KnowledgeDocument{{ID: "seed"}})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.GetAll()
				_, _ = store.Get("seed")
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			store.Upsert(domain.KnowledgeDocument{ID: "seed", Timestamp: time.Now()})
		}
	}()

	wg.Wait()
	assert.Equal(t, 1, store.Len())
}
