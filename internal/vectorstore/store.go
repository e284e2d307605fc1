package vectorstore

import (
	"context"
	"fmt"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/embedding"
)

// Searcher performs vector similarity search for a list of vectors.
type Searcher interface {
	Search(ctx context.Context, vector []float32, k int) ([]ScoredDocument, error)
}

// Store combines an embedder with a vector search backend so callers can
// search with plain text queries.
type Store struct {
	embedder embedding.Embedder
	searcher Searcher
}

// NewStore creates a text-query store on top of an embedder and a searcher.
func NewStore(embedder embedding.Embedder, searcher Searcher) *Store {
	return &Store{embedder: embedder, searcher: searcher}
}

// SearchText embeds the query and returns the k nearest documents.
func (s *Store) SearchText(ctx context.Context, query string, k int) ([]ScoredDocument, error) {
	vector, err := s.embedder.EmbedSingle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	return s.searcher.Search(ctx, vector, k)
}
