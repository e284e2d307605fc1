package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/vectorstore"
)

// Store is the similarity search dependency of the retriever.
type Store interface {
	SearchText(ctx context.Context, query string, k int) ([]vectorstore.ScoredDocument, error)
}

// Retriever fetches knowledge records for a query and filters them down to
// the ones worth feeding into synthesis.
type Retriever struct {
	store          Store
	topK           int
	scoreThreshold float64
	logger         *observability.Logger
}

// Config holds retriever tuning parameters.
type Config struct {
	TopK           int
	ScoreThreshold float64
}

// NewRetriever creates a retriever over the given store.
func NewRetriever(store Store, cfg Config, logger *observability.Logger) *Retriever {
	if cfg.TopK <= 0 {
		cfg.TopK = 3
	}
	if cfg.ScoreThreshold <= 0 {
		cfg.ScoreThreshold = 0.5
	}
	if logger == nil {
		logger = observability.DefaultLogger()
	}

	return &Retriever{
		store:          store,
		topK:           cfg.TopK,
		scoreThreshold: cfg.ScoreThreshold,
		logger:         logger.WithComponent("knowledge.retriever"),
	}
}

// Retrieve returns the top-k records for the query in backend score order.
// A backend failure degrades to an empty result set so the pipeline can fall
// back to web search.
func (r *Retriever) Retrieve(ctx context.Context, query string) []Record {
	docs, err := r.store.SearchText(ctx, query, r.topK)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("query", query).
			Msg("Vector search failed, continuing without knowledge records")
		return nil
	}

	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, Record{
			Body:       doc.Document.Body,
			Attributes: doc.Document.Attributes,
			Score:      doc.Score,
		})
	}

	r.logger.Debug().
		Str("query", query).
		Int("records", len(records)).
		Msg("Retrieved knowledge records")

	return records
}

// Filter keeps records whose score clears the threshold and whose attraction
// name is relevant to the query, preserving the incoming order.
func (r *Retriever) Filter(query string, records []Record) []Record {
	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.Score < r.scoreThreshold {
			r.logger.Debug().
				Str("attraction", rec.Name()).
				Float64("score", rec.Score).
				Msg("Record rejected: below score threshold")
			continue
		}
		if !IsRelevant(query, rec.Name()) {
			r.logger.Debug().
				Str("attraction", rec.Name()).
				Str("query", query).
				Msg("Record rejected: attraction not relevant to query")
			continue
		}
		filtered = append(filtered, rec)
	}

	return filtered
}

// RenderContext formats records as the RAG context block handed to the LLM.
// Returns "" when there are no records.
func RenderContext(records []Record) string {
	if len(records) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(records))
	for _, rec := range records {
		blocks = append(blocks, fmt.Sprintf("--- RAG Result (Score: %.2f) ---\n%s", rec.Score, rec.Body))
	}

	return strings.Join(blocks, "\n\n")
}
