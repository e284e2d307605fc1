package agent

import (
	"context"
	"strings"
	"time"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/cache"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
)

// Researcher produces the primary answer for a query.
type Researcher interface {
	Answer(ctx context.Context, query string) string
}

// Orchestrator runs the research and metadata agents in sequence and
// combines their output into the externally exposed answer.
type Orchestrator struct {
	research Researcher
	metadata Researcher
	cache    cache.Client
	cacheTTL time.Duration
	logger   *observability.Logger
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithAnswerCache enables caching of combined answers.
func WithAnswerCache(client cache.Client, ttl time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		o.cache = client
		o.cacheTTL = ttl
	}
}

// NewOrchestrator creates an orchestrator over the two agents.
func NewOrchestrator(research, metadata Researcher, logger *observability.Logger, opts ...OrchestratorOption) *Orchestrator {
	if logger == nil {
		logger = observability.DefaultLogger()
	}
	o := &Orchestrator{
		research: research,
		metadata: metadata,
		logger:   logger.WithComponent("agent.orchestrator"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run produces the combined answer for a query. Both agents degrade
// internally to textual error messages, so Run never returns an error.
func (o *Orchestrator) Run(ctx context.Context, query string) string {
	o.logger.Info().Str("query", query).Msg("Coordinating agents")

	cacheKey := cache.Key("answer", query)
	if o.cache != nil {
		if cached, err := o.cache.Get(ctx, cacheKey); err == nil {
			o.logger.Debug().Str("query", query).Msg("Answer served from cache")
			return string(cached)
		}
	}

	combined := o.research.Answer(ctx, query)

	supplementary := o.metadata.Answer(ctx, query)
	if supplementary != "" && !IsNoInfoFound(supplementary) {
		combined += "\n\n---\n### ℹ️ Supplementary Information\n" + supplementary
	}

	if o.cache != nil && !isErrorAnswer(combined) {
		if err := o.cache.Set(ctx, cacheKey, []byte(combined), o.cacheTTL); err != nil {
			o.logger.Warn().Err(err).Msg("Failed to cache answer")
		}
	}

	return combined
}

// isErrorAnswer keeps degraded answers out of the cache so transient backend
// failures are retried on the next request.
func isErrorAnswer(answer string) bool {
	return strings.HasPrefix(answer, "Error generating response:") ||
		strings.Contains(answer, "Error gathering info:")
}
