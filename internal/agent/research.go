// Package agent contains the synthesis agents that turn retrieved travel
// data into answers, and the orchestrator combining them.
package agent

import (
	"context"
	"fmt"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/knowledge"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/llm"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/websearch"
)

// Knowledge is the retrieval dependency of the agents.
type Knowledge interface {
	Retrieve(ctx context.Context, query string) []knowledge.Record
	Filter(query string, records []knowledge.Record) []knowledge.Record
}

// ResearchAgent produces the primary answer for a travel query: retrieve
// curated records first, fall back to web search only when retrieval yields
// nothing usable, then synthesize once with the language model.
type ResearchAgent struct {
	knowledge Knowledge
	web       websearch.Searcher
	generator llm.Generator
	logger    *observability.Logger
}

// NewResearchAgent creates a research agent.
func NewResearchAgent(kn Knowledge, web websearch.Searcher, generator llm.Generator, logger *observability.Logger) *ResearchAgent {
	if logger == nil {
		logger = observability.DefaultLogger()
	}
	return &ResearchAgent{
		knowledge: kn,
		web:       web,
		generator: generator,
		logger:    logger.WithComponent("agent.research"),
	}
}

// Answer returns the synthesized answer text. Generation failures degrade to
// a textual error message; this method never returns an error.
func (a *ResearchAgent) Answer(ctx context.Context, query string) string {
	a.logger.Info().Str("query", query).Msg("Processing research query")

	records := a.knowledge.Retrieve(ctx, query)
	filtered := a.knowledge.Filter(query, records)
	ragInfo := knowledge.RenderContext(filtered)

	if ragInfo != "" {
		a.logger.Debug().
			Int("records", len(filtered)).
			Msg("Using knowledge records, skipping web search")
	}

	// Web search runs only when retrieval produced nothing usable; curated
	// data takes strict priority to keep answers grounded.
	webInfo := ""
	if ragInfo == "" {
		a.logger.Debug().Str("query", query).Msg("No usable knowledge records, falling back to web search")
		webInfo = websearch.RenderContext(a.web.Search(ctx, query))
	}

	userContent := fmt.Sprintf(
		"User Query: %s\n\n### RAG Information:\n%s\n\n### Web Information:\n%s\n\nPlease provide a comprehensive answer.",
		query, orSentinel(ragInfo, noRAGInfo), orSentinel(webInfo, noWebInfo))

	answer, err := a.generator.Generate(ctx, researchSystemPrompt, userContent)
	if err != nil {
		a.logger.Error().Err(err).Str("query", query).Msg("Answer generation failed")
		return fmt.Sprintf("Error generating response: %v", err)
	}

	return answer
}

func orSentinel(text, sentinel string) string {
	if text == "" {
		return sentinel
	}
	return text
}
