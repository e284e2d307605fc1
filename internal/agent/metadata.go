package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/knowledge"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/llm"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/websearch"
)

// metadataWebResults caps the fallback web search for supplementary facts.
const metadataWebResults = 2

// MetadataAgent extracts and condenses supplementary "additional
// information" facts about the attraction a query is about.
type MetadataAgent struct {
	knowledge Knowledge
	web       websearch.Searcher
	generator llm.Generator
	logger    *observability.Logger
}

// NewMetadataAgent creates a metadata agent.
func NewMetadataAgent(kn Knowledge, web websearch.Searcher, generator llm.Generator, logger *observability.Logger) *MetadataAgent {
	if logger == nil {
		logger = observability.DefaultLogger()
	}
	return &MetadataAgent{
		knowledge: kn,
		web:       web,
		generator: generator,
		logger:    logger.WithComponent("agent.metadata"),
	}
}

// Answer returns condensed supplementary bullets for the query, or
// NoInfoSentinel when nothing was found. Failures degrade to a textual
// error message; this method never returns an error.
func (a *MetadataAgent) Answer(ctx context.Context, query string) string {
	a.logger.Info().Str("query", query).Msg("Processing metadata query")

	records := a.knowledge.Retrieve(ctx, query)
	raw := a.gather(ctx, query, records)

	if raw == "" || IsNoInfoFound(raw) {
		return NoInfoSentinel
	}

	userContent := fmt.Sprintf("Attraction Query: %s\n\nRaw Metadata gathered:\n%s", query, raw)

	answer, err := a.generator.Generate(ctx, metadataSystemPrompt, userContent)
	if err != nil {
		a.logger.Error().Err(err).Str("query", query).Msg("Metadata synthesis failed")
		return fmt.Sprintf("Error gathering info: %v", err)
	}

	return answer
}

// gather collects unique supplementary facts for the query. The top filtered
// record's attraction name anchors the collection so facts from different
// attractions never mix.
func (a *MetadataAgent) gather(ctx context.Context, query string, records []knowledge.Record) string {
	infoSet := map[string]struct{}{}

	filtered := a.knowledge.Filter(query, records)
	if len(filtered) > 0 {
		anchor := filtered[0].Name()
		if anchor != "" {
			a.logger.Debug().Str("attraction", anchor).Msg("Anchoring metadata to top attraction")
		}

		for _, rec := range filtered {
			name := rec.Name()
			if anchor != "" && name != "" && name != anchor {
				continue
			}
			info, ok := rec.AdditionalInfo()
			if !ok || info == nil {
				continue
			}
			addInfoValue(infoSet, info)
		}
	}

	if len(infoSet) == 0 {
		a.logger.Debug().
			Str("query", query).
			Msg("No supplementary facts in knowledge records, falling back to web search")

		outcome := a.web.Search(ctx, query+" additional tourist information details")
		if outcome.Status == websearch.StatusSuccess {
			results := outcome.Results
			if len(results) > metadataWebResults {
				results = results[:metadataWebResults]
			}
			for _, res := range results {
				infoSet["Web: "+res.Body] = struct{}{}
			}
		}
	}

	if len(infoSet) == 0 {
		return ""
	}

	items := make([]string, 0, len(infoSet))
	for item := range infoSet {
		items = append(items, "- "+item)
	}
	sort.Strings(items)

	return strings.Join(items, "\n")
}

// addInfoValue normalizes one attribute value into the fact set. Strings
// shaped like JSON arrays are expanded into their elements; lists contribute
// each element; anything else is added as-is. A parse failure falls back to
// the raw value rather than dropping it.
func addInfoValue(infoSet map[string]struct{}, info interface{}) {
	switch v := info.(type) {
	case string:
		if strings.HasPrefix(strings.TrimSpace(v), "[") {
			var parsed []interface{}
			if err := json.Unmarshal([]byte(v), &parsed); err == nil {
				for _, item := range parsed {
					infoSet[stringify(item)] = struct{}{}
				}
				return
			}
		}
		infoSet[v] = struct{}{}
	case []interface{}:
		for _, item := range v {
			infoSet[stringify(item)] = struct{}{}
		}
	case []string:
		for _, item := range v {
			infoSet[item] = struct{}{}
		}
	default:
		infoSet[stringify(info)] = struct{}{}
	}
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// IsNoInfoFound reports whether text carries the "nothing found" sentinel,
// in either the synthesizer's or the language model's phrasing.
func IsNoInfoFound(text string) bool {
	return strings.Contains(strings.ToLower(text), "no specific additional info")
}
