package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/knowledge"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/llm"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/websearch"
)

// fakeKnowledge serves preset records and applies the real score/relevance
// filtering rules.
type fakeKnowledge struct {
	records []knowledge.Record
}

func (f *fakeKnowledge) Retrieve(ctx context.Context, query string) []knowledge.Record {
	return f.records
}

func (f *fakeKnowledge) Filter(query string, records []knowledge.Record) []knowledge.Record {
	filtered := make([]knowledge.Record, 0, len(records))
	for _, rec := range records {
		if rec.Score >= 0.5 && knowledge.IsRelevant(query, rec.Name()) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// recordingWeb returns a preset outcome and records queries.
type recordingWeb struct {
	outcome websearch.Outcome
	queries []string
}

func (w *recordingWeb) Search(ctx context.Context, query string) websearch.Outcome {
	w.queries = append(w.queries, query)
	return w.outcome
}

func record(name, body string, score float64, extra map[string]interface{}) knowledge.Record {
	attrs := map[string]interface{}{knowledge.AttrAttractionName: name}
	for k, v := range extra {
		attrs[k] = v
	}
	return knowledge.Record{Body: body, Score: score, Attributes: attrs}
}

func TestResearchAgentUsesKnowledgeAndSkipsWeb(t *testing.T) {
	kn := &fakeKnowledge{records: []knowledge.Record{
		record("Taj Mahal", "marble mausoleum in Agra", 0.9, nil),
	}}
	web := &recordingWeb{outcome: websearch.Outcome{Status: websearch.StatusSuccess}}
	gen := llm.NewMockClient("synthesized answer")

	agent := NewResearchAgent(kn, web, gen, observability.Discard())
	got := agent.Answer(context.Background(), "tell me about taj mahal")

	assert.Equal(t, "synthesized answer", got)
	assert.Empty(t, web.queries, "web search must not run when knowledge records exist")

	require.Len(t, gen.Calls, 1)
	assert.Equal(t, researchSystemPrompt, gen.Calls[0].System)
	assert.Contains(t, gen.Calls[0].User, "User Query: tell me about taj mahal")
	assert.Contains(t, gen.Calls[0].User, "--- RAG Result (Score: 0.90) ---\nmarble mausoleum in Agra")
	assert.Contains(t, gen.Calls[0].User, "No Web info available.")
}

func TestResearchAgentFallsBackToWeb(t *testing.T) {
	kn := &fakeKnowledge{}
	web := &recordingWeb{outcome: websearch.Outcome{
		Status:  websearch.StatusSuccess,
		Results: []websearch.Result{{Title: "Taj Mahal", Body: "web snippet"}},
	}}
	gen := llm.NewMockClient("answer")

	agent := NewResearchAgent(kn, web, gen, observability.Discard())
	agent.Answer(context.Background(), "tell me about taj mahal")

	require.Equal(t, []string{"tell me about taj mahal"}, web.queries)
	require.Len(t, gen.Calls, 1)
	assert.Contains(t, gen.Calls[0].User, "No RAG info available.")
	assert.Contains(t, gen.Calls[0].User, "--- Web Result: Taj Mahal ---\nweb snippet")
}

func TestResearchAgentIrrelevantRecordsTriggerFallback(t *testing.T) {
	// High score but wrong attraction: filtered out, so web search runs.
	kn := &fakeKnowledge{records: []knowledge.Record{
		record("Madame Tussauds", "wax museum", 0.95, nil),
	}}
	web := &recordingWeb{outcome: websearch.Outcome{Status: websearch.StatusError, Message: "offline"}}
	gen := llm.NewMockClient("answer")

	agent := NewResearchAgent(kn, web, gen, observability.Discard())
	agent.Answer(context.Background(), "tell me about taj mahal")

	require.Len(t, web.queries, 1)
	require.Len(t, gen.Calls, 1)
	assert.Contains(t, gen.Calls[0].User, "No RAG info available.")
	assert.Contains(t, gen.Calls[0].User, "No Web info available.")
}

func TestResearchAgentGenerationErrorDegrades(t *testing.T) {
	kn := &fakeKnowledge{records: []knowledge.Record{
		record("Taj Mahal", "body", 0.9, nil),
	}}
	gen := &llm.MockClient{Err: errors.New("model unavailable")}

	agent := NewResearchAgent(kn, &recordingWeb{}, gen, observability.Discard())
	got := agent.Answer(context.Background(), "tell me about taj mahal")

	assert.True(t, strings.HasPrefix(got, "Error generating response: "), got)
	assert.Contains(t, got, "model unavailable")
}
