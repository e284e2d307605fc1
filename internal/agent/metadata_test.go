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

func withInfo(name string, score float64, info interface{}) knowledge.Record {
	return record(name, "body", score, map[string]interface{}{
		knowledge.AttrAdditionalInfo: info,
	})
}

func metadataUserContent(t *testing.T, gen *llm.MockClient) string {
	t.Helper()
	require.Len(t, gen.Calls, 1)
	assert.Equal(t, metadataSystemPrompt, gen.Calls[0].System)
	return gen.Calls[0].User
}

func TestMetadataAgentAnchorsToTopAttraction(t *testing.T) {
	// Both records clear score and relevance for the query, but facts from
	// the second attraction must not leak into the first one's answer.
	kn := &fakeKnowledge{records: []knowledge.Record{
		withInfo("Taj Mahal", 0.9, "Closed on Fridays"),
		withInfo("Agra Fort", 0.8, "Audio guides available"),
	}}
	gen := llm.NewMockClient("condensed bullets")

	agent := NewMetadataAgent(kn, &recordingWeb{}, gen, observability.Discard())
	got := agent.Answer(context.Background(), "taj mahal agra fort")

	assert.Equal(t, "condensed bullets", got)
	user := metadataUserContent(t, gen)
	assert.Contains(t, user, "- Closed on Fridays")
	assert.NotContains(t, user, "Audio guides available")
}

func TestMetadataAgentParsesJSONArrayStrings(t *testing.T) {
	kn := &fakeKnowledge{records: []knowledge.Record{
		withInfo("Taj Mahal", 0.9, `["No drones", "Carry ID"]`),
	}}
	gen := llm.NewMockClient("ok")

	agent := NewMetadataAgent(kn, &recordingWeb{}, gen, observability.Discard())
	agent.Answer(context.Background(), "taj mahal")

	user := metadataUserContent(t, gen)
	assert.Contains(t, user, "- Carry ID\n- No drones")
}

func TestMetadataAgentListValueAndDedupe(t *testing.T) {
	kn := &fakeKnowledge{records: []knowledge.Record{
		withInfo("Taj Mahal", 0.9, []interface{}{"Weather dependent", "Carry ID"}),
		withInfo("Taj Mahal", 0.7, "Carry ID"),
	}}
	gen := llm.NewMockClient("ok")

	agent := NewMetadataAgent(kn, &recordingWeb{}, gen, observability.Discard())
	agent.Answer(context.Background(), "taj mahal")

	user := metadataUserContent(t, gen)
	assert.Contains(t, user, "- Carry ID\n- Weather dependent")
	assert.Equal(t, 1, strings.Count(user, "- Carry ID"))
}

func TestMetadataAgentMalformedJSONFallsBackToRawValue(t *testing.T) {
	kn := &fakeKnowledge{records: []knowledge.Record{
		withInfo("Taj Mahal", 0.9, `["unterminated`),
	}}
	gen := llm.NewMockClient("ok")

	agent := NewMetadataAgent(kn, &recordingWeb{}, gen, observability.Discard())
	agent.Answer(context.Background(), "taj mahal")

	user := metadataUserContent(t, gen)
	assert.Contains(t, user, `- ["unterminated`)
}

func TestMetadataAgentWebFallback(t *testing.T) {
	kn := &fakeKnowledge{records: []knowledge.Record{
		record("Taj Mahal", "body", 0.9, nil), // no additional info attribute
	}}
	web := &recordingWeb{outcome: websearch.Outcome{
		Status: websearch.StatusSuccess,
		Results: []websearch.Result{
			{Title: "a", Body: "first snippet"},
			{Title: "b", Body: "second snippet"},
			{Title: "c", Body: "third snippet"},
		},
	}}
	gen := llm.NewMockClient("ok")

	agent := NewMetadataAgent(kn, web, gen, observability.Discard())
	agent.Answer(context.Background(), "taj mahal")

	require.Equal(t, []string{"taj mahal additional tourist information details"}, web.queries)
	user := metadataUserContent(t, gen)
	assert.Contains(t, user, "- Web: first snippet")
	assert.Contains(t, user, "- Web: second snippet")
	assert.NotContains(t, user, "third snippet", "fallback is capped at two results")
}

func TestMetadataAgentNothingFoundReturnsSentinel(t *testing.T) {
	kn := &fakeKnowledge{}
	web := &recordingWeb{outcome: websearch.Outcome{Status: websearch.StatusError, Message: "offline"}}
	gen := llm.NewMockClient("should not be called")

	agent := NewMetadataAgent(kn, web, gen, observability.Discard())
	got := agent.Answer(context.Background(), "taj mahal")

	assert.Equal(t, NoInfoSentinel, got)
	assert.Empty(t, gen.Calls, "LLM must not run when there is nothing to condense")
}

func TestMetadataAgentSynthesisErrorDegrades(t *testing.T) {
	kn := &fakeKnowledge{records: []knowledge.Record{
		withInfo("Taj Mahal", 0.9, "Closed on Fridays"),
	}}
	gen := &llm.MockClient{Err: errors.New("model unavailable")}

	agent := NewMetadataAgent(kn, &recordingWeb{}, gen, observability.Discard())
	got := agent.Answer(context.Background(), "taj mahal")

	assert.True(t, strings.HasPrefix(got, "Error gathering info: "), got)
}

func TestIsNoInfoFound(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{NoInfoSentinel, true},
		{"no specific additional info found.", true},
		{"NO SPECIFIC ADDITIONAL INFORMATION FOUND.", true},
		{"prefix text No specific additional info found. suffix", true},
		{"- Closed on Fridays", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNoInfoFound(tt.text), tt.text)
	}
}
