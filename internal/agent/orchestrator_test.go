package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/cache"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
)

type countingAgent struct {
	answer string
	calls  int
}

func (a *countingAgent) Answer(ctx context.Context, query string) string {
	a.calls++
	return a.answer
}

func TestOrchestratorAppendsSupplementaryInfo(t *testing.T) {
	research := &countingAgent{answer: "main answer"}
	metadata := &countingAgent{answer: "- Closed on Fridays"}

	o := NewOrchestrator(research, metadata, observability.Discard())
	got := o.Run(context.Background(), "taj mahal")

	assert.Equal(t, "main answer\n\n---\n### ℹ️ Supplementary Information\n- Closed on Fridays", got)
	assert.Equal(t, 1, research.calls)
	assert.Equal(t, 1, metadata.calls)
}

func TestOrchestratorSkipsSentinelSupplementary(t *testing.T) {
	tests := []struct {
		name     string
		metadata string
	}{
		{"synthesizer sentinel", NoInfoSentinel},
		{"model phrasing", "No specific additional info found."},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrchestrator(
				&countingAgent{answer: "main answer"},
				&countingAgent{answer: tt.metadata},
				observability.Discard())

			assert.Equal(t, "main answer", o.Run(context.Background(), "taj mahal"))
		})
	}
}

func TestOrchestratorCachesAnswers(t *testing.T) {
	research := &countingAgent{answer: "main answer"}
	metadata := &countingAgent{answer: NoInfoSentinel}

	o := NewOrchestrator(research, metadata, observability.Discard(),
		WithAnswerCache(cache.NewMemoryClient(10), time.Minute))

	first := o.Run(context.Background(), "taj mahal")
	second := o.Run(context.Background(), "taj mahal")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, research.calls, "second run must be served from cache")
	assert.Equal(t, 1, metadata.calls)
}

func TestOrchestratorDoesNotCacheErrorAnswers(t *testing.T) {
	research := &countingAgent{answer: "Error generating response: model unavailable"}
	metadata := &countingAgent{answer: NoInfoSentinel}

	o := NewOrchestrator(research, metadata, observability.Discard(),
		WithAnswerCache(cache.NewMemoryClient(10), time.Minute))

	o.Run(context.Background(), "taj mahal")
	o.Run(context.Background(), "taj mahal")

	assert.Equal(t, 2, research.calls, "degraded answers are retried, not cached")
}
