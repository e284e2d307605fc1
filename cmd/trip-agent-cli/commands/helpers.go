package commands

import (
	"fmt"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/agent"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/cache"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/config"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/embedding"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/knowledge"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/llm"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/tours"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/vectorstore"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/websearch"
)

// loadConfig loads configuration from the --config flag or environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds a console logger; quiet unless --verbose is set.
func newLogger(cfg *config.Config) *observability.Logger {
	level := "error"
	if verbose {
		level = cfg.Observability.LogLevel
	}
	return observability.NewLogger(observability.LogConfig{
		Level:       level,
		Format:      "console",
		ServiceName: "trip-agent-cli",
	})
}

// newEmbedder builds the embedding client from config.
func newEmbedder(cfg *config.Config) (embedding.Embedder, error) {
	embedder, err := embedding.NewClient(embedding.Config{
		BaseURL:   cfg.Embedding.BaseURL,
		APIKey:    cfg.Embedding.APIKey,
		Model:     cfg.Embedding.Model,
		Dimension: cfg.Embedding.Dimension,
		Timeout:   cfg.Embedding.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding client: %w", err)
	}
	return embedder, nil
}

// newVectorClient builds the Qdrant client from config.
func newVectorClient(cfg *config.Config) (*vectorstore.Client, error) {
	client, err := vectorstore.NewClient(vectorstore.Config{
		URL:        cfg.VectorStore.URL,
		Collection: cfg.VectorStore.Collection,
		Dimension:  cfg.VectorStore.Dimension,
		Timeout:    cfg.VectorStore.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("vector store client: %w", err)
	}
	return client, nil
}

// newOrchestrator assembles the full query pipeline.
func newOrchestrator(cfg *config.Config, logger *observability.Logger) (*agent.Orchestrator, error) {
	embedder, err := newEmbedder(cfg)
	if err != nil {
		return nil, err
	}

	vectorClient, err := newVectorClient(cfg)
	if err != nil {
		return nil, err
	}

	retriever := knowledge.NewRetriever(
		vectorstore.NewStore(embedder, vectorClient),
		knowledge.Config{
			TopK:           cfg.Retrieval.TopK,
			ScoreThreshold: cfg.Retrieval.ScoreThreshold,
		}, logger)

	webClient := websearch.NewClient(websearch.Config{
		BaseURL:    cfg.WebSearch.BaseURL,
		MaxResults: cfg.WebSearch.MaxResults,
		Timeout:    cfg.WebSearch.Timeout,
	}, logger)

	generator, err := llm.NewClient(llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("llm client: %w", err)
	}

	research := agent.NewResearchAgent(retriever, webClient, generator, logger)
	metadata := agent.NewMetadataAgent(retriever, webClient, generator, logger)

	return agent.NewOrchestrator(research, metadata, logger,
		agent.WithAnswerCache(cache.NewMemoryClient(cfg.Cache.MaxEntries), cfg.Cache.TTL)), nil
}

// newToursAPI returns the live client when an API key is configured, the
// mock source otherwise.
func newToursAPI(cfg *config.Config) (tours.API, error) {
	if cfg.Tours.APIKey == "" {
		return tours.NewMockClient(), nil
	}
	client, err := tours.NewClient(tours.Config{
		BaseURL: cfg.Tours.BaseURL,
		APIKey:  cfg.Tours.APIKey,
		Timeout: cfg.Tours.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("tours client: %w", err)
	}
	return client, nil
}
