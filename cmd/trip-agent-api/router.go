// Package main provides the API router setup.
package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Ramya-Perumal-code/ai-trip-agent/cmd/trip-agent-api/handlers"
	"github.com/Ramya-Perumal-code/ai-trip-agent/cmd/trip-agent-api/middleware"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/agent"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/cache"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/config"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/embedding"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/knowledge"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/llm"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/vectorstore"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/websearch"
)

// NewRouter wires all services and returns the main API router.
func NewRouter(logger *observability.Logger, cfg *config.Config) (http.Handler, error) {
	orchestrator, metadataAgent, err := buildAgents(logger, cfg)
	if err != nil {
		return nil, err
	}

	agentHandler := handlers.NewAgentHandler(logger, orchestrator, metadataAgent)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))

	r.Get("/", agentHandler.Root)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","message":"API is running and ready to process requests","version":"1.0.0"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/final-response", agentHandler.FinalResponse)
		r.Get("/final-response", agentHandler.FinalResponseGet)
		r.Post("/additional-info", agentHandler.AdditionalInfo)
		r.Get("/additional-info", agentHandler.AdditionalInfoGet)
		r.Get("/test-browser", agentHandler.TestBrowser)
	})

	return r, nil
}

// buildAgents assembles the retrieval and synthesis stack from config.
func buildAgents(logger *observability.Logger, cfg *config.Config) (*agent.Orchestrator, *agent.MetadataAgent, error) {
	embedder, err := embedding.NewClient(embedding.Config{
		BaseURL:   cfg.Embedding.BaseURL,
		APIKey:    cfg.Embedding.APIKey,
		Model:     cfg.Embedding.Model,
		Dimension: cfg.Embedding.Dimension,
		Timeout:   cfg.Embedding.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("embedding client: %w", err)
	}

	vectorClient, err := vectorstore.NewClient(vectorstore.Config{
		URL:        cfg.VectorStore.URL,
		Collection: cfg.VectorStore.Collection,
		Dimension:  cfg.VectorStore.Dimension,
		Timeout:    cfg.VectorStore.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("vector store client: %w", err)
	}

	store := vectorstore.NewStore(embedder, vectorClient)

	retriever := knowledge.NewRetriever(store, knowledge.Config{
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
		return nil, nil, fmt.Errorf("llm client: %w", err)
	}

	research := agent.NewResearchAgent(retriever, webClient, generator, logger)
	metadata := agent.NewMetadataAgent(retriever, webClient, generator, logger)

	answerCache, err := buildCache(logger, cfg)
	if err != nil {
		return nil, nil, err
	}

	orchestrator := agent.NewOrchestrator(research, metadata, logger,
		agent.WithAnswerCache(answerCache, cfg.Cache.TTL))

	return orchestrator, metadata, nil
}

func buildCache(logger *observability.Logger, cfg *config.Config) (cache.Client, error) {
	if cfg.Cache.Driver == "redis" {
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		logger.Info().Str("addr", cfg.Cache.Redis.Addr).Msg("Using redis answer cache")
		return client, nil
	}
	return cache.NewMemoryClient(cfg.Cache.MaxEntries), nil
}
