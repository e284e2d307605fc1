// Package handlers provides HTTP handlers for the Trip Agent API.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
)

// Orchestrator produces the combined answer for a query.
type Orchestrator interface {
	Run(ctx context.Context, query string) string
}

// MetadataAgent produces supplementary info for a query.
type MetadataAgent interface {
	Answer(ctx context.Context, query string) string
}

// AgentHandler exposes the synthesis agents over HTTP.
type AgentHandler struct {
	logger       *observability.Logger
	orchestrator Orchestrator
	metadata     MetadataAgent
}

// NewAgentHandler creates a new agent handler.
func NewAgentHandler(logger *observability.Logger, orchestrator Orchestrator, metadata MetadataAgent) *AgentHandler {
	return &AgentHandler{
		logger:       logger.WithComponent("handlers.agents"),
		orchestrator: orchestrator,
		metadata:     metadata,
	}
}

// FinalResponseRequestDTO is the request body for final response generation.
type FinalResponseRequestDTO struct {
	Content   string `json:"content,omitempty"`
	UserQuery string `json:"user_query,omitempty"`
}

// FinalResponseResponseDTO is the final response payload.
type FinalResponseResponseDTO struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Message  string `json:"message,omitempty"`
}

// AdditionalInfoRequestDTO is the request body for supplementary info.
type AdditionalInfoRequestDTO struct {
	Query string `json:"query"`
}

// AdditionalInfoResponseDTO is the supplementary info payload.
type AdditionalInfoResponseDTO struct {
	Success bool   `json:"success"`
	Info    string `json:"info"`
	Query   string `json:"query"`
	Message string `json:"message,omitempty"`
}

// Root handles GET / with API information.
func (h *AgentHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Trip Agent API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":          "/health",
			"final_response":  "/api/v1/final-response",
			"additional_info": "/api/v1/additional-info",
		},
	})
}

// FinalResponse handles POST /api/v1/final-response.
func (h *AgentHandler) FinalResponse(w http.ResponseWriter, r *http.Request) {
	var reqDTO FinalResponseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if reqDTO.Content == "" && reqDTO.UserQuery == "" {
		h.writeError(w, http.StatusBadRequest, "either 'content' or 'user_query' must be provided", "")
		return
	}

	h.logger.Info().Str("query", reqDTO.UserQuery).Msg("Final response requested")

	answer := h.orchestrator.Run(r.Context(), reqDTO.UserQuery)
	if strings.TrimSpace(answer) == "" {
		h.writeError(w, http.StatusBadGateway, "agent returned empty output", "")
		return
	}

	h.writeJSON(w, http.StatusOK, FinalResponseResponseDTO{
		Success:  true,
		Response: answer,
		Message:  "Final response generated successfully",
	})
}

// FinalResponseGet handles GET /api/v1/final-response?query=.
func (h *AgentHandler) FinalResponseGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		h.writeError(w, http.StatusBadRequest, "query parameter is required", "")
		return
	}

	answer := h.orchestrator.Run(r.Context(), query)
	if strings.TrimSpace(answer) == "" {
		h.writeError(w, http.StatusBadGateway, "agent returned empty output", "")
		return
	}

	h.writeJSON(w, http.StatusOK, FinalResponseResponseDTO{
		Success:  true,
		Response: answer,
		Message:  "Final response generated successfully",
	})
}

// AdditionalInfo handles POST /api/v1/additional-info.
func (h *AgentHandler) AdditionalInfo(w http.ResponseWriter, r *http.Request) {
	var reqDTO AdditionalInfoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if reqDTO.Query == "" {
		h.writeError(w, http.StatusBadRequest, "query is required", "")
		return
	}

	h.logger.Info().Str("query", reqDTO.Query).Msg("Additional info requested")

	info := h.metadata.Answer(r.Context(), reqDTO.Query)
	if strings.TrimSpace(info) == "" {
		h.writeError(w, http.StatusBadGateway, "agent returned empty output", "")
		return
	}

	h.writeJSON(w, http.StatusOK, AdditionalInfoResponseDTO{
		Success: true,
		Info:    info,
		Query:   reqDTO.Query,
		Message: "Additional information gathered successfully",
	})
}

// AdditionalInfoGet handles GET /api/v1/additional-info?query=.
func (h *AgentHandler) AdditionalInfoGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		h.writeError(w, http.StatusBadRequest, "query parameter is required", "")
		return
	}

	info := h.metadata.Answer(r.Context(), query)
	if strings.TrimSpace(info) == "" {
		h.writeError(w, http.StatusBadGateway, "agent returned empty output", "")
		return
	}

	h.writeJSON(w, http.StatusOK, AdditionalInfoResponseDTO{
		Success: true,
		Info:    info,
		Query:   query,
		Message: "Additional information gathered successfully",
	})
}

// TestBrowser handles GET /api/v1/test-browser?query= for quick manual
// testing from a browser address bar.
func (h *AgentHandler) TestBrowser(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		h.writeError(w, http.StatusBadRequest, "query parameter is required", "")
		return
	}

	h.logger.Info().Str("query", query).Msg("Browser test query")

	answer := h.orchestrator.Run(r.Context(), query)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"query":    query,
		"response": answer,
	})
}

func (h *AgentHandler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *AgentHandler) writeError(w http.ResponseWriter, status int, message, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := map[string]interface{}{
		"success": false,
		"error":   message,
	}
	if detail != "" {
		resp["detail"] = detail
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode error response")
	}
}
