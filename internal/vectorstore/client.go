// Package vectorstore provides a Qdrant-backed similarity search service.
package vectorstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PayloadBodyKey is the payload field that carries the document body text.
const PayloadBodyKey = "page_content"

// Document is a stored knowledge document: an opaque text body plus a
// mapping of named attributes.
type Document struct {
	Body       string
	Attributes map[string]interface{}
}

// ScoredDocument pairs a document with its similarity score (higher = closer).
type ScoredDocument struct {
	Document Document
	Score    float64
}

// Point is a vector plus payload to be upserted into the collection.
type Point struct {
	ID       string
	Vector   []float32
	Document Document
}

// Client talks to a Qdrant server over its REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	collection string
	dimension  int
}

// Config holds Qdrant client configuration.
type Config struct {
	URL        string // e.g. http://localhost:6333
	Collection string
	Dimension  int
	Timeout    time.Duration
}

// NewClient creates a new Qdrant client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("vector store URL is required")
	}

	if cfg.Collection == "" {
		return nil, fmt.Errorf("vector store collection is required")
	}

	if cfg.Dimension <= 0 {
		cfg.Dimension = 768
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.URL,
		collection: cfg.Collection,
		dimension:  cfg.Dimension,
	}, nil
}

type searchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
}

type searchResponse struct {
	Result []searchHit `json:"result"`
	Status interface{} `json:"status"`
}

type searchHit struct {
	ID      interface{}            `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// Search returns the k nearest documents to the query vector, in descending
// score order as ranked by the backend.
func (c *Client) Search(ctx context.Context, vector []float32, k int) ([]ScoredDocument, error) {
	body, err := c.post(ctx, fmt.Sprintf("/collections/%s/points/search", c.collection), searchRequest{
		Vector:      vector,
		Limit:       k,
		WithPayload: true,
	})
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal search response: %w", err)
	}

	docs := make([]ScoredDocument, 0, len(resp.Result))
	for _, hit := range resp.Result {
		doc := Document{Attributes: map[string]interface{}{}}
		for key, val := range hit.Payload {
			if key == PayloadBodyKey {
				if s, ok := val.(string); ok {
					doc.Body = s
				}
				continue
			}
			doc.Attributes[key] = val
		}
		docs = append(docs, ScoredDocument{Document: doc, Score: hit.Score})
	}

	return docs, nil
}

type upsertRequest struct {
	Points []upsertPoint `json:"points"`
}

type upsertPoint struct {
	ID      string                 `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// Upsert writes points into the collection.
func (c *Client) Upsert(ctx context.Context, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	req := upsertRequest{Points: make([]upsertPoint, 0, len(points))}
	for _, p := range points {
		payload := map[string]interface{}{PayloadBodyKey: p.Document.Body}
		for key, val := range p.Document.Attributes {
			payload[key] = val
		}
		req.Points = append(req.Points, upsertPoint{
			ID:      p.ID,
			Vector:  p.Vector,
			Payload: payload,
		})
	}

	if _, err := c.put(ctx, fmt.Sprintf("/collections/%s/points?wait=true", c.collection), req); err != nil {
		return err
	}
	return nil
}

type createCollectionRequest struct {
	Vectors vectorParams `json:"vectors"`
}

type vectorParams struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"`
}

// RecreateCollection drops the collection if present and creates it fresh
// with cosine distance. Must not run concurrently with serving.
func (c *Client) RecreateCollection(ctx context.Context) error {
	// Delete is idempotent on Qdrant; a missing collection is not an error.
	if err := c.delete(ctx, fmt.Sprintf("/collections/%s", c.collection)); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}

	_, err := c.put(ctx, fmt.Sprintf("/collections/%s", c.collection), createCollectionRequest{
		Vectors: vectorParams{Size: c.dimension, Distance: "Cosine"},
	})
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

// Collection returns the collection name.
func (c *Client) Collection() string {
	return c.collection
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *Client) put(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, payload)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("qdrant API error: %s %s: status %d, body: %s", method, path, resp.StatusCode, string(body))
	}

	return body, nil
}
