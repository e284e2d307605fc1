// Package websearch provides the web fallback used when the knowledge base
// has nothing relevant to offer.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
)

// Outcome statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is a single web search hit.
type Result struct {
	Title string
	Body  string
}

// Outcome is the tagged result of a web search. Failures are reported via
// Status rather than a Go error so callers can degrade gracefully.
type Outcome struct {
	Status  string
	Results []Result
	Message string
}

// Searcher performs web searches.
type Searcher interface {
	Search(ctx context.Context, query string) Outcome
}

// Client queries the DuckDuckGo Instant Answer API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxResults int
	logger     *observability.Logger
}

// Config holds web search client configuration.
type Config struct {
	BaseURL    string
	MaxResults int
	Timeout    time.Duration
}

// NewClient creates a new web search client.
func NewClient(cfg Config, logger *observability.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.duckduckgo.com"
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 3
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = observability.DefaultLogger()
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		maxResults: cfg.MaxResults,
		logger:     logger.WithComponent("websearch"),
	}
}

type instantAnswer struct {
	Heading        string         `json:"Heading"`
	AbstractText   string         `json:"AbstractText"`
	AbstractSource string         `json:"AbstractSource"`
	RelatedTopics  []relatedTopic `json:"RelatedTopics"`
}

type relatedTopic struct {
	Text   string         `json:"Text"`
	Topics []relatedTopic `json:"Topics"`
}

// Search runs the query against the instant answer API. Transport, HTTP and
// decoding failures all surface as a StatusError outcome, never as a panic
// or returned error.
func (c *Client) Search(ctx context.Context, query string) Outcome {
	endpoint := fmt.Sprintf("%s/?q=%s&format=json&no_html=1&skip_disambig=1", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return c.failure(query, fmt.Errorf("create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failure(query, fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.failure(query, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return c.failure(query, fmt.Errorf("search API error: status %d, body: %s", resp.StatusCode, string(body)))
	}

	var answer instantAnswer
	if err := json.Unmarshal(body, &answer); err != nil {
		return c.failure(query, fmt.Errorf("unmarshal response: %w", err))
	}

	results := c.collect(answer)

	c.logger.Debug().
		Str("query", query).
		Int("results", len(results)).
		Msg("Web search completed")

	return Outcome{Status: StatusSuccess, Results: results}
}

func (c *Client) collect(answer instantAnswer) []Result {
	results := make([]Result, 0, c.maxResults)

	if answer.AbstractText != "" {
		title := answer.Heading
		if title == "" {
			title = answer.AbstractSource
		}
		results = append(results, Result{Title: title, Body: answer.AbstractText})
	}

	var walk func(topics []relatedTopic)
	walk = func(topics []relatedTopic) {
		for _, topic := range topics {
			if len(results) >= c.maxResults {
				return
			}
			if len(topic.Topics) > 0 {
				walk(topic.Topics)
				continue
			}
			if topic.Text == "" {
				continue
			}
			title, body := splitTopicText(topic.Text)
			results = append(results, Result{Title: title, Body: body})
		}
	}
	walk(answer.RelatedTopics)

	if len(results) > c.maxResults {
		results = results[:c.maxResults]
	}
	return results
}

// splitTopicText separates a related topic into a short title and the rest
// of the snippet. Topic texts are usually "Name - description".
func splitTopicText(text string) (string, string) {
	if title, body, ok := strings.Cut(text, " - "); ok && title != "" && body != "" {
		return title, body
	}
	return text, text
}

func (c *Client) failure(query string, err error) Outcome {
	c.logger.Warn().
		Err(err).
		Str("query", query).
		Msg("Web search failed")

	return Outcome{Status: StatusError, Message: err.Error()}
}

// RenderContext formats web results as the context block handed to the LLM.
// Returns "" for empty or failed outcomes.
func RenderContext(outcome Outcome) string {
	if outcome.Status != StatusSuccess || len(outcome.Results) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(outcome.Results))
	for _, res := range outcome.Results {
		blocks = append(blocks, fmt.Sprintf("--- Web Result: %s ---\n%s", res.Title, res.Body))
	}

	return strings.Join(blocks, "\n\n")
}

var _ Searcher = (*Client)(nil)
