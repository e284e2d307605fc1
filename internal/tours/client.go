// Package tours wraps the GetYourGuide partner API for live activity data.
package tours

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Summary is a single search hit from the activities index.
type Summary struct {
	ID    string
	Title string
}

// Details holds a tour mapped into the internal attribute schema. Missing
// provider fields stay empty, never placeholder text.
type Details struct {
	ID             string
	Name           string
	Highlights     []string
	Inclusions     []string
	Exclusions     []string
	Restrictions   []string
	Location       []string
	Rating         string
	Duration       string
	AdditionalInfo []string
}

// Attribute keys of the internal schema.
const (
	attrName           = "Attraction_name"
	attrWhyVisit       = "Why visit"
	attrIncluded       = "What included"
	attrNotIncluded    = "What not included"
	attrRestrictions   = "Restrictions"
	attrLocation       = "Location"
	attrRating         = "User Rating"
	attrDuration       = "Duration"
	attrAdditionalInfo = "additional Information"
)

// Attributes returns the details as the internal attribute mapping used by
// dataset export and ingestion. Empty fields are omitted.
func (d Details) Attributes() map[string]interface{} {
	attrs := map[string]interface{}{}
	if d.Name != "" {
		attrs[attrName] = d.Name
	}
	if len(d.Highlights) > 0 {
		attrs[attrWhyVisit] = d.Highlights
	}
	if len(d.Inclusions) > 0 {
		attrs[attrIncluded] = d.Inclusions
	}
	if len(d.Exclusions) > 0 {
		attrs[attrNotIncluded] = d.Exclusions
	}
	if len(d.Restrictions) > 0 {
		attrs[attrRestrictions] = d.Restrictions
	}
	if len(d.Location) > 0 {
		attrs[attrLocation] = d.Location
	}
	if d.Rating != "" {
		attrs[attrRating] = d.Rating
	}
	if d.Duration != "" {
		attrs[attrDuration] = d.Duration
	}
	if len(d.AdditionalInfo) > 0 {
		attrs[attrAdditionalInfo] = d.AdditionalInfo
	}
	return attrs
}

// API is the activities data source dependency.
type API interface {
	SearchTours(ctx context.Context, query string, limit int) ([]Summary, error)
	TourDetails(ctx context.Context, id string) (Details, error)
}

// Client talks to the GetYourGuide partner API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Config holds tours client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a new GetYourGuide client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.getyourguide.com/1"
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("tours API key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}, nil
}

type rawTour struct {
	TourID     json.Number `json:"tour_id"`
	ID         json.Number `json:"id"`
	ActivityID json.Number `json:"activityId"`
	Title      string      `json:"title"`
	Name       string      `json:"name"`
}

type searchToursResponse struct {
	Tours []rawTour `json:"tours"`
}

// SearchTours queries the activities index and returns hits that carry a
// usable identifier.
func (c *Client) SearchTours(ctx context.Context, query string, limit int) ([]Summary, error) {
	endpoint := fmt.Sprintf("%s/tours?q=%s&limit=%d&currency=USD&lang=en",
		c.baseURL, url.QueryEscape(query), limit)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	// The endpoint may return the list bare or under a "tours" key.
	var raw []rawTour
	if err := json.Unmarshal(body, &raw); err != nil {
		var wrapped searchToursResponse
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, fmt.Errorf("unmarshal search response: %w", err)
		}
		raw = wrapped.Tours
	}

	summaries := make([]Summary, 0, len(raw))
	for _, tour := range raw {
		id := firstNonEmpty(tour.TourID.String(), tour.ID.String(), tour.ActivityID.String())
		if id == "" {
			continue
		}
		summaries = append(summaries, Summary{
			ID:    id,
			Title: firstNonEmpty(tour.Title, tour.Name),
		})
	}

	return summaries, nil
}

type rawTourDetails struct {
	ID              json.Number `json:"id"`
	Name            string      `json:"name"`
	Title           string      `json:"title"`
	Highlights      []string    `json:"highlights"`
	Inclusions      []string    `json:"inclusions"`
	Exclusions      []string    `json:"exclusions"`
	Requirements    []string    `json:"requirements"`
	MeetingPoint    string      `json:"meeting_point"`
	Rating          float64     `json:"rating"`
	DurationMin     int         `json:"duration_min"`
	Duration        json.Number `json:"duration"`
	KnowBeforeYouGo []string    `json:"know_before_you_go"`
}

// TourDetails fetches a tour by id and maps it into the internal schema.
func (c *Client) TourDetails(ctx context.Context, id string) (Details, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/tours/%s", c.baseURL, url.PathEscape(id)))
	if err != nil {
		return Details{}, err
	}

	var raw rawTourDetails
	if err := json.Unmarshal(body, &raw); err != nil {
		return Details{}, fmt.Errorf("unmarshal tour details: %w", err)
	}

	return mapDetails(id, raw), nil
}

func mapDetails(id string, raw rawTourDetails) Details {
	d := Details{
		ID:             id,
		Name:           firstNonEmpty(raw.Name, raw.Title),
		Highlights:     raw.Highlights,
		Inclusions:     raw.Inclusions,
		Exclusions:     raw.Exclusions,
		Restrictions:   raw.Requirements,
		AdditionalInfo: raw.KnowBeforeYouGo,
	}

	if raw.MeetingPoint != "" {
		d.Location = []string{"Meeting Point: " + raw.MeetingPoint}
	}
	if raw.Rating > 0 {
		d.Rating = strconv.FormatFloat(raw.Rating, 'g', -1, 64) + " stars"
	}
	switch {
	case raw.DurationMin > 0:
		d.Duration = fmt.Sprintf("%d minutes", raw.DurationMin)
	case raw.Duration.String() != "":
		d.Duration = raw.Duration.String() + " minutes"
	}

	return d
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tours API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var _ API = (*Client)(nil)
