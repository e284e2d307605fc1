package tours

import "context"

// MockClient serves canned tour data for local development when no partner
// API key is configured.
type MockClient struct{}

// NewMockClient creates a mock activities source.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// SearchTours returns the canned Venice tours regardless of query.
func (m *MockClient) SearchTours(ctx context.Context, query string, limit int) ([]Summary, error) {
	summaries := []Summary{
		{ID: "12345", Title: "Venice: Grand Canal Gondola Ride"},
		{ID: "67890", Title: "Venice: Doge's Palace Skip-the-Line Tour"},
	}
	if limit > 0 && limit < len(summaries) {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// TourDetails returns canned details, richest for the gondola tour.
func (m *MockClient) TourDetails(ctx context.Context, id string) (Details, error) {
	if id == "12345" {
		return mapDetails(id, rawTourDetails{
			Name:            "Venice: Grand Canal Gondola Ride",
			Highlights:      []string{"Glide down the Grand Canal", "See historic palazzos"},
			Inclusions:      []string{"Gondola ride", "Live commentary"},
			Exclusions:      []string{"Food and drink", "Hotel pickup"},
			MeetingPoint:    "St. Mark's Square, by the column",
			Requirements:    []string{"No large bags"},
			Rating:          4.8,
			DurationMin:     30,
			KnowBeforeYouGo: []string{"Ride is shared with others", "Weather dependent"},
		}), nil
	}

	return mapDetails(id, rawTourDetails{
		Name:        "Sample Tour",
		Highlights:  []string{"Highlight 1"},
		Inclusions:  []string{"Inclusion 1"},
		Rating:      4.5,
		DurationMin: 60,
	}), nil
}

var _ API = (*MockClient)(nil)
