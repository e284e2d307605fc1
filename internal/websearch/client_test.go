package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
)

func newTestClient(baseURL string, maxResults int) *Client {
	return NewClient(Config{BaseURL: baseURL, MaxResults: maxResults}, observability.Discard())
}

func TestSearchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "taj mahal", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Write([]byte(`{
			"Heading": "Taj Mahal",
			"AbstractText": "The Taj Mahal is an ivory-white marble mausoleum.",
			"RelatedTopics": [
				{"Text": "Agra Fort - A historical fort in the city of Agra."},
				{"Name": "Related", "Topics": [
					{"Text": "Mughal architecture - A style developed by the Mughals."}
				]}
			]
		}`))
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL, 3).Search(context.Background(), "taj mahal")

	require.Equal(t, StatusSuccess, outcome.Status)
	require.Len(t, outcome.Results, 3)
	assert.Equal(t, Result{Title: "Taj Mahal", Body: "The Taj Mahal is an ivory-white marble mausoleum."}, outcome.Results[0])
	assert.Equal(t, Result{Title: "Agra Fort", Body: "A historical fort in the city of Agra."}, outcome.Results[1])
	assert.Equal(t, Result{Title: "Mughal architecture", Body: "A style developed by the Mughals."}, outcome.Results[2])
}

func TestSearchCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"AbstractText": "abstract",
			"AbstractSource": "Wikipedia",
			"RelatedTopics": [
				{"Text": "One - first"},
				{"Text": "Two - second"},
				{"Text": "Three - third"}
			]
		}`))
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL, 2).Search(context.Background(), "anything")

	require.Equal(t, StatusSuccess, outcome.Status)
	assert.Len(t, outcome.Results, 2)
	assert.Equal(t, "Wikipedia", outcome.Results[0].Title)
}

func TestSearchEmptyAnswerIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"AbstractText": "", "RelatedTopics": []}`))
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL, 3).Search(context.Background(), "obscure query")

	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Empty(t, outcome.Results)
}

func TestSearchFailuresReturnErrorOutcome(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rate limited", http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			outcome := newTestClient(srv.URL, 3).Search(context.Background(), "taj mahal")

			assert.Equal(t, StatusError, outcome.Status)
			assert.Empty(t, outcome.Results)
			assert.NotEmpty(t, outcome.Message)
		})
	}
}

func TestSearchUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	outcome := newTestClient(srv.URL, 3).Search(context.Background(), "taj mahal")

	assert.Equal(t, StatusError, outcome.Status)
}

func TestRenderContext(t *testing.T) {
	outcome := Outcome{
		Status: StatusSuccess,
		Results: []Result{
			{Title: "Taj Mahal", Body: "a mausoleum"},
			{Title: "Agra Fort", Body: "a fort"},
		},
	}

	assert.Equal(t,
		"--- Web Result: Taj Mahal ---\na mausoleum\n\n--- Web Result: Agra Fort ---\na fort",
		RenderContext(outcome))

	assert.Equal(t, "", RenderContext(Outcome{Status: StatusError, Message: "boom"}))
	assert.Equal(t, "", RenderContext(Outcome{Status: StatusSuccess}))
}
