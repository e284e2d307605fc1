package vectorstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	client, err := NewClient(Config{URL: url, Collection: "trip_rag_name", Dimension: 4})
	require.NoError(t, err)
	return client
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(Config{Collection: "c"})
	assert.Error(t, err)

	_, err = NewClient(Config{URL: "http://localhost:6333"})
	assert.Error(t, err)
}

func TestSearchMapsHits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/collections/trip_rag_name/points/search", r.URL.Path)

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 3, req.Limit)
		assert.True(t, req.WithPayload)

		w.Write([]byte(`{"result": [
			{"id": "a", "score": 0.91, "payload": {"page_content": "body one", "Attraction_name": "Taj Mahal"}},
			{"id": "b", "score": 0.42, "payload": {"page_content": "body two"}}
		]}`))
	}))
	defer srv.Close()

	docs, err := newTestClient(t, srv.URL).Search(context.Background(), []float32{0.1, 0.2, 0.3, 0.4}, 3)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "body one", docs[0].Document.Body)
	assert.Equal(t, 0.91, docs[0].Score)
	assert.Equal(t, "Taj Mahal", docs[0].Document.Attributes["Attraction_name"])
	assert.NotContains(t, docs[0].Document.Attributes, PayloadBodyKey)
	assert.Equal(t, "body two", docs[1].Document.Body)
}

func TestSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "collection not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Search(context.Background(), []float32{0.1}, 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestUpsertBuildsPayload(t *testing.T) {
	var got upsertRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/collections/trip_rag_name/points", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"result": {"status": "completed"}}`))
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL).Upsert(context.Background(), []Point{{
		ID:     "point-1",
		Vector: []float32{1, 2, 3, 4},
		Document: Document{
			Body:       "rendered text",
			Attributes: map[string]interface{}{"Attraction_name": "Taj Mahal"},
		},
	}})
	require.NoError(t, err)

	require.Len(t, got.Points, 1)
	assert.Equal(t, "point-1", got.Points[0].ID)
	assert.Equal(t, "rendered text", got.Points[0].Payload[PayloadBodyKey])
	assert.Equal(t, "Taj Mahal", got.Points[0].Payload["Attraction_name"])
}

func TestUpsertNoPointsIsNoop(t *testing.T) {
	client := newTestClient(t, "http://localhost:0")
	assert.NoError(t, client.Upsert(context.Background(), nil))
}

func TestRecreateCollection(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/trip_rag_name", r.URL.Path)
		methods = append(methods, r.Method)

		if r.Method == http.MethodPut {
			var req createCollectionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 4, req.Vectors.Size)
			assert.Equal(t, "Cosine", req.Vectors.Distance)
		}
		w.Write([]byte(`{"result": true}`))
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL).RecreateCollection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{http.MethodDelete, http.MethodPut}, methods)
}
