package tours

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveToDataset(t *testing.T) {
	dir := t.TempDir()
	details := Details{
		ID:       "12345",
		Name:     "Venice: Grand Canal Gondola Ride",
		Rating:   "4.8 stars",
		Duration: "30 minutes",
	}

	path, err := SaveToDataset(details, dir, "gyg_venice.json")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Markdown string                 `json:"markdown"`
			Metadata map[string]string      `json:"metadata"`
			JSON     map[string]interface{} `json:"json"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))

	assert.True(t, envelope.Success)
	assert.Contains(t, envelope.Data.Markdown, "# Venice: Grand Canal Gondola Ride")
	assert.Equal(t, "GetYourGuide API", envelope.Data.Metadata["source"])
	assert.Equal(t, "12345", envelope.Data.Metadata["id"])
	assert.Equal(t, "Venice: Grand Canal Gondola Ride", envelope.Data.JSON["Attraction_name"])
	assert.Equal(t, "4.8 stars", envelope.Data.JSON["User Rating"])
}
