package tours

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// datasetEnvelope matches the scraper output format consumed by ingestion.
type datasetEnvelope struct {
	Success bool        `json:"success"`
	Data    datasetData `json:"data"`
}

type datasetData struct {
	Markdown string                 `json:"markdown"`
	Metadata datasetMetadata        `json:"metadata"`
	JSON     map[string]interface{} `json:"json"`
}

type datasetMetadata struct {
	Source string `json:"source"`
	ID     string `json:"id"`
}

// SaveToDataset writes tour details as a dataset JSON file so the ingestion
// pipeline can pick it up alongside scraped attraction files.
func SaveToDataset(details Details, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create dataset dir: %w", err)
	}

	name := details.Name
	if name == "" {
		name = "Unknown"
	}

	envelope := datasetEnvelope{
		Success: true,
		Data: datasetData{
			Markdown: fmt.Sprintf("# %s\n\n%s...", name, name),
			Metadata: datasetMetadata{Source: "GetYourGuide API", ID: details.ID},
			JSON:     details.Attributes(),
		},
	}

	payload, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal dataset file: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write dataset file: %w", err)
	}

	return path, nil
}
