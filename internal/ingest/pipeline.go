// Package ingest loads attraction dataset files and uploads them into the
// vector store. Ingestion recreates the collection and must not run
// concurrently with serving.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/embedding"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/vectorstore"
)

// Store is the vector store dependency of the pipeline.
type Store interface {
	RecreateCollection(ctx context.Context) error
	Upsert(ctx context.Context, points []vectorstore.Point) error
}

// Result summarizes one ingestion run.
type Result struct {
	FilesLoaded int
	FilesFailed int
	Documents   int
}

// ProgressFunc is called after each document is embedded.
type ProgressFunc func(done, total int)

// Pipeline embeds dataset documents and uploads them to the vector store.
type Pipeline struct {
	embedder embedding.Embedder
	store    Store
	progress ProgressFunc
	logger   *observability.Logger
}

// NewPipeline creates an ingestion pipeline.
func NewPipeline(embedder embedding.Embedder, store Store, logger *observability.Logger) *Pipeline {
	if logger == nil {
		logger = observability.DefaultLogger()
	}
	return &Pipeline{
		embedder: embedder,
		store:    store,
		logger:   logger.WithComponent("ingest"),
	}
}

// OnProgress registers a progress callback.
func (p *Pipeline) OnProgress(fn ProgressFunc) {
	p.progress = fn
}

// Run loads every JSON file in dir, recreates the collection and uploads the
// rendered documents. Files that fail to parse are skipped and counted.
func (p *Pipeline) Run(ctx context.Context, dir string) (Result, error) {
	var result Result

	entries, err := os.ReadDir(dir)
	if err != nil {
		return result, fmt.Errorf("read dataset dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	docs := make([]vectorstore.Document, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		doc, err := loadDocument(path, name)
		if err != nil {
			p.logger.Warn().Err(err).Str("file", name).Msg("Skipping dataset file")
			result.FilesFailed++
			continue
		}
		docs = append(docs, doc)
		result.FilesLoaded++
	}

	if len(docs) == 0 {
		return result, fmt.Errorf("no documents found in %s", dir)
	}

	if err := p.store.RecreateCollection(ctx); err != nil {
		return result, fmt.Errorf("recreate collection: %w", err)
	}

	points := make([]vectorstore.Point, 0, len(docs))
	for i, doc := range docs {
		vector, err := p.embedder.EmbedSingle(ctx, doc.Body)
		if err != nil {
			return result, fmt.Errorf("embed document %d: %w", i, err)
		}
		points = append(points, vectorstore.Point{
			ID:       uuid.NewString(),
			Vector:   vector,
			Document: doc,
		})
		if p.progress != nil {
			p.progress(i+1, len(docs))
		}
	}

	if err := p.store.Upsert(ctx, points); err != nil {
		return result, fmt.Errorf("upload documents: %w", err)
	}

	result.Documents = len(points)
	p.logger.Info().
		Int("files", result.FilesLoaded).
		Int("documents", result.Documents).
		Msg("Ingestion completed")

	return result, nil
}

type datasetFile struct {
	Data *struct {
		JSON     map[string]interface{} `json:"json"`
		Metadata map[string]interface{} `json:"metadata"`
	} `json:"data"`
	JSON     map[string]interface{} `json:"json"`
	Metadata map[string]interface{} `json:"metadata"`
}

// loadDocument parses one dataset file. The attraction attributes may live
// under data.json, under a top-level json key, or be the file itself.
func loadDocument(path, name string) (vectorstore.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return vectorstore.Document{}, fmt.Errorf("read file: %w", err)
	}

	var file datasetFile
	attrs := map[string]interface{}{}
	meta := map[string]interface{}{}

	if err := json.Unmarshal(raw, &file); err == nil && file.Data != nil && file.Data.JSON != nil {
		attrs = file.Data.JSON
		if file.Data.Metadata != nil {
			meta = file.Data.Metadata
		}
	} else if err == nil && file.JSON != nil {
		attrs = file.JSON
		if file.Metadata != nil {
			meta = file.Metadata
		}
	} else {
		if err := json.Unmarshal(raw, &attrs); err != nil {
			return vectorstore.Document{}, fmt.Errorf("parse file: %w", err)
		}
	}

	return vectorstore.Document{
		Body:       RenderBody(attrs),
		Attributes: buildAttributes(attrs, meta, name, path),
	}, nil
}

// renderedKeys is the fixed rendering order of the document body.
var renderedKeys = []struct {
	key   string
	label string
	join  string
}{
	{"Attraction_name", "Attraction", ", "},
	{"Why visit", "Why visit", ", "},
	{"What included", "What's included", ", "},
	{"What not included", "What's not included", ", "},
	{"Restrictions", "Restrictions", ", "},
	{"Location", "Location", " "},
	{"User Rating", "User Rating", ", "},
	{"Duration", "Duration", ", "},
	{"additional Information", "additional Information", " "},
}

// RenderBody formats attraction attributes as the searchable document text,
// one labeled line per present attribute in a fixed order.
func RenderBody(attrs map[string]interface{}) string {
	lines := make([]string, 0, len(renderedKeys))
	for _, rk := range renderedKeys {
		val, ok := attrs[rk.key]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", rk.label, flatten(val, rk.join)))
	}
	return strings.Join(lines, "\n")
}

func flatten(val interface{}, sep string) string {
	switch v := val.(type) {
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringifyValue(item))
		}
		return strings.Join(parts, sep)
	case []string:
		return strings.Join(v, sep)
	default:
		return stringifyValue(val)
	}
}

func stringifyValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// bodyOnlyKeys are rendered into the body but not duplicated as individual
// attributes; the full attribute map is still kept under "json".
var bodyOnlyKeys = map[string]bool{
	"Why visit":         true,
	"What included":     true,
	"What not included": true,
	"Restrictions":      true,
	"Location":          true,
	"User Rating":       true,
	"Duration":          true,
}

// buildAttributes assembles the payload attributes stored alongside each
// document. Composite values are stored as JSON strings so downstream
// consumers can re-parse them.
func buildAttributes(attrs, meta map[string]interface{}, source, path string) map[string]interface{} {
	out := map[string]interface{}{
		"source":    source,
		"file_path": path,
	}

	if full, err := json.Marshal(attrs); err == nil {
		out["json"] = string(full)
	}

	for key, val := range attrs {
		if bodyOnlyKeys[key] {
			continue
		}
		out[key] = attributeString(val)
	}

	for key, val := range meta {
		if _, exists := out[key]; exists {
			continue
		}
		out[key] = attributeString(val)
	}

	return out
}

func attributeString(val interface{}) string {
	switch val.(type) {
	case map[string]interface{}, []interface{}, []string:
		if encoded, err := json.Marshal(val); err == nil {
			return string(encoded)
		}
	}
	return stringifyValue(val)
}
