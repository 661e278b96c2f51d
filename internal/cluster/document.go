package cluster

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"pindex/internal/services"
	"pindex/internal/sources"
	"pindex/internal/unify"
)

// Document is the master catalog: every canonical entity plus the source
// corpora re-emitted verbatim, so consumers need no second download pass.
type Document struct {
	BuildID        string            `json:"build_id"`
	GeneratedAt    time.Time         `json:"generated_at"`
	SourceVersions map[string]string `json:"source_versions,omitempty"`
	Tables         []*unify.Entity   `json:"tables"`
	Raw            map[string]any    `json:"raw,omitempty"`
}

// WriteFile serializes the document to path, creating parent directories.
func (d *Document) WriteFile(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return services.Wrap(services.ErrValidation, "cluster", "export", "encode master catalog", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return services.Wrap(services.ErrPersistence, "cluster", "export", "create output directory", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return services.Wrap(services.ErrPersistence, "cluster", "export", "write master catalog", err)
	}
	return nil
}

// LoadDocument reads a previously written master catalog.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrPersistence, "cluster", "load", "read master catalog", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, services.Wrap(services.ErrValidation, "cluster", "load", "decode master catalog", err)
	}
	return &doc, nil
}

// sourceVersions collects whatever version stamp each corpus top-level
// object carries. Array-shaped corpora have none and are omitted.
func sourceVersions(corpora ...*sources.Corpus) map[string]string {
	versions := make(map[string]string)
	for _, corpus := range corpora {
		if v := corpusVersion(corpus); v != "" {
			versions[string(corpus.Tag)] = v
		}
	}
	if len(versions) == 0 {
		return nil
	}
	return versions
}

func corpusVersion(corpus *sources.Corpus) string {
	top, ok := corpus.Raw.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"version", "lastUpdated", "updatedAt", "generated"} {
		if v, ok := top[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func rawCorpora(corpora ...*sources.Corpus) map[string]any {
	raw := make(map[string]any)
	for _, corpus := range corpora {
		if corpus.Raw != nil {
			raw[string(corpus.Tag)] = corpus.Raw
		}
	}
	if len(raw) == 0 {
		return nil
	}
	return raw
}
