package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"pindex/internal/services"
)

// Index is the exported JSON index document.
type Index struct {
	Tables []Table `json:"tables"`
}

// ExportIndex writes the index document to path, creating parent
// directories as needed.
func ExportIndex(path string, tables []Table) error {
	doc := Index{Tables: tables}
	if doc.Tables == nil {
		doc.Tables = []Table{}
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return services.Wrap(services.ErrPersistence, "catalog", "export", "marshal index", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return services.Wrap(services.ErrPersistence, "catalog", "export", "create index directory", err)
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return services.Wrap(services.ErrPersistence, "catalog", "export", "write index", err)
	}
	return nil
}

// LoadIndex reads an index document from path.
func LoadIndex(path string) ([]Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "catalog", "load", "index file missing", err)
		}
		return nil, services.Wrap(services.ErrPersistence, "catalog", "load", "read index", err)
	}
	var doc Index
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, services.Wrap(services.ErrPersistence, "catalog", "load", "parse index", err)
	}
	return doc.Tables, nil
}
