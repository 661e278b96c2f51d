package enrich

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pindex/internal/catalog"
	"pindex/internal/testsupport"
)

func TestSessionRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFile(t, cfg.Sources.VpsdbPath, `{
		"mm-97": {"id": "mm-97", "name": "Medieval Madness", "manufacturer": "Williams", "year": 1997}
	}`)
	vpxFile := filepath.Join(cfg.Paths.TablesDir, "Medieval Madness (Williams 1997).vpx")
	scanPath := testsupport.WriteFile(t, filepath.Join(cfg.Paths.DataDir, "scan.json"), `[
		{"vpxFile": "`+filepath.ToSlash(vpxFile)+`",
		 "fileLastModified": 100,
		 "metadata": {
			"table_info": {"table_name": "Medieval Madness"},
			"properties": {"CompanyName": "Williams", "CompanyYear": "1997"}
		 }},
		{"vpxFile": ""}
	]`)

	store := testsupport.OpenStore(t, cfg)

	result, err := NewSession(cfg, store, nil, nil).Run(context.Background(), scanPath)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.SessionID == "" {
		t.Error("session id empty")
	}
	if result.Scanned != 1 {
		t.Errorf("scanned = %d, want 1 (empty path entry dropped)", result.Scanned)
	}
	if result.Stats.Matched != 1 {
		t.Fatalf("matched = %d, want 1", result.Stats.Matched)
	}
	if len(result.Tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(result.Tables))
	}
	table := result.Tables[0]
	if table.VpsID != "mm-97" {
		t.Errorf("vps id = %q", table.VpsID)
	}
	if table.Owner != catalog.OwnerCommunity {
		t.Errorf("owner = %q", table.Owner)
	}

	persisted, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(persisted) != 1 || persisted[0].VpsID != "mm-97" {
		t.Fatalf("persisted = %+v", persisted)
	}
	if _, err := os.Stat(cfg.Catalog.IndexExportPath); err != nil {
		t.Errorf("index not exported: %v", err)
	}
}

func TestLoadScanResultDefaults(t *testing.T) {
	path := testsupport.WriteFile(t, filepath.Join(t.TempDir(), "scan.json"), `[
		{"vpxFile": "/tables/afm/Attack From Mars.vpx", "fileLastModified": 7}
	]`)

	entries, err := LoadScanResult(path)
	if err != nil {
		t.Fatalf("LoadScanResult: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	record := entries[0].Record()
	if record.Folder != "/tables/afm" {
		t.Errorf("folder = %q", record.Folder)
	}
	if record.Owner != catalog.OwnerFileScan {
		t.Errorf("owner = %q", record.Owner)
	}
}
