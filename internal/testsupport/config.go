package testsupport

import (
	"path/filepath"
	"testing"

	"pindex/internal/config"
)

// NewConfig produces a config seeded with unique temp paths per test. Corpus
// files are not created; tests write the corpora they need.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.TablesDir = filepath.Join(base, "tables")
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Sources.VpsdbPath = filepath.Join(base, "data", "vpsdb.json")
	cfgVal.Sources.IpdbPath = filepath.Join(base, "data", "ipdb.json")
	cfgVal.Sources.LbdbPath = filepath.Join(base, "data", "lbdb.json")
	cfgVal.Sources.VpinmdbPath = filepath.Join(base, "data", "vpinmdb.json")
	cfgVal.Catalog.DBPath = filepath.Join(base, "catalog.db")
	cfgVal.Catalog.IndexExportPath = filepath.Join(base, "index.json")
	cfgVal.Catalog.MismatchJournal = filepath.Join(base, "logs", "mismatches.log")
	cfgVal.Build.OutputPath = filepath.Join(base, "master_catalog.json")
	cfgVal.Build.Workers = 1
	return &cfgVal
}
