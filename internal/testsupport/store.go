package testsupport

import (
	"testing"

	"pindex/internal/catalog"
	"pindex/internal/config"
)

// OpenStore opens the catalog store at the config's database path and closes
// it when the test finishes.
func OpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.OpenStore(cfg.Catalog.DBPath)
	if err != nil {
		t.Fatalf("open catalog store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close catalog store: %v", err)
		}
	})
	return store
}
