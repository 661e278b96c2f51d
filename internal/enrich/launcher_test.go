package enrich

import (
	"testing"

	"pindex/internal/catalog"
	"pindex/internal/config"
	"pindex/internal/sources"
)

func lbCorpus(t *testing.T, payload string) *sources.Corpus {
	t.Helper()
	corpus, err := sources.Decode([]byte(payload), sources.Lbdb)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return corpus
}

func TestLauncherLinkSetsID(t *testing.T) {
	corpus := lbCorpus(t, `{
		"lb1": {"Name": "Medieval Madness", "Manufacturer": "Williams", "Year": 1997},
		"lb2": {"Name": "Centigrade 37", "Manufacturer": "Gottlieb", "Year": 1977}
	}`)
	table := catalog.Table{
		VpxFile:      "/tables/mm.vpx",
		Title:        "Medieval Madness",
		Manufacturer: "Williams",
		Year:         "1997",
		LbdbID:       "stale",
	}

	NewLauncherLinker(corpus, config.Default().Matching, nil).Link(&table, nil)
	if table.LbdbID != "lb1" {
		t.Fatalf("LbdbID = %q, want lb1", table.LbdbID)
	}
}

func TestLauncherLinkBelowThresholdClearsID(t *testing.T) {
	corpus := lbCorpus(t, `{
		"lb2": {"Name": "Centigrade 37", "Manufacturer": "Gottlieb", "Year": 1977}
	}`)
	table := catalog.Table{
		VpxFile: "/tables/custom.vpx",
		Title:   "Completely Unrelated Homebrew",
		LbdbID:  "stale",
	}

	NewLauncherLinker(corpus, config.Default().Matching, nil).Link(&table, nil)
	if table.LbdbID != "" {
		t.Fatalf("LbdbID = %q, want empty", table.LbdbID)
	}
}
