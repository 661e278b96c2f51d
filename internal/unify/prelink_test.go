package unify

import (
	"testing"

	"pindex/internal/match"
	"pindex/internal/sources"
)

func TestPreLinkFingerprintHit(t *testing.T) {
	ipdb := decodeCorpus(t, sources.Ipdb, `{
		"4032": {"Title": "Medieval Madness", "ManufacturerShortName": "Williams", "DateOfManufacture": "1997"},
		"3781": {"Title": "Attack From Mars", "ManufacturerShortName": "Bally", "DateOfManufacture": "1995"}
	}`)
	lbdb := decodeCorpus(t, sources.Lbdb, `{
		"lb1": {"Name": "Medieval Madness", "Manufacturer": "Williams", "Year": 1997}
	}`)

	links := PreLink(ipdb, lbdb, match.NewScorer(match.DefaultWeights()), 0.60, nil)
	if got := links.LauncherToHistorical["lb1"]; got != "4032" {
		t.Fatalf("lb1 linked to %q, want 4032", got)
	}
	if got := links.HistoricalToLaunchers["4032"]; len(got) != 1 || got[0] != "lb1" {
		t.Fatalf("reverse link = %v", got)
	}
}

func TestPreLinkManufacturerFallback(t *testing.T) {
	// Launcher title is misspelled, so the fingerprint index misses and the
	// manufacturer-keyed fallback scan has to find the candidate.
	ipdb := decodeCorpus(t, sources.Ipdb, `{
		"3781": {"Title": "Attack From Mars", "ManufacturerShortName": "Bally", "DateOfManufacture": "1995"}
	}`)
	lbdb := decodeCorpus(t, sources.Lbdb, `{
		"lb2": {"Name": "Atack From Mars", "Manufacturer": "Bally", "Year": 1995}
	}`)

	links := PreLink(ipdb, lbdb, match.NewScorer(match.DefaultWeights()), 0.60, nil)
	if got := links.LauncherToHistorical["lb2"]; got != "3781" {
		t.Fatalf("lb2 linked to %q, want 3781", got)
	}
}

func TestPreLinkThresholdRejects(t *testing.T) {
	ipdb := decodeCorpus(t, sources.Ipdb, `{
		"1": {"Title": "Centigrade 37", "ManufacturerShortName": "Gottlieb", "DateOfManufacture": "1977"}
	}`)
	lbdb := decodeCorpus(t, sources.Lbdb, `{
		"lb3": {"Name": "Space Shuttle", "Manufacturer": "Williams", "Year": 1984}
	}`)

	links := PreLink(ipdb, lbdb, match.NewScorer(match.DefaultWeights()), 0.60, nil)
	if len(links.LauncherToHistorical) != 0 {
		t.Fatalf("unexpected links: %v", links.LauncherToHistorical)
	}
}

func TestPreLinkEmptyCorpora(t *testing.T) {
	links := PreLink(emptyCorpus(t, sources.Ipdb), emptyCorpus(t, sources.Lbdb),
		match.NewScorer(match.DefaultWeights()), 0.60, nil)
	if links == nil || len(links.LauncherToHistorical) != 0 {
		t.Fatalf("links = %+v", links)
	}
}
