package match

import (
	"math"
	"testing"

	"pindex/internal/sources"
)

func TestScorePerfectMatch(t *testing.T) {
	vps := sources.Document{
		"name":         "Medieval Madness",
		"manufacturer": "Williams",
		"year":         float64(1997),
		"playerCount":  float64(4),
		"author":       "Brian Eddy",
	}
	ipdb := sources.Document{
		"Title":                 "Medieval Madness",
		"ManufacturerShortName": "Williams",
		"DateOfManufacture":     "06/1997",
		"MaxPlayersAllowed":     float64(4),
		"Designer":              "Brian Eddy",
	}

	score := NewScorer(DefaultWeights()).Score(vps, sources.Vpsdb, ipdb, sources.Ipdb, nil)
	if math.Abs(score.Total-1.0) > 1e-9 {
		t.Fatalf("Total = %v, want 1.0 (%+v)", score.Total, score)
	}
}

func TestScoreAbsentAttributesContributeZero(t *testing.T) {
	source := sources.Document{"name": "Fish Tales"}
	target := sources.Document{"Title": "Fish Tales"}

	score := NewScorer(DefaultWeights()).Score(source, sources.Vpsdb, target, sources.Ipdb, nil)
	if score.Name != 1.0 {
		t.Errorf("Name = %v, want 1.0", score.Name)
	}
	if score.Year != 0 || score.Manufacturer != 0 || score.Players != 0 || score.Author != 0 {
		t.Errorf("absent attributes scored: %+v", score)
	}
	if math.Abs(score.Total-0.40) > 1e-9 {
		t.Errorf("Total = %v, want 0.40", score.Total)
	}
}

func TestScoreYearMismatchScoresZero(t *testing.T) {
	source := sources.Document{"name": "Fish Tales", "year": float64(1992)}
	target := sources.Document{"Title": "Fish Tales", "Year": float64(1994)}

	score := NewScorer(DefaultWeights()).Score(source, sources.Vpsdb, target, sources.Ipdb, nil)
	if score.Year != 0 {
		t.Fatalf("Year = %v, want 0 on mismatch", score.Year)
	}
}

func TestScoreCandidateNamesImproveNameScore(t *testing.T) {
	source := sources.Document{"name": "mm_109c"}
	target := sources.Document{"Title": "Medieval Madness"}

	scorer := NewScorer(DefaultWeights())
	bare := scorer.Score(source, sources.Vpsdb, target, sources.Ipdb, nil)

	var cands Candidates
	cands.Add("Medieval Madness")
	boosted := scorer.Score(source, sources.Vpsdb, target, sources.Ipdb, &cands)

	if boosted.Name != 1.0 {
		t.Fatalf("candidate name score = %v, want 1.0", boosted.Name)
	}
	if boosted.Name <= bare.Name {
		t.Fatalf("candidate did not improve score: %v vs %v", boosted.Name, bare.Name)
	}
}

func TestCandidatesDeduplicate(t *testing.T) {
	var c Candidates
	c.Add("Medieval Madness")
	c.Add("")
	c.Add("Medieval Madness")
	c.Add("MM")
	if got := c.Names(); len(got) != 2 || got[0] != "Medieval Madness" || got[1] != "MM" {
		t.Fatalf("Names = %v", got)
	}
}

func TestYearFromDateString(t *testing.T) {
	doc := sources.Document{"DateOfManufacture": "June 12, 1997"}
	if got := Year(doc, sources.Ipdb); got != 1997 {
		t.Fatalf("Year = %d, want 1997", got)
	}
}

func TestYearRejectsImplausibleInteger(t *testing.T) {
	doc := sources.Document{"year": float64(15)}
	if got := Year(doc, sources.Vpsdb); got != 0 {
		t.Fatalf("Year = %d, want 0", got)
	}
}
