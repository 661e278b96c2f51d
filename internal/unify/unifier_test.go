package unify

import (
	"testing"

	"pindex/internal/match"
	"pindex/internal/sources"
)

func decodeCorpus(t *testing.T, tag sources.Tag, payload string) *sources.Corpus {
	t.Helper()
	corpus, err := sources.Decode([]byte(payload), tag)
	if err != nil {
		t.Fatalf("Decode %s: %v", tag, err)
	}
	return corpus
}

func emptyCorpus(t *testing.T, tag sources.Tag) *sources.Corpus {
	t.Helper()
	return decodeCorpus(t, tag, `[]`)
}

func testUnifier(t *testing.T, ipdb, lbdb, vpinmdb *sources.Corpus) *Unifier {
	t.Helper()
	return NewUnifier(ipdb, lbdb, vpinmdb, match.NewScorer(match.DefaultWeights()), 0.60, 0.65)
}

func TestExtractIpdbID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.ipdb.org/machine.cgi?id=4032", "4032"},
		{"https://www.ipdb.org/machine.cgi?id=4032&gid=1", "4032"},
		{"https://www.ipdb.org/machine.cgi", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractIpdbID(tt.url); got != tt.want {
			t.Errorf("ExtractIpdbID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestUnifyDirectHistoricalReference(t *testing.T) {
	ipdb := decodeCorpus(t, sources.Ipdb, `{
		"4032": {"Title": "Medieval Madness", "ManufacturerShortName": "Williams",
		         "DateOfManufacture": "06/1997", "ImageFiles": [{"Url": "https://ipdb/img1.png"}]}
	}`)
	vps := sources.Document{
		"id": "mm-97", "name": "Medieval Madness", "manufacturer": "Williams",
		"year": float64(1997), "ipdbUrl": "https://www.ipdb.org/machine.cgi?id=4032",
	}

	entity := testUnifier(t, ipdb, emptyCorpus(t, sources.Lbdb), emptyCorpus(t, sources.Vpinmdb)).Unify(vps, "pindexID_1")
	if !entity.HasSource(sources.Ipdb, "4032") {
		t.Fatalf("ipdb not linked: %+v", entity.Sources)
	}
	if !containsString(entity.Images, "https://ipdb/img1.png") {
		t.Errorf("ipdb images not collected: %v", entity.Images)
	}
	if len(entity.Years) != 1 || entity.Years[0] != 1997 {
		t.Errorf("years = %v", entity.Years)
	}
}

func TestUnifyScoredFallbackAndThresholds(t *testing.T) {
	ipdb := decodeCorpus(t, sources.Ipdb, `{
		"4032": {"Title": "Medieval Madness", "ManufacturerShortName": "Williams", "DateOfManufacture": "1997"},
		"9999": {"Title": "Something Else Entirely", "ManufacturerShortName": "Gottlieb"}
	}`)
	lbdb := decodeCorpus(t, sources.Lbdb, `{
		"lb1": {"Name": "Medieval Madness", "Manufacturer": "Williams", "Year": 1997,
		        "Images": ["Big/MedievalMadness-01.png"]}
	}`)
	vps := sources.Document{"id": "mm-97", "name": "Medieval Madness", "manufacturer": "Williams", "year": float64(1997)}

	entity := testUnifier(t, ipdb, lbdb, emptyCorpus(t, sources.Vpinmdb)).Unify(vps, "pindexID_1")
	if !entity.HasSource(sources.Ipdb, "4032") {
		t.Fatalf("scored ipdb link missing: %+v", entity.Sources)
	}
	if entity.HasSource(sources.Ipdb, "9999") {
		t.Fatal("unrelated ipdb entry linked")
	}
	if !entity.HasSource(sources.Lbdb, "lb1") {
		t.Fatalf("lbdb link missing: %+v", entity.Sources)
	}
	if !containsString(entity.Images, "https://images.launchbox-app.com/Big/MedievalMadness-01.png") {
		t.Errorf("launcher image not made absolute: %v", entity.Images)
	}
}

func TestUnifyMediaDirectLookupOnly(t *testing.T) {
	vpinmdb := decodeCorpus(t, sources.Vpinmdb, `{
		"mm-97": {"table": {"wheel": "https://media/mm/wheel.png", "backglass": "https://media/mm/b2s.png"}}
	}`)
	vps := sources.Document{"id": "mm-97", "name": "Medieval Madness"}

	entity := testUnifier(t, emptyCorpus(t, sources.Ipdb), emptyCorpus(t, sources.Lbdb), vpinmdb).Unify(vps, "pindexID_1")
	if !entity.HasSource(sources.Vpinmdb, "mm-97") {
		t.Fatalf("media not linked: %+v", entity.Sources)
	}
	if !containsString(entity.Images, "https://media/mm/wheel.png") || !containsString(entity.Images, "https://media/mm/b2s.png") {
		t.Errorf("media urls not collected: %v", entity.Images)
	}
}

func TestUnifyNoMatchesStaysPrimaryOnly(t *testing.T) {
	ipdb := decodeCorpus(t, sources.Ipdb, `{"1": {"Title": "Unrelated Machine", "ManufacturerShortName": "Gottlieb"}}`)
	vps := sources.Document{"id": "h1", "name": "Totally Custom Homebrew"}

	entity := testUnifier(t, ipdb, emptyCorpus(t, sources.Lbdb), emptyCorpus(t, sources.Vpinmdb)).Unify(vps, "pindexID_7")
	if len(entity.Sources) != 1 || !entity.HasSource(sources.Vpsdb, "h1") {
		t.Fatalf("sources = %+v", entity.Sources)
	}
	if entity.Name != "Totally Custom Homebrew" {
		t.Fatalf("name = %q", entity.Name)
	}
}

func TestLaunchBoxImageURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Big/img.png", "https://images.launchbox-app.com/Big/img.png"},
		{"https://elsewhere/img.png", "https://elsewhere/img.png"},
		{"https://images.launchbox-app.com/x.png", "https://images.launchbox-app.com/x.png"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LaunchBoxImageURL(tt.in); got != tt.want {
			t.Errorf("LaunchBoxImageURL(%q) = %q", tt.in, got)
		}
	}
}
