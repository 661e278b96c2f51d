package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProbeCompanions(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{
		filepath.Join("pinmame", "altsound"),
		filepath.Join("pinmame", "altcolor"),
		"pupvideos",
		"Theatre.UltraDMD",
	} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{"mm.ini", "mm.vbs", "mm.directb2s"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := ProbeCompanions(dir, "mm")
	want := Companions{
		HasAltSound: true,
		HasAltColor: true,
		HasPup:      true,
		HasUltraDMD: true,
		HasB2S:      true,
		HasINI:      true,
		HasVBS:      true,
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestProbeCompanionsEmptyFolder(t *testing.T) {
	if got := ProbeCompanions(t.TempDir(), "mm"); got != (Companions{}) {
		t.Fatalf("got %+v, want all false", got)
	}
}

func TestProbeCompanionsSidecarsAreStemScoped(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "other.ini"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := ProbeCompanions(dir, "mm"); got.HasINI {
		t.Fatal("ini flag set for a different table's sidecar")
	}
}

func TestStem(t *testing.T) {
	if got := Stem("/tables/medieval_madness.vpx"); got != "medieval_madness" {
		t.Fatalf("Stem = %q", got)
	}
}

func TestOwnerRank(t *testing.T) {
	if OwnerRank(OwnerCommunity) <= OwnerRank(OwnerToolScan) {
		t.Fatal("community rank should beat tool scan")
	}
	if OwnerRank(OwnerToolScan) <= OwnerRank(OwnerFileScan) {
		t.Fatal("tool scan rank should beat plain file scan")
	}
	if OwnerRank("somebody else") != 0 {
		t.Fatal("unknown owner should rank zero")
	}
}
