package textnorm

import "testing"

func TestNormalizeStrict(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Medieval Madness", "medievalmadness"},
		{"The Addams Family (Bally 1992)", "theaddamsfamilybally1992"},
		{"X-Men", "xmen"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := NormalizeStrict(tt.input); got != tt.want {
			t.Errorf("NormalizeStrict(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeStrictIdempotent(t *testing.T) {
	inputs := []string{
		"Medieval Madness (Williams 1997)",
		"JP's Street Fighter II",
		"Attack from Mars!",
		"",
		"Çiçek 2000",
	}
	for _, s := range inputs {
		once := NormalizeStrict(s)
		twice := NormalizeStrict(once)
		if once != twice {
			t.Errorf("NormalizeStrict not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestNormalizeLoose(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Who's  Tommy?", "whos tommy"},
		{"Terminator 2: Judgment Day", "terminator 2 judgment day"},
		{"AC/DC (Stern 2012)", "ac/dc (stern 2012)"},
		{"X-Men", "x-men"},
		{"  spaced   out  ", "spaced out"},
	}
	for _, tt := range tests {
		if got := NormalizeLoose(tt.input); got != tt.want {
			t.Errorf("NormalizeLoose(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeLooseIdempotent(t *testing.T) {
	inputs := []string{"Who's Tommy?", "Fish Tales", "T2: Judgment Day"}
	for _, s := range inputs {
		once := NormalizeLoose(s)
		if twice := NormalizeLoose(once); once != twice {
			t.Errorf("NormalizeLoose not idempotent for %q", s)
		}
	}
}

func TestFingerprint(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Medieval Madness", "medievalmadn"},
		{"Fish Tales", "fishtales"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Fingerprint(tt.input); got != tt.want {
			t.Errorf("Fingerprint(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/tables/medieval_madness.vpx", "Medieval Madness"},
		{"fish-tales.1994.vpx", "Fish Tales 1994"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleFromPath(tt.input); got != tt.want {
			t.Errorf("TitleFromPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCleanSpaces(t *testing.T) {
	if got := CleanSpaces("  a \t b\n c  "); got != "a b c" {
		t.Errorf("CleanSpaces = %q", got)
	}
}
