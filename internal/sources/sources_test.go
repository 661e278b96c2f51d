package sources

import "testing"

func TestTextFallsThroughKeys(t *testing.T) {
	doc := Document{"Title": "", "title": "Medieval Madness"}
	got, ok := Text(doc, NameFields(Ipdb)...)
	if !ok || got != "Medieval Madness" {
		t.Fatalf("Text = %q, %v", got, ok)
	}
}

func TestTextJoinsAuthorList(t *testing.T) {
	doc := Document{"authors": []any{"Brian Eddy", "Lyman Sheats"}}
	got, ok := Text(doc, AuthorFields(Vpsdb)...)
	if !ok || got != "Brian Eddy, Lyman Sheats" {
		t.Fatalf("Text = %q, %v", got, ok)
	}
}

func TestTextMissing(t *testing.T) {
	if got, ok := Text(Document{}, "name"); ok || got != "" {
		t.Fatalf("Text on empty doc = %q, %v", got, ok)
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		keys []string
		want int
		ok   bool
	}{
		{"json number", Document{"playerCount": float64(4)}, []string{"playerCount"}, 4, true},
		{"numeric string", Document{"Players": " 2 "}, []string{"Players"}, 2, true},
		{"non-numeric string", Document{"Players": "four"}, []string{"Players"}, 0, false},
		{"absent", Document{}, []string{"playerCount"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Integer(tt.doc, tt.keys...)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("Integer = %d, %v, want %d, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSourceVocabularies(t *testing.T) {
	doc := Document{
		"Title":                 "Attack from Mars",
		"ManufacturerShortName": "Bally",
		"MaxPlayersAllowed":     float64(4),
		"Designer":              "Brian Eddy",
	}
	if got := Name(doc, Ipdb); got != "Attack from Mars" {
		t.Errorf("Name = %q", got)
	}
	if got := Manufacturer(doc, Ipdb); got != "Bally" {
		t.Errorf("Manufacturer = %q", got)
	}
	if got := Players(doc, Ipdb); got != 4 {
		t.Errorf("Players = %d", got)
	}
	if got := Author(doc, Ipdb); got != "Brian Eddy" {
		t.Errorf("Author = %q", got)
	}
}
