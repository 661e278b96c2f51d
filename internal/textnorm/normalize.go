package textnorm

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeStrict lowercases the input and strips every rune that is not a
// letter or digit. Used for fingerprints and exact-form comparisons.
func NormalizeStrict(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// loosePunctuation is removed outright by NormalizeLoose; spaces, parentheses,
// and hyphens survive so word boundaries stay visible to edit distance.
const loosePunctuation = "_.',!?:&"

// NormalizeLoose lowercases the input, removes a fixed punctuation set, and
// collapses whitespace runs to single spaces.
func NormalizeLoose(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		if strings.ContainsRune(loosePunctuation, r) {
			continue
		}
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}

// CleanSpaces trims the input and collapses internal whitespace runs to
// single spaces.
func CleanSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Fingerprint returns the strict normal form truncated to 12 characters.
// Used as a cheap blocking key before scoring.
func Fingerprint(s string) string {
	fp := NormalizeStrict(s)
	if len(fp) > 12 {
		fp = fp[:12]
	}
	return fp
}

var displayTitleCaser = cases.Title(language.Und)

// TitleFromPath derives a display title from a file path: the base name with
// its extension removed, separators folded to spaces, and title casing
// applied.
func TitleFromPath(sourcePath string) string {
	if sourcePath == "" {
		return ""
	}
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var cleaned strings.Builder
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteByte(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return ""
	}
	return displayTitleCaser.String(title)
}
