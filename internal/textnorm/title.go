package textnorm

import (
	"regexp"
	"strings"
)

var (
	separatorsToSpaceRe = regexp.MustCompile(`[_.]`)
	versionSuffixRe     = regexp.MustCompile(`\s+v?\d+(\.\d+){0,3}\s*$`)
	editionSuffixRe     = regexp.MustCompile(`(?i)\s*(Chrome Edition|Sinister Six Edition|1920 Mod|Premium|Pro|LE|Never Say Die|Power Up Edition|Classic|Pinball Wizard|Quest for Money)\s*$`)
	genericTagRe        = regexp.MustCompile(`(?i)\s+\(?(remake|remastered|mod|reskin|recreation|original|homebrew|test)\)?\s*$`)
	byAuthorRe          = regexp.MustCompile(`\s+by\s+[A-Za-z0-9\s&\-]+$`)
	parentheticalRe     = regexp.MustCompile(`\s*\(.*\)`)
	trailingQualifierRe = regexp.MustCompile(`\s*[-:].*$`)
	leadingArticleRe    = regexp.MustCompile(`(?i)^(the|a|an)\b\s*`)
	modderPrefixRe      = regexp.MustCompile(`(?i)^(JP's|HH Mod)\s*`)
)

// CleanTitle reduces a raw title or filename stem to a comparable core:
// separators fold to spaces, trailing version numbers, edition suffixes,
// generic release tags, author credits, parenthetical and colon/dash
// qualifiers are removed, leading articles are dropped, and the result is
// lowercased with collapsed whitespace. Known community typos are corrected
// as the final step.
func CleanTitle(input string) string {
	if input == "" {
		return ""
	}
	cleaned := separatorsToSpaceRe.ReplaceAllString(input, " ")
	cleaned = parentheticalRe.ReplaceAllString(cleaned, "")
	cleaned = trailingQualifierRe.ReplaceAllString(cleaned, "")
	cleaned = versionSuffixRe.ReplaceAllString(cleaned, "")
	cleaned = editionSuffixRe.ReplaceAllString(cleaned, "")
	cleaned = genericTagRe.ReplaceAllString(cleaned, "")
	cleaned = byAuthorRe.ReplaceAllString(cleaned, "")
	cleaned = modderPrefixRe.ReplaceAllString(cleaned, "")
	cleaned = leadingArticleRe.ReplaceAllString(cleaned, "")
	cleaned = strings.ToLower(CleanSpaces(cleaned))
	return FixTypo(cleaned)
}

// typoFixes maps frequently seen community misspellings and shorthand to the
// canonical spreadsheet titles. Keys are the cleaned, lowercased form.
var typoFixes = map[string]string{
	"trongacy":            "tron legacy",
	"theyend of zelda":    "the legend of zelda",
	"bigbowski":           "the big lebowski pinball",
	"bigbowsky":           "the big lebowski pinball",
	"thal weapon":         "lethal weapon",
	"tas from crypt":      "tales from the crypt",
	"beavis and butt":     "beavis and butt-head",
	"lord of rings":       "lord of the rings",
	"last starfighter":    "the last starfighter",
	"simpsons":            "the simpsons",
	"friday 13th":         "friday the 13th",
	"spider":              "spider-man",
	"id4":                 "independence day",
	"metallica":           "metallica pro",
	"star wars trilogy":   "star wars trilogy special edition",
	"goonies":             "the goonies never say die pinball",
	"tommy":               "tommy pinball wizard",
	"doors":               "the doors",
	"it":                  "it pinball madness",
	"batman dark knight":  "batman the dark knight",
	"ace ventura":         "ace ventura pet detective",
	"cheech & chong":      "cheech and chong road trippin",
	"scarface":            "scarface balls and power",
	"walking dead":        "the walking dead",
	"terminator 1":        "the terminator",
	"terminator 2":        "terminator 2 judgment day",
	"terminator 3":        "terminator 3 rise of the machines",
	"queen limited":       "queen - the show must go on",
	"halloween":           "halloween 1978-1981",
	"wow":                 "jp's wow monopoly",
	"ghostbusters slimer": "jp's ghostbusters slimer",
}

// FixTypo corrects a cleaned title against the fixed typo table. Unknown
// titles pass through unchanged.
func FixTypo(cleaned string) string {
	if fixed, ok := typoFixes[cleaned]; ok {
		return fixed
	}
	return cleaned
}
