package textnorm

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	minYear = 1970
	maxYear = 2100
)

// Date-like inputs are normalized to dot separators first, then matched in
// priority order so "12.05.1997" never resolves to year 12 or 05.
var (
	separatorReplacer = strings.NewReplacer(",", ".", "/", ".", "-", ".")
	dayMonthYearRe    = regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.(\d{4})\b`)
	yearMonthDayRe    = regexp.MustCompile(`\b(\d{4})\.\d{1,2}\.\d{1,2}\b`)
	bareYearRe        = regexp.MustCompile(`\b(\d{4})\b`)
	shortDateRe       = regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.(\d{2})\b`)
	anyYearRe         = regexp.MustCompile(`(\d{4})`)
)

// ExtractYear finds the first plausible four-digit year in [1970, 2100]
// within a free-form string. Patterns are tried in priority order:
// DD.MM.YYYY, YYYY.MM.DD, a bare four-digit year, then a two-digit short
// date (00-49 resolve to 20xx, 50-99 to 19xx). Returns 0 when no year is
// found.
func ExtractYear(s string) int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	normalized := separatorReplacer.Replace(trimmed)

	for _, re := range []*regexp.Regexp{dayMonthYearRe, yearMonthDayRe, bareYearRe} {
		if m := re.FindStringSubmatch(normalized); m != nil {
			if year := plausibleYear(m[1]); year != 0 {
				return year
			}
		}
	}

	if m := shortDateRe.FindStringSubmatch(normalized); m != nil {
		short, err := strconv.Atoi(m[1])
		if err == nil {
			year := 1900 + short
			if short <= 49 {
				year = 2000 + short
			}
			if year >= minYear && year <= maxYear {
				return year
			}
		}
	}

	// Last resort: any four-digit run, even without word boundaries.
	if m := anyYearRe.FindStringSubmatch(normalized); m != nil {
		return plausibleYear(m[1])
	}
	return 0
}

func plausibleYear(digits string) int {
	year, err := strconv.Atoi(digits)
	if err != nil || year < minYear || year > maxYear {
		return 0
	}
	return year
}
