package textnorm

import (
	"regexp"
	"strconv"
	"strings"
)

var numericVersionRe = regexp.MustCompile(`^\d+(\.\d+)*$`)

// NormalizeVersion prepares a version string for comparison: commas become
// dots, surrounding whitespace is trimmed, and a numeric prefix before a dash
// ("1.2-beta") is extracted when present.
func NormalizeVersion(version string) string {
	normalized := strings.TrimSpace(strings.ReplaceAll(version, ",", "."))
	if normalized == "" {
		return ""
	}
	if dash := strings.IndexByte(normalized, '-'); dash >= 0 {
		if prefix := normalized[:dash]; numericVersionRe.MatchString(prefix) {
			return prefix
		}
	}
	return normalized
}

// CompareVersions compares two dot-separated version strings component by
// component. Numeric components compare numerically; when either side of a
// pair is non-numeric the components compare lexicographically. Missing
// trailing components count as zero. Returns -1, 0, or 1.
func CompareVersions(a, b string) int {
	compsA := splitVersion(NormalizeVersion(a))
	compsB := splitVersion(NormalizeVersion(b))

	maxLen := len(compsA)
	if len(compsB) > maxLen {
		maxLen = len(compsB)
	}
	for i := 0; i < maxLen; i++ {
		var ca, cb string
		if i < len(compsA) {
			ca = compsA[i]
		}
		if i < len(compsB) {
			cb = compsB[i]
		}

		na, okA := numericComponent(ca)
		nb, okB := numericComponent(cb)
		if na != nb {
			if na > nb {
				return 1
			}
			return -1
		}
		if !okA || !okB {
			if cmp := strings.Compare(ca, cb); cmp != 0 {
				return cmp
			}
		}
	}
	return 0
}

// VersionGreater reports whether v1 is strictly newer than v2. An empty v1 is
// never newer; any non-empty v1 beats an empty v2.
func VersionGreater(v1, v2 string) bool {
	normV1 := NormalizeVersion(v1)
	normV2 := NormalizeVersion(v2)
	if normV1 == "" {
		return false
	}
	if normV2 == "" {
		return true
	}
	return CompareVersions(normV1, normV2) > 0
}

func splitVersion(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ".")
}

func numericComponent(c string) (int64, bool) {
	if c == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(c, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
