// Package textnorm provides the string normalization, similarity, and
// extraction primitives that underpin table matching.
//
// Two normal forms exist. The strict form lowercases and strips everything
// that is not a letter or digit; it feeds fingerprints and exact comparisons.
// The loose form keeps word boundaries (spaces, parentheses, hyphens) while
// dropping a fixed punctuation set; it feeds edit-distance similarity where
// partial credit matters. Both forms are idempotent.
//
// Year extraction follows a prioritized pattern list so date-like strings
// (DD.MM.YYYY, YYYY.MM.DD, bare years, two-digit short dates) all resolve to
// a plausible four-digit year in [1970, 2100].
package textnorm
