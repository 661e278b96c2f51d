// Package sources loads the four metadata corpora and maps their uneven
// field vocabularies onto a common set of comparable attributes. Each corpus
// uses its own key names for title, manufacturer, year, player count, and
// author; the per-source field tables here are the single place that
// knowledge lives.
package sources
