// Package catalog persists the local table index: one record per table file
// on disk, enriched with community metadata when a match is found. Records
// live in SQLite keyed by file path; the package also reads and writes the
// JSON index document consumed by frontends.
//
// Re-scans never start from scratch. Fresh scan results merge into the
// stored index, and a stored record survives until its file is gone from
// disk. Play statistics and the broken flag belong to the user and are
// carried across metadata updates.
package catalog
