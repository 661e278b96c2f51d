// Package enrich matches local catalog records against the community
// spreadsheet corpus and populates the matched metadata block. A record
// that already carries a spreadsheet id is re-linked directly; everything
// else goes through fuzzy matchmaking over cleaned candidate titles, with a
// score bonus when the record's ROM appears under a spreadsheet entry.
// Unmatched records land in a mismatch journal for manual review.
package enrich
