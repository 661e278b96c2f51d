// Package unify cross-links records between corpora. The prelinker joins
// the retro-launcher corpus to the arcade-historical corpus with cheap
// fingerprint blocking, and the unifier resolves each spreadsheet entry
// against every secondary corpus, producing a partial canonical entity per
// record. Entities keep the raw per-source payloads for audit alongside
// deduplicated aggregate arrays.
package unify
