// Package config loads, validates, and normalizes pindex configuration.
//
// Configuration lives in a TOML file (default ~/.config/pindex/config.toml,
// falling back to ./pindex.toml). Every path field is tilde-expanded and made
// absolute during load. The matching section carries the scorer weights and
// acceptance thresholds consumed by internal/match and internal/enrich; the
// weights are hand-tuned constants and deliberately configurable.
package config
