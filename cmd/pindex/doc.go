// Package main hosts the pindex CLI entrypoint and command graph.
//
// The Cobra-based command tree drives the two pipelines: scan (match a scan
// result against the spreadsheet corpus and fold it into the local catalog)
// and build (cross-link all corpora into the master catalog), plus catalog
// inspection and configuration scaffolding. It centralizes configuration
// resolution, catalog locking, and structured logging setup so subcommands
// can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
