// Package testsupport provides shared helpers for package tests: a config
// seeded with per-test temp paths, file scaffolding, and catalog store
// lifecycle management.
package testsupport
