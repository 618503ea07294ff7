package core

import (
	"github.com/varalys/pincheck/internal/check"
	"github.com/varalys/pincheck/internal/engine"
	"github.com/varalys/pincheck/internal/manifest"
	"github.com/varalys/pincheck/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Result = engine.Result
type Table = check.Table
type Dependency = types.Dependency
type Finding = types.Finding

// Error kinds returned by Scan when the manifest cannot be used.
type NotFoundError = manifest.NotFoundError
type MalformedLineError = manifest.MalformedLineError

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) ([]Finding, error) {
	return engine.Scan(cfg)
}

// ScanWithStats runs a scan and also returns the parsed dependencies.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}

// DefaultTable returns a copy of the built-in insecure-version table.
func DefaultTable() Table { return check.DefaultTable() }

// Check matches already-parsed dependencies against table.
func Check(table Table, deps []Dependency) []Finding {
	return check.New(table).Check(deps)
}
