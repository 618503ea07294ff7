package engine

import (
	"io"
	"log/slog"
	"time"

	"github.com/varalys/pincheck/internal/check"
	"github.com/varalys/pincheck/internal/manifest"
	"github.com/varalys/pincheck/internal/types"
)

// Config controls a single scan.
type Config struct {
	// ManifestPath defaults to manifest.DefaultPath when empty.
	ManifestPath string
	// Table defaults to check.DefaultTable() when nil.
	Table check.Table
	// Logger receives debug diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Result is the outcome of a scan.
type Result struct {
	ManifestPath string
	Dependencies []types.Dependency
	Findings     []types.Finding
	Duration     time.Duration
}

// Scan runs the pipeline once and returns the findings.
func Scan(cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats runs the pipeline once and returns findings along with the
// parsed dependencies and timing.
func ScanWithStats(cfg Config) (Result, error) {
	start := time.Now()
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	path := cfg.ManifestPath
	if path == "" {
		path = manifest.DefaultPath
	}
	table := cfg.Table
	if table == nil {
		table = check.DefaultTable()
	}

	log.Debug("reading manifest", "path", path)
	deps, err := manifest.ReadFile(path)
	if err != nil {
		return Result{ManifestPath: path}, err
	}
	log.Debug("manifest parsed", "path", path, "dependencies", len(deps))

	findings := check.New(table).Check(deps)
	log.Debug("check complete", "table_entries", len(table), "findings", len(findings))

	return Result{
		ManifestPath: path,
		Dependencies: deps,
		Findings:     findings,
		Duration:     time.Since(start),
	}, nil
}
