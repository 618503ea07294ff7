package types

// Separator splits a package name from its pinned version in a manifest line.
const Separator = "=="

// Dependency is one pinned requirement read from a manifest. Line is the
// 1-based manifest line it came from.
type Dependency struct {
	Package string `json:"package"`
	Version string `json:"version"`
	Line    int    `json:"line,omitempty"`
}

// Finding is a dependency whose pinned version equals the known-insecure
// version recorded for its package.
type Finding struct {
	Package         string `json:"package"`
	Version         string `json:"version"`
	InsecureVersion string `json:"insecure_version"`
	Line            int    `json:"line,omitempty"`
}

// Requirement renders the finding back in manifest form.
func (f Finding) Requirement() string {
	return f.Package + Separator + f.Version
}
