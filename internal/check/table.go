package check

import "sort"

// Table maps a package name to the single version known to be insecure.
type Table map[string]string

// DefaultTable returns a fresh copy of the built-in insecure versions.
func DefaultTable() Table {
	return Table{
		"flask":    "1.0.2",
		"django":   "2.2",
		"requests": "2.19.1",
	}
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge returns a new table holding t's entries overridden by other's.
func (t Table) Merge(other Table) Table {
	out := t.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Packages lists the table's package names sorted.
func (t Table) Packages() []string {
	names := make([]string, 0, len(t))
	for k := range t {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
