// Package check matches pinned dependencies against an insecure-version table.
package check

import "github.com/varalys/pincheck/internal/types"

// Checker holds a private copy of the table it was built with.
type Checker struct {
	table Table
}

// New returns a Checker for table. Later changes to table do not affect it.
func New(table Table) *Checker {
	return &Checker{table: table.Clone()}
}

// Check returns a finding for every dependency whose version is textually
// equal to the table entry for its package, in input order.
func (c *Checker) Check(deps []types.Dependency) []types.Finding {
	out := []types.Finding{}
	for _, d := range deps {
		insecure, ok := c.table[d.Package]
		if !ok || d.Version != insecure {
			continue
		}
		out = append(out, types.Finding{
			Package:         d.Package,
			Version:         d.Version,
			InsecureVersion: insecure,
			Line:            d.Line,
		})
	}
	return out
}

// Table returns a copy of the checker's table.
func (c *Checker) Table() Table { return c.table.Clone() }
