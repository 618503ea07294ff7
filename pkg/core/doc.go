// Package core provides a small, stable facade over pincheck's internal
// engine for external integrations.
//
// Example:
//
//	findings, err := core.Scan(core.Config{ManifestPath: "requirements.txt"})
//	if err != nil { /* handle */ }
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
