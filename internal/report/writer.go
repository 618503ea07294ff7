package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/varalys/pincheck/internal/types"
)

// Output formats accepted by Write.
const (
	FormatText     = "text"
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatSARIF    = "sarif"
	FormatMarkdown = "markdown"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatTable, FormatJSON, FormatSARIF, FormatMarkdown}
}

// Write renders findings in the requested format. An empty format means text.
func Write(w io.Writer, format string, findings []types.Finding, opts PrintOptions) error {
	// no `null` in JSON
	if findings == nil {
		findings = []types.Finding{}
	}
	switch strings.ToLower(format) {
	case "", FormatText:
		PrintText(w, findings, opts)
		return nil
	case FormatTable:
		return PrintTable(w, findings, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(findings)
	case FormatSARIF:
		return WriteSARIF(w, findings, opts)
	case FormatMarkdown, "md":
		return WriteMarkdown(w, findings, opts)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
}

// ShouldFail reports whether a run with these findings should exit non-zero
// when failing on findings is enabled.
func ShouldFail(findings []types.Finding, failOnFindings bool) bool {
	return failOnFindings && len(findings) > 0
}
