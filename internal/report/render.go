package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"
	"github.com/varalys/pincheck/internal/types"
)

const (
	allClearMessage = "All dependencies are safe!"
	findingsHeader  = "Insecure dependencies found:"
)

type PrintOptions struct {
	NoColor      bool
	Manifest     string
	Dependencies int
	Duration     time.Duration
	ToolVersion  string
}

// paint styles s for w's terminal profile. Writers that are not terminals
// get s unchanged.
func paint(w io.Writer, noColor bool, color string, bold bool, s string) string {
	if noColor {
		return s
	}
	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() == termenv.Ascii {
		return s
	}
	return r.NewStyle().Bold(bold).Foreground(lipgloss.Color(color)).Render(s)
}

// PrintText writes the all-clear line, or a header followed by one line per
// finding in the order given.
func PrintText(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, paint(w, opts.NoColor, "2", false, allClearMessage))
		return
	}
	fmt.Fprintln(w, paint(w, opts.NoColor, "1", true, findingsHeader))
	for _, f := range findings {
		fmt.Fprintln(w, FormatFinding(f))
	}
}

// FormatFinding renders a single finding as a report line.
func FormatFinding(f types.Finding) string {
	return fmt.Sprintf("- %s (insecure version: %s)", f.Requirement(), f.InsecureVersion)
}

// PrintTable renders findings as a bordered table with a short summary footer.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) error {
	if len(findings) == 0 {
		fmt.Fprintln(w, allClearMessage)
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("Package", "Pinned", "Insecure", "Line")
		for _, f := range findings {
			line := ""
			if f.Line > 0 {
				line = strconv.Itoa(f.Line)
			}
			if err := table.Append([]string{f.Package, f.Version, f.InsecureVersion, line}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	if opts.Dependencies > 0 || opts.Duration > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Findings: %d\n", len(findings))
		if opts.Dependencies > 0 {
			fmt.Fprintf(w, "Dependencies checked: %d\n", opts.Dependencies)
		}
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
	}
	return nil
}

// PrintInsecureTable lists the known-insecure versions, one package per row.
func PrintInsecureTable(w io.Writer, packages []string, versions map[string]string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Package", "Insecure version")
	for _, p := range packages {
		if err := table.Append([]string{p, versions[p]}); err != nil {
			return err
		}
	}
	return table.Render()
}
