package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/varalys/pincheck/internal/types"
)

// WriteMarkdown writes a Markdown report with a findings table.
func WriteMarkdown(w io.Writer, findings []types.Finding, opts PrintOptions) error {
	md := markdown.NewMarkdown(w)
	md.H1("pincheck report")
	md.PlainText("")
	if opts.Manifest != "" {
		md.PlainText("Manifest: `" + opts.Manifest + "`")
		md.PlainText("")
	}
	if len(findings) == 0 {
		md.PlainText(allClearMessage)
		return md.Build()
	}

	md.H2("Insecure dependencies")
	md.PlainText("")
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		line := ""
		if f.Line > 0 {
			line = strconv.Itoa(f.Line)
		}
		rows = append(rows, []string{"`" + f.Package + "`", f.Version, f.InsecureVersion, line})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Package", "Pinned", "Insecure", "Line"},
		Rows:   rows,
	})
	return md.Build()
}
