package pincheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/varalys/pincheck/internal/check"
	"github.com/varalys/pincheck/internal/engine"
	"github.com/varalys/pincheck/internal/manifest"
	"github.com/varalys/pincheck/internal/report"
)

type scanOptions struct {
	manifest       string
	format         string
	failOnFindings bool
}

func (so *scanOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&so.manifest, "manifest", "m", "", "manifest to check (default \""+manifest.DefaultPath+"\")")
	cmd.Flags().StringVarP(&so.format, "format", "f", "", "output format: "+strings.Join(report.Formats(), "|")+" (default \"text\")")
	cmd.Flags().BoolVar(&so.failOnFindings, "fail-on-findings", false, "exit 1 when insecure dependencies are found")
}

func newScanCmd(ro *rootOptions) *cobra.Command {
	so := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Check a manifest against the insecure-version table",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runScan(c, ro, so)
		},
	}
	so.bind(cmd)
	return cmd
}

// settings is the merged view of flags and config files.
type settings struct {
	manifest       string
	format         string
	noColor        bool
	failOnFindings bool
	table          check.Table
}

func resolve(ro *rootOptions, so *scanOptions) (settings, error) {
	lcfg, gcfg, err := loadConfigs(ro)
	if err != nil {
		return settings{}, err
	}
	s := settings{
		manifest:       pickString(so.manifest, lcfg.Manifest, gcfg.Manifest),
		format:         pickString(so.format, lcfg.Format, gcfg.Format),
		noColor:        pickBool(ro.noColor, lcfg.NoColor, gcfg.NoColor) || termenv.EnvNoColor(),
		failOnFindings: pickBool(so.failOnFindings, lcfg.FailOnFindings, gcfg.FailOnFindings),
		table:          lcfg.Table(gcfg.Table(check.DefaultTable())),
	}
	if s.manifest == "" {
		s.manifest = manifest.DefaultPath
	}
	if s.format == "" {
		s.format = report.FormatText
	}
	return s, nil
}

func runScan(cmd *cobra.Command, ro *rootOptions, so *scanOptions) error {
	s, err := resolve(ro, so)
	if err != nil {
		return err
	}
	if err := checkFormat(s.format); err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), ro.verbose)
	log.Debug("scan settings", "manifest", s.manifest, "format", s.format, "table_entries", len(s.table))

	out := cmd.OutOrStdout()
	res, err := engine.ScanWithStats(engine.Config{
		ManifestPath: s.manifest,
		Table:        s.table,
		Logger:       log,
	})
	if err != nil {
		var nf *manifest.NotFoundError
		var mal *manifest.MalformedLineError
		if errors.As(err, &nf) || errors.As(err, &mal) {
			_, _ = fmt.Fprintf(out, "Error: %s\n", err)
			return nil
		}
		return fmt.Errorf("scan error: %w", err)
	}

	opts := report.PrintOptions{
		NoColor:      s.noColor,
		Manifest:     res.ManifestPath,
		Dependencies: len(res.Dependencies),
		ToolVersion:  buildVersion().String(),
	}
	if strings.EqualFold(s.format, report.FormatTable) {
		opts.Duration = res.Duration
	}
	if err := report.Write(out, s.format, res.Findings, opts); err != nil {
		return fmt.Errorf("%s output: %w", s.format, err)
	}

	if report.ShouldFail(res.Findings, s.failOnFindings) {
		return errFindingsPresent
	}
	return nil
}

func checkFormat(f string) error {
	if !validFormat(f) {
		return fmt.Errorf("unknown format %q (want one of %s)", f, strings.Join(report.Formats(), ", "))
	}
	return nil
}

func validFormat(f string) bool {
	f = strings.ToLower(f)
	if f == "md" {
		return true
	}
	for _, known := range report.Formats() {
		if f == known {
			return true
		}
	}
	return false
}
