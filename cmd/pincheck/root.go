package pincheck

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// errFindingsPresent asks Execute to exit 1 without printing anything.
var errFindingsPresent = errors.New("insecure dependencies found")

type rootOptions struct {
	configPath string
	noColor    bool
	verbose    bool
}

// newRootCmd builds the command tree. The root command scans directly.
func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	so := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "pincheck",
		Short: "Flag pinned dependencies with known-insecure versions",
		Long: "pincheck reads a requirements manifest of package==version pins and reports\n" +
			"every pin that matches a known-insecure version.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return runScan(c, ro, so)
		},
	}

	cmd.PersistentFlags().StringVarP(&ro.configPath, "config", "c", "", "config file (default: .pincheck.yml, then ~/.config/pincheck/config.yml)")
	cmd.PersistentFlags().BoolVar(&ro.noColor, "no-color", false, "disable colorized output")
	cmd.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "enable debug logging on stderr")
	so.bind(cmd)

	cmd.AddCommand(newScanCmd(ro))
	cmd.AddCommand(newTableCmd(ro))
	cmd.AddCommand(newConfigCmd(ro))
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd(cmd))
	return cmd
}

// Execute runs the pincheck CLI. It should be called by the main package.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errFindingsPresent) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

// newLogger returns a stderr logger; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
