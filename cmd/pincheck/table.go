package pincheck

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/varalys/pincheck/internal/check"
	"github.com/varalys/pincheck/internal/report"
)

func newTableCmd(ro *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "List the known-insecure versions in effect",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			lcfg, gcfg, err := loadConfigs(ro)
			if err != nil {
				return err
			}
			tbl := check.New(lcfg.Table(gcfg.Table(check.DefaultTable()))).Table()
			if asJSON {
				enc := json.NewEncoder(c.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(tbl)
			}
			return report.PrintInsecureTable(c.OutOrStdout(), tbl.Packages(), tbl)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	return cmd
}
