package pincheck

import (
	"github.com/spf13/cobra"
	"github.com/varalys/pincheck/internal/check"
	"gopkg.in/yaml.v3"
)

// effectiveConfig is the YAML shape printed by `config show`.
type effectiveConfig struct {
	Manifest         string            `yaml:"manifest"`
	Format           string            `yaml:"format"`
	NoColor          bool              `yaml:"no_color"`
	FailOnFindings   bool              `yaml:"fail_on_findings"`
	InsecurePackages map[string]string `yaml:"insecure_packages"`
}

func newConfigCmd(ro *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	so := &scanOptions{}
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration after merging flags and files",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := resolve(ro, so)
			if err != nil {
				return err
			}
			if err := checkFormat(s.format); err != nil {
				return err
			}
			eff := effectiveConfig{
				Manifest:         s.manifest,
				Format:           s.format,
				NoColor:          s.noColor,
				FailOnFindings:   s.failOnFindings,
				InsecurePackages: map[string]string(check.New(s.table).Table()),
			}
			enc := yaml.NewEncoder(c.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(eff); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	so.bind(showCmd)
	cfgCmd.AddCommand(showCmd)
	return cfgCmd
}
