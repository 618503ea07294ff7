package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/varalys/pincheck/internal/check"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for pincheck.
type FileConfig struct {
	Manifest       *string `yaml:"manifest"`
	Format         *string `yaml:"format"`
	NoColor        *bool   `yaml:"no_color"`
	FailOnFindings *bool   `yaml:"fail_on_findings"`

	// ReplaceDefaults drops the built-in table instead of merging over it.
	ReplaceDefaults *bool `yaml:"replace_defaults"`
	// InsecurePackages maps a package name to its known-insecure version.
	InsecurePackages map[string]string `yaml:"insecure_packages"`
}

// ErrNoConfig means no config file exists at the searched locations. Any
// other error from LoadLocal or LoadGlobal comes from a file that exists.
var ErrNoConfig = errors.New("no config file")

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a project-local config file in dir.
// It supports .pincheck.yml/.yaml and pincheck.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".pincheck.yml", ".pincheck.yaml", "pincheck.yml", "pincheck.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return loadFound(p)
		}
	}
	return cfg, fmt.Errorf("no local config: %w", ErrNoConfig)
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, fmt.Errorf("no config dir: %w", ErrNoConfig)
	}
	p := filepath.Join(base, "pincheck", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return loadFound(p)
	}
	return cfg, fmt.Errorf("no global config: %w", ErrNoConfig)
}

func loadFound(path string) (FileConfig, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Table resolves the insecure-version table against base.
func (fc FileConfig) Table(base check.Table) check.Table {
	if fc.ReplaceDefaults != nil && *fc.ReplaceDefaults {
		return check.Table(fc.InsecurePackages).Clone()
	}
	return base.Merge(fc.InsecurePackages)
}
