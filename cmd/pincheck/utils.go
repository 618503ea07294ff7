package pincheck

import (
	"errors"
	"fmt"
	"runtime/debug"

	semver "github.com/blang/semver/v4"
	"github.com/varalys/pincheck/internal/config"
)

// loadConfigs returns the local and global config. An explicit --config file
// stands in for the local one and must load. Implicit files may be absent, but
// one that exists and fails to load is an error: it may carry table entries.
func loadConfigs(ro *rootOptions) (local, global config.FileConfig, err error) {
	global, err = config.LoadGlobal()
	if err != nil && !errors.Is(err, config.ErrNoConfig) {
		return local, global, err
	}
	if ro.configPath != "" {
		local, err = config.LoadFile(ro.configPath)
		if err != nil {
			return local, global, fmt.Errorf("load config %s: %w", ro.configPath, err)
		}
		return local, global, nil
	}
	local, err = config.LoadLocal(".")
	if err != nil && !errors.Is(err, config.ErrNoConfig) {
		return local, global, err
	}
	return local, global, nil
}

// buildVersion normalises the version to semver, preferring the module
// version stamped by `go install` over the compiled-in default.
func buildVersion() semver.Version {
	v := version
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	return ver
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
