package timelinedb

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time via
// -ldflags "-X 'github.com/mynd-ideal/timelinedb.Version=X'". Left blank,
// it falls back to the module version recorded in the build info.
var Version string

func buildSettingOrDefault(bi *debug.BuildInfo, key, defaultValue string) string {
	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}
	return defaultValue
}

// VersionString reports the library version together with the VCS
// revision and build time recorded by the Go toolchain, for display in a
// command's --version output or a diagnostic log line.
func VersionString() string {
	version := Version
	if version == "" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			version = bi.Main.Version
		} else {
			version = "devel"
		}
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return fmt.Sprintf("timelinedb %s", version)
	}

	commit := buildSettingOrDefault(bi, "vcs.revision", "unknown")
	dirty := buildSettingOrDefault(bi, "vcs.modified", "false")
	if dirty == "true" {
		commit += "-dirty"
	}
	buildTime := buildSettingOrDefault(bi, "vcs.time", "unknown")

	return fmt.Sprintf("timelinedb %s (revision %s, built at %s)", version, commit, buildTime)
}
