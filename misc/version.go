// Package misc keeps build related information.
package misc

import (
	"runtime/debug"
)

const appName = "faicon"

// Set by linker: -ldflags "-X faicon/misc.version=... -X faicon/misc.gitHash=..."
var (
	version = ""
	gitHash = ""
)

// GetAppName returns name of the program, executable name is ignored so
// log and report names are stable.
func GetAppName() string {
	return appName
}

// GetVersion returns program version, module version when not set by linker.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns vcs revision, from build info when not set by linker.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
