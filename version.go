/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordstore

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version information set by build flags
var (
	// Version is the semantic version of recordstore
	Version = "0.1.0"

	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"

	// BuildDate is the build date (set by build flags)
	BuildDate = "unknown"
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo returns the version information. Values not set by build
// flags fall back to the VCS data embedded by the Go toolchain.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range bi.Settings {
			switch {
			case setting.Key == "vcs.revision" && info.GitCommit == "unknown":
				info.GitCommit = setting.Value
			case setting.Key == "vcs.time" && info.BuildDate == "unknown":
				info.BuildDate = setting.Value
			}
		}
	}
	return info
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("recordstore %s (commit %s, built %s, %s)", v.Version, v.GitCommit, v.BuildDate, v.GoVersion)
}
