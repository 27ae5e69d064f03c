// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build identity for the jobdeck binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the release version, overridden at link time via
// -ldflags "-X .../lib/version.Version=v1.2.3". The default marks
// source builds.
var Version = "dev"

// String returns the version plus the VCS revision when the build
// embedded one.
func String() string {
	revision := ""
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) >= 12 {
				revision = setting.Value[:12]
			}
		}
	}
	if revision == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, revision)
}

// Print writes the standard --version line for a binary.
func Print(binary string) {
	fmt.Printf("%s %s\n", binary, String())
}
