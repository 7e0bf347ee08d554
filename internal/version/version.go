// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other dirdiff packages to avoid import cycles.

package version

import (
	"runtime/debug"
	"strings"
)

// Commit may be stamped at link time with -ldflags "-X ...version.Commit=abc".
var Commit = ""

// Version is the module version from build info, or "dev" for local builds.
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return strings.TrimPrefix(info.Main.Version, "v")
	}
	return "dev"
}()

// String renders the --version line.
func String() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
