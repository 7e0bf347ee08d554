// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfctl/dirdiff/internal/config"
)

// Roots holds the two resolved, absolute comparison roots.
type Roots struct {
	RootA string
	RootB string
}

// Meta contains runtime metadata shared by commands: the raw CLI arguments,
// loaded configuration, context, the comparison roots once a command has
// resolved them, and the starting working directory.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Roots
	StartingDir string
}
