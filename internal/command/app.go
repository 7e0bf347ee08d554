// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/dirdiff/internal/config"
	"github.com/tfctl/dirdiff/internal/log"
	"github.com/tfctl/dirdiff/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	// The arg[1] immediately following the binary (arg[0]) is the dirdiff
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A missing config file is normal; flags fall back to their defaults.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config not loaded: %v", err)
	}
	config.Config.Namespace = ns
	cfg.Namespace = ns

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "dirdiff",
		Usage: "Directory tree comparison",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "dirdiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		lsCommandBuilder(meta),
		diffCommandBuilder(meta),
		uiCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
