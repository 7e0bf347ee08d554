// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/dirdiff/internal/meta"
)

// CompareCommandBuilder is a helper that constructs a cli.Command for the
// subcommands that compare two trees (ls, diff, ui) using a consistent
// pattern. The builder wires metadata, adds the ext, skip and context flags
// sourced from the environment and config file, and resolves the two roots
// before the action runs. Listing commands also get the schema and global
// output flags.
type CompareCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Listing   bool
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (ccb *CompareCommandBuilder) Build() *cli.Command {
	cfg := ccb.Meta.Config.Source

	flags := append(ccb.Flags,
		NewContextFlag(ccb.Name, cfg),
		NewExtFlag(ccb.Name, cfg),
		NewSkipFlag(ccb.Name, cfg),
	)
	if ccb.Listing {
		flags = append(flags, newSchemaFlag())
		flags = append(flags, NewGlobalFlags(ccb.Name, cfg)...)
	}

	return &cli.Command{
		Name:      ccb.Name,
		Usage:     ccb.Usage,
		UsageText: ccb.UsageText,
		Metadata: map[string]any{
			"meta": ccb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if ccb.Listing {
				if err := GlobalFlagsValidator(ctx, c); err != nil {
					return ctx, err
				}
			}
			return ResolveRoots(ctx, c)
		},
		Action: ccb.Action,
	}
}
