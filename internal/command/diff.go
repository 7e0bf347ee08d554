// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/dirdiff/internal/config"
	"github.com/tfctl/dirdiff/internal/differ"
	"github.com/tfctl/dirdiff/internal/meta"
)

// diffCommandAction is the action handler for the "diff" subcommand. It
// prints the unified diff of every changed common file, or of the relative
// paths given after the two roots.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "diff"

	paths := cmd.Args().Slice()[2:]

	// Named paths are diffed as given, so only a full comparison needs --ext.
	s, err := NewSession(cmd, len(paths) == 0)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		r, err := s.Scan()
		if err != nil {
			return err
		}
		paths = r.Changed
	}

	var opts []differ.ColorOption
	if cmd.Bool("color") {
		// An explicit --color wins over a profile detected on a pipe.
		if p := termenv.ColorProfile(); p == termenv.Ascii {
			opts = append(opts, differ.WithProfile(termenv.ANSI256))
		}
	} else {
		opts = append(opts, differ.WithProfile(termenv.Ascii))
	}

	w := cmd.Root().Writer
	for _, rel := range paths {
		d, err := s.Diff(filepath.ToSlash(filepath.Clean(rel)))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, differ.Colorize(d.Text(), opts...)); err != nil {
			return err
		}
	}

	return nil
}

// diffCommandBuilder constructs the cli.Command for "diff".
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CompareCommandBuilder{
		Name:      "diff",
		Usage:     "show unified diffs of changed files",
		UsageText: "dirdiff diff DIR_A DIR_B [PATH...] [options]",
		Flags: []cli.Flag{
			NewDiffColorFlag(),
		},
		Action: diffCommandAction,
		Meta:   meta,
	}).Build()
}
