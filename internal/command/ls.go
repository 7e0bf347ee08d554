// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"reflect"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/dirdiff/internal/compare"
	"github.com/tfctl/dirdiff/internal/config"
	"github.com/tfctl/dirdiff/internal/meta"
)

var lsDefaultAttrs = []string{"path", "status", "added", "deleted", "changed"}

// lsCommandAction is the action handler for the "ls" subcommand. It compares
// the two roots and emits one entry per unique or changed file, supporting
// --schema short-circuit and the common output flags.
func lsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if DumpSchemaIfRequested(cmd, reflect.TypeOf(compare.Entry{}), cmd.Root().Writer) {
		return nil
	}

	config.Config.Namespace = "ls"

	attrs := BuildAttrs(cmd, lsDefaultAttrs...)
	log.Debugf("attrs: %v", attrs)

	s, err := NewSession(cmd, true)
	if err != nil {
		return err
	}

	r, err := s.Scan()
	if err != nil {
		return err
	}

	if cmd.Bool("titles") {
		cmd.Metadata["footer"] = lsSummary(r)
	}

	return EmitEntries(r.Entries(cmd.Bool("all")), attrs, cmd, nil)
}

// lsSummary counts a result the way the footer of a titled listing shows it.
func lsSummary(r *compare.Result) string {
	return fmt.Sprintf("%s common, %s changed, %s only in %s, %s only in %s",
		humanize.Comma(int64(len(r.Common))),
		humanize.Comma(int64(len(r.Changed))),
		humanize.Comma(int64(len(r.OnlyA))), r.RootA,
		humanize.Comma(int64(len(r.OnlyB))), r.RootB)
}

// lsCommandBuilder constructs the cli.Command for "ls", configuring metadata,
// flags, and the associated action/validator.
func lsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CompareCommandBuilder{
		Name:      "ls",
		Usage:     "list unique and changed files",
		UsageText: "dirdiff ls DIR_A DIR_B --ext py,txt [options]",
		Flags: []cli.Flag{
			newAllFlag(),
		},
		Listing: true,
		Action:  lsCommandAction,
		Meta:    meta,
	}).Build()
}
