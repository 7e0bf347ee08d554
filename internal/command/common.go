// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/dirdiff/internal/attrs"
	"github.com/tfctl/dirdiff/internal/compare"
	"github.com/tfctl/dirdiff/internal/log"
	"github.com/tfctl/dirdiff/internal/meta"
	"github.com/tfctl/dirdiff/internal/output"
	"github.com/tfctl/dirdiff/internal/scan"
	"github.com/tfctl/dirdiff/internal/util"
)

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// DumpSchemaIfRequested writes the attribute schema for the provided type to
// w when --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type, w io.Writer) bool {
	if cmd.Bool("schema") {
		output.DumpSchema("", t, w)
		return true
	}
	return false
}

// EmitEntries marshals entries as a JSON array and passes it to the common
// output routine.
func EmitEntries(entries []compare.Entry, al attrs.AttrList, cmd *cli.Command, postProcess func([]map[string]interface{}) error) error {
	if entries == nil {
		entries = []compare.Entry{}
	}

	var raw bytes.Buffer
	if err := json.NewEncoder(&raw).Encode(entries); err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}

	return output.SliceDiceSpit(raw, al, cmd, cmd.Root().Writer, postProcess)
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ResolveRoots is the Before hook of the comparison commands. The first two
// positional arguments are the roots; they are made absolute and stored in
// the command's Meta. Fewer than two is missing input.
func ResolveRoots(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	// A schema dump needs no directories.
	if cmd.Bool("schema") {
		return ctx, nil
	}

	args := cmd.Args().Slice()
	if len(args) < 2 {
		return ctx, fmt.Errorf("%w: two directories are required", ErrMissingInput)
	}

	m := GetMeta(cmd)
	for i, dst := range []*string{&m.RootA, &m.RootB} {
		dir, err := util.ParseRootDir(args[i])
		if err != nil {
			return ctx, fmt.Errorf("%w: directory %q: %w", ErrMissingInput, args[i], err)
		}
		*dst = dir
	}
	log.Debugf("roots resolved: a=%s b=%s", m.RootA, m.RootB)

	if cmd.Metadata == nil {
		cmd.Metadata = map[string]any{}
	}
	cmd.Metadata["meta"] = m

	return ctx, nil
}

// NewSession builds a comparison session from the resolved roots and the
// --ext, --skip and --context flags. When requireExt is set an empty
// extension list is missing input; otherwise the session is returned without
// extensions for the caller to prompt for.
func NewSession(cmd *cli.Command, requireExt bool) (*compare.Session, error) {
	m := GetMeta(cmd)

	s := &compare.Session{
		RootA:   m.RootA,
		RootB:   m.RootB,
		Skip:    splitList(cmd.String("skip")),
		Context: cmd.Int("context"),
	}

	exts, err := scan.ParseExtensions(cmd.String("ext"))
	if err != nil {
		if requireExt {
			return nil, fmt.Errorf("%w: %w", ErrMissingInput, err)
		}
		return s, nil
	}
	s.SetExtensions(exts)

	return s, nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(value string) []string {
	var list []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
