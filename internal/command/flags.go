// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/dirdiff/internal/differ"
)

// newAllFlag and newSchemaFlag return a fresh flag for each command.
func newAllFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "all",
		Usage: "include identical common files",
		Value: false,
	}
}

func newSchemaFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the schema",
		HideDefault: true,
	}
}

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show local timestamps",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:   "padding",
			Usage:  "cells between text columns",
			Hidden: true,
			Value:  2,
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	// params[0] is the command namespace and params[1] the config file.
	if len(params) == 2 {
		for _, f := range flags {
			switch f := f.(type) {
			case *cli.StringFlag:
				if f.Name != "output" {
					NameSpacedValueChainFlagFromConfigFile(params[0], params[1], f)
				}
			case *cli.IntFlag:
				NameSpacedValueChainFlagFromConfigFile(params[0], params[1], f)
			}
		}
	}

	return
}

// NewExtFlag constructs the comma-separated "ext" suffix filter flag. Values
// come from --ext, then DIRDIFF_EXT, then the <ns>.ext and ext config keys.
func NewExtFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "ext",
		Aliases: []string{"e"},
		Usage:   "comma-separated file name suffixes to compare, e.g. py,txt",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DIRDIFF_EXT"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewContextFlag constructs the "context" flag, the number of unchanged lines
// shown around each hunk.
func NewContextFlag(params ...string) (flag *cli.IntFlag) {
	flag = &cli.IntFlag{
		Name:    "context",
		Aliases: []string{"U"},
		Usage:   "lines of context around each change",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DIRDIFF_CONTEXT"),
		),
		Value: differ.DefaultContext,
		Validator: func(value int) error {
			return FlagValidators(value, ContextValidator)
		},
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewSkipFlag constructs the "skip" flag, directory names pruned from both
// walks. A YAML list under the skip key reads as its comma-joined form.
func NewSkipFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "skip",
		Usage: "comma-separated directory names to skip, e.g. .git,node_modules",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DIRDIFF_SKIP"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewDiffColorFlag constructs the --color flag of the diff command, which
// defaults on when stdout is a terminal.
func NewDiffColorFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "colorize the diff",
		Value:   isTerminal(os.Stdout),
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile[T any, C any, VC cli.ValueCreator[T, C]](
	ns string,
	path string,
	flag *cli.FlagBase[T, C, VC],
) *cli.FlagBase[T, C, VC] {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
