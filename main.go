// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/dirdiff/internal/command"
	"github.com/tfctl/dirdiff/internal/config"
	"github.com/tfctl/dirdiff/internal/log"
	"github.com/tfctl/dirdiff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	switch {
	case len(args) > 1 && args[1] == "completion":
		// Short-circuit completion: pass args directly.
		return args
	default:
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)

		args = deduplicateFlags(args, boolFlagNames(args))
		log.Debugf("args after dedup: args=%v", args)
		return args
	}
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands a named argument set. "dirdiff ls a b @py" replaces
// @py, in place, with the whitespace-split entries of the ls.py config list.
// Without an @set the ls.defaults list, if any, is inserted right after the
// command so that anything on the command line overrides it.
func processSetOnly(args []string) []string {
	if len(args) < 2 {
		return args
	}

	idx := 2
	set := "defaults"
	for i, a := range args[2:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			set = a[1:]
			idx = 2 + i
			args = append(args[:idx:idx], args[idx+1:]...)
			break
		}
	}

	entries, err := config.GetStringSlice(args[1] + "." + set)
	if err != nil {
		log.Debugf("no argument set: key=%s.%s", args[1], set)
		return args
	}

	return injectConfigSet(args, entries, idx)
}

// injectConfigSet inserts the whitespace-split entries at insertIdx.
func injectConfigSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	result := make([]string, 0, len(args)+len(expanded))
	result = append(result, args[:insertIdx]...)
	result = append(result, expanded...)
	return append(result, args[insertIdx:]...)
}

// boolFlagNames returns the dashed names and aliases ("--titles", "-t") of the
// boolean flags of the root command and of the subcommand named by args[1].
func boolFlagNames(args []string) map[string]bool {
	names := map[string]bool{}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		log.Debugf("no command tree for bool flags: err=%v", err)
		return names
	}

	add := func(flags []cli.Flag) {
		for _, f := range flags {
			if _, ok := f.(*cli.BoolFlag); !ok {
				continue
			}
			for _, n := range f.Names() {
				if len(n) == 1 {
					names["-"+n] = true
				} else {
					names["--"+n] = true
				}
			}
		}
	}

	add(app.Flags)
	for _, sub := range app.Commands {
		if len(args) > 1 && sub.Name == args[1] {
			add(sub.Flags)
		}
	}

	return names
}

// deduplicateFlags drops every occurrence of a repeated flag but the last, so
// a flag given on the command line beats the same flag from an argument set.
// "--x=v" and "--x v" are the same flag. A flag not in bools takes the next
// argument as its value when that does not start with "-". Positional
// arguments are kept in order.
func deduplicateFlags(args []string, bools map[string]bool) []string {
	if len(args) <= 2 {
		return args
	}

	type token struct {
		name  string
		parts []string
	}

	var tokens []token
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") || a == "-" {
			tokens = append(tokens, token{parts: []string{a}})
			continue
		}

		name := a
		if eq := strings.Index(a, "="); eq != -1 {
			name = a[:eq]
			tokens = append(tokens, token{name: name, parts: []string{a}})
			continue
		}

		parts := []string{a}
		if !bools[name] && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			parts = append(parts, args[i+1])
			i++
		}
		tokens = append(tokens, token{name: name, parts: parts})
	}

	last := map[string]int{}
	for i, t := range tokens {
		if t.name != "" {
			last[t.name] = i
		}
	}

	result := append([]string{}, args[:2]...)
	for i, t := range tokens {
		if t.name != "" && last[t.name] != i {
			continue
		}
		result = append(result, t.parts...)
	}

	return result
}
