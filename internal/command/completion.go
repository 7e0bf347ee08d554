// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/dirdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for dirdiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_dirdiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "ls diff ui completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local compare="--ext -e --skip --context -U"
    local common="--attrs -a --color -c --filter -f --local -l --output -o --sort -s --titles -t"

    case "$cmd" in
        ls)
            local opts="$compare $common --all --schema"
            ;;
        diff)
            local opts="$compare --color -c"
            ;;
        ui)
            local opts="$compare"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$compare"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    # Flags on '-', otherwise the directories and, for diff, the paths
    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -o dirnames -- "$cur") )
    return 0
}

complete -F _dirdiff dirdiff
`

const zshCompletionScript = `#compdef dirdiff

_dirdiff() {
  local -a cmds
  cmds=(
    'ls:list unique and changed files'
    'diff:show unified diffs of changed files'
    'ui:browse unique and changed files interactively'
    'completion:generate shell completion script'
  )

  local -a compare
  compare=(
  '(-e --ext)'{-e,--ext}'[file name suffixes]:suffixes'
  '--skip[directory names to skip]:names'
  '(-U --context)'{-U,--context}'[lines of context]:lines'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-l --local)'{-l,--local}'[show local timestamps]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'dirdiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    ls)
      _arguments -C \
        $compare \
        $common \
        '--all[include identical files]' \
        '--schema[dump schema]' \
        '1:DIR_A:_directories' \
        '2:DIR_B:_directories'
      ;;
    diff)
      _arguments -C \
        $compare \
        '(-c --color)'{-c,--color}'[colorize the diff]' \
        '1:DIR_A:_directories' \
        '2:DIR_B:_directories' \
        '*:PATH:_files'
      ;;
    ui)
      _arguments -C \
        $compare \
        '1:DIR_A:_directories' \
        '2:DIR_B:_directories'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $compare '*:directory:_directories'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _dirdiff dirdiff
`

// completionCommandAction prints the completion script for the shell named
// by the first argument, or by $SHELL when none is given.
func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			return fmt.Errorf("unsupported shell %q, usage: dirdiff completion [bash|zsh]", shell)
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "dirdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
