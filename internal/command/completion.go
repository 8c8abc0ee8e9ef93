// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/linediff/internal/meta"
)

const bashCompletionScript = `# bash completion for linediff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_linediff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "run files fixtures cache completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local report="--output -o --color -c --strict"

    case "$prev" in
        --mode|-m)
            COMPREPLY=( $(compgen -W "$(linediff fixtures 2>/dev/null | awk '{print $1}')" -- "$cur") )
            return 0
            ;;
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --dir|-d)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
    esac

    case "$cmd" in
        run)
            COMPREPLY=( $(compgen -W "$report --mode -m --dir -d --cache --timeout" -- "$cur") )
            ;;
        files)
            if [[ "$cur" == -* ]]; then
                COMPREPLY=( $(compgen -W "$report --anchor -a" -- "$cur") )
            else
                COMPREPLY=( $(compgen -f -- "$cur") )
            fi
            ;;
        fixtures)
            COMPREPLY=( $(compgen -W "--dir -d --titles -t --padding" -- "$cur") )
            ;;
        cache)
            COMPREPLY=( $(compgen -W "--clear" -- "$cur") )
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            ;;
    esac
    return 0
}

complete -F _linediff linediff
`

const zshCompletionScript = `#compdef linediff

_linediff() {
  local -a cmds
  cmds=(
    'run:compare the program under test against the reference'
    'files:compare two captured outputs'
    'fixtures:list the fixtures run accepts'
    'cache:show or clear cached reference output'
    'completion:generate shell completion script'
  )

  local -a report
  report=(
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-c --color)'{-c,--color}'[colored text output]'
  '--strict[exit 1 when the outputs diverge]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'linediff commands' cmds
    return
  fi

  case $words[2] in
    run)
      _arguments -C \
        $report \
        '(-m --mode)'{-m,--mode}'[fixture]:fixture:($(linediff fixtures 2>/dev/null | awk "{print \$1}"))' \
        '(-d --dir)'{-d,--dir}'[fixture directory]:dir:_directories' \
        '--cache[reuse cached reference output]' \
        '--timeout[abandon slow runs]:duration'
      ;;
    files)
      _arguments -C \
        $report \
        '(-a --anchor)'{-a,--anchor}'[skip lines before prefix]:prefix' \
        '1:expected:_files' \
        '2:actual:_files'
      ;;
    fixtures)
      _arguments -C \
        '(-d --dir)'{-d,--dir}'[fixture directory]:dir:_directories' \
        '(-t --titles)'{-t,--titles}'[show titles]' \
        '--padding[column padding]:n'
      ;;
    cache)
      _arguments '--clear[remove cached captures]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _linediff linediff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	w := writer(cmd)
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: linediff completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "linediff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
