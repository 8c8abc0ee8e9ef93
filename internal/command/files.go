// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/linediff/internal/differ"
	"github.com/tfctl/linediff/internal/log"
	"github.com/tfctl/linediff/internal/meta"
	"github.com/tfctl/linediff/internal/output"
	"github.com/tfctl/linediff/internal/stream"
)

// filesCommandAction diffs two already-captured outputs. Either path may be
// "-" for stdin, but not both.
func filesCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", meta.Args[1:])

	args := positionals(cmd, meta.Args)
	if len(args) != 2 {
		return fmt.Errorf("expected 2 files, got %d", len(args))
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("only one file may be read from stdin")
	}

	anchor := cmd.String("anchor")
	if !cmd.IsSet("anchor") {
		anchor = meta.Profile.Anchor
	}

	var captured [2]stream.Lines
	for i, path := range args {
		data, err := readInput(path)
		if err != nil {
			return err
		}
		captured[i] = anchored(stream.FromBytes(data), anchor, path)
	}

	results := differ.Compare(captured[0], captured[1])
	return emit(cmd, output.NewReport("", args[0], args[1], results))
}

// positionals returns the command's positional arguments. The flag parser
// stops at a bare "-" and drops everything after it, so the rest is recovered
// from the raw invocation. Flags must come before a "-".
func positionals(cmd *cli.Command, raw []string) []string {
	args := cmd.Args().Slice()
	if len(args) == 0 || args[len(args)-1] != "-" {
		return args
	}
	if i := slices.Index(raw, "-"); i >= 0 {
		args = append(args, raw[i+1:]...)
	}
	return args
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	if info, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file does not exist: %s", path)
	} else if info.IsDir() {
		return nil, fmt.Errorf("input cannot be a directory: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// filesCommandBuilder constructs the "files" subcommand.
func filesCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "files",
		Usage:     "compare two captured outputs",
		UsageText: "linediff files <expected> <actual>",
		Metadata:  map[string]any{"meta": meta},
		Flags: append(NewReportFlags("files"), []cli.Flag{
			&cli.StringFlag{
				Name:    "anchor",
				Aliases: []string{"a"},
				Usage:   "skip lines before the first one starting with this prefix",
			},
		}...),
		Action: filesCommandAction,
	}
}
