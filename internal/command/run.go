// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/linediff/internal/config"
	"github.com/tfctl/linediff/internal/differ"
	"github.com/tfctl/linediff/internal/log"
	"github.com/tfctl/linediff/internal/meta"
	"github.com/tfctl/linediff/internal/output"
	"github.com/tfctl/linediff/internal/runner"
	"github.com/tfctl/linediff/internal/stream"
)

// runCommandAction runs the program under test and the reference over one
// fixture, waits for both, and diffs their complete output.
func runCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", meta.Args[1:])

	config.Config.Namespace = "run"

	p := meta.Profile
	mode := cmd.String("mode")
	dir := cmd.String("dir")

	mine, reference, err := p.Pipelines(mode)
	if err != nil {
		return err
	}

	fixture := filepath.Join(dir, p.FixtureFile(mode))
	if _, err := os.Stat(fixture); err != nil {
		log.Warnf("fixture %s is not readable: %v", fixture, err)
	}

	if timeout := cmd.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	r := &runner.Runner{Dir: dir, Cache: cmd.Bool("cache")}
	pair, err := r.RunPair(ctx, mine, reference)
	if err != nil {
		return fmt.Errorf("failed to run fixture %s: %w", mode, err)
	}

	expected := anchored(stream.FromBytes(pair.Reference.Output), p.Anchor, reference.Name)
	actual := anchored(stream.FromBytes(pair.Mine.Output), p.Anchor, mine.Name)

	results := differ.Compare(expected, actual)
	report := output.NewReport(mode, pair.Reference.Command, pair.Mine.Command, results, pair.Mine, pair.Reference)

	return emit(cmd, report)
}

// runCommandBuilder constructs the "run" subcommand.
func runCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "compare the program under test against the reference for one fixture",
		UsageText: "linediff run [--mode fixture] [--dir dir]",
		Metadata:  map[string]any{"meta": meta},
		Flags: append(NewReportFlags("run"), []cli.Flag{
			NewModeFlag(meta.Profile),
			NewDirFlag(),
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "reuse cached reference output for unchanged fixtures",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("LINEDIFF_USE_CACHE"),
				),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "abandon the run if the programs take longer than this",
			},
		}...),
		Action: runCommandAction,
	}
}
