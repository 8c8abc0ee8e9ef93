// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/linediff/internal/config"
	"github.com/tfctl/linediff/internal/meta"
	"github.com/tfctl/linediff/internal/profile"
)

// Commands names every subcommand, for argument routing in main.
var Commands = []string{"run", "files", "fixtures", "cache", "completion", "help"}

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// A missing config file is fine; the built-in profile applies. One that
	// exists but cannot be read or parsed is not.
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	p, err := profile.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		Profile:     p,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "linediff",
		Usage: "Line-by-line output comparison harness",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "linediff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		runCommandBuilder(meta),
		filesCommandBuilder(meta),
		fixturesCommandBuilder(meta),
		cacheCommandBuilder(),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
