// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/linediff/internal/cacheutil"
)

// cacheCommandAction reports on, or clears, the reference capture cache.
func cacheCommandAction(ctx context.Context, cmd *cli.Command) error {
	base, ok := cacheutil.Dir()
	if !ok {
		return fmt.Errorf("no cache directory could be resolved")
	}

	if cmd.Bool("clear") {
		if err := cacheutil.Clear([]string{"captures"}); err != nil {
			return err
		}
	}

	files, size, err := cacheutil.Usage()
	if err != nil {
		return err
	}

	fmt.Fprintf(writer(cmd), "%s: %s in %s (enabled=%t)\n",
		base, humanize.Bytes(uint64(size)), humanize.Comma(int64(files))+" file(s)", cacheutil.Enabled())
	return nil
}

// cacheCommandBuilder constructs the "cache" subcommand.
func cacheCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "cache",
		Usage:     "show or clear cached reference output",
		UsageText: "linediff cache [--clear]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "clear",
				Usage: "remove all cached captures",
			},
		},
		Action: cacheCommandAction,
	}
}
