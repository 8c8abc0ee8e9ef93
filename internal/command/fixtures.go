// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/linediff/internal/meta"
	"github.com/tfctl/linediff/internal/output"
)

// fixturesCommandAction lists the profile's fixtures and whether each file is
// present in --dir.
func fixturesCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := cmd.Metadata["meta"].(meta.Meta)
	p := meta.Profile
	dir := cmd.String("dir")

	var rows [][]string
	for i, mode := range p.Fixtures {
		file := p.FixtureFile(mode)
		size := "-"
		if info, err := os.Stat(filepath.Join(dir, file)); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		def := ""
		if i == 0 {
			def = "*"
		}
		rows = append(rows, []string{mode, file, size, def})
	}

	var headers []string
	if cmd.Bool("titles") {
		headers = []string{"MODE", "FILE", "SIZE", "DEFAULT"}
	}
	output.TableWriter(writer(cmd), headers, rows, cmd.Int("padding"))
	return nil
}

// fixturesCommandBuilder constructs the "fixtures" subcommand.
func fixturesCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "fixtures",
		Usage:     "list the fixtures run accepts",
		UsageText: "linediff fixtures [--dir dir]",
		Metadata:  map[string]any{"meta": meta},
		Flags: []cli.Flag{
			NewDirFlag(),
			&cli.BoolFlag{
				Name:    "titles",
				Aliases: []string{"t"},
				Usage:   "show column titles",
				Value:   false,
			},
			&cli.IntFlag{
				Name:  "padding",
				Usage: "spaces between columns",
				Value: 2,
			},
		},
		Action: fixturesCommandAction,
	}
}
