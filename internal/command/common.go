// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/linediff/internal/log"
	"github.com/tfctl/linediff/internal/output"
	"github.com/tfctl/linediff/internal/stream"
)

// ErrDiverged is returned under --strict when the comparison was not clean.
var ErrDiverged = errors.New("outputs diverged")

// writer is where reports go; the root command's Writer, else stdout.
func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// useColor honors an explicit --color/--color=false, otherwise colors text
// output only when stdout is a terminal and NO_COLOR is unset.
func useColor(cmd *cli.Command) bool {
	if cmd.String("output") != "text" {
		return false
	}
	if cmd.IsSet("color") {
		return cmd.Bool("color")
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return writer(cmd) == io.Writer(os.Stdout) && term.IsTerminal(int(os.Stdout.Fd()))
}

// emit renders the report and applies the --strict exit policy. Without
// --strict a comparison always succeeds; the verdict is in the text.
func emit(cmd *cli.Command, report output.Report) error {
	palette := output.Palette{}
	if useColor(cmd) {
		palette = output.DetectPalette()
	}

	if err := output.Write(writer(cmd), report, cmd.String("output"), palette); err != nil {
		return err
	}

	s := report.Summary
	log.Infof("compared %d line(s): mismatches=%d outcome=%s", s.Compared, s.Mismatches, s.Outcome)

	if cmd.Bool("strict") && (!s.Clean() || report.CollaboratorFailed()) {
		return ErrDiverged
	}
	return nil
}

// anchored applies the profile anchor, warning when it is absent.
func anchored(l stream.Lines, anchor string, name string) stream.Lines {
	out, ok := l.From(anchor)
	if !ok {
		log.Warnf("%s: anchor %q not found, comparing all %d line(s)", name, anchor, l.Len())
	} else if skipped := l.Len() - out.Len(); skipped > 0 {
		log.Debugf("%s: skipped %d line(s) before anchor %q", name, skipped, anchor)
	}
	return out
}
