// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/linediff/internal/config"
	"github.com/tfctl/linediff/internal/differ"
	"github.com/tfctl/linediff/internal/runner"
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "yaml"}

// Collaborator is the reportable view of one runner.Capture.
type Collaborator struct {
	Name      string `json:"name" yaml:"name"`
	Command   string `json:"command" yaml:"command"`
	ExitCodes []int  `json:"exit_codes" yaml:"exit_codes"`
	Cached    bool   `json:"cached,omitempty" yaml:"cached,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is everything one comparison run produced.
type Report struct {
	Fixture       string          `json:"fixture,omitempty" yaml:"fixture,omitempty"`
	Expected      string          `json:"expected" yaml:"expected"`
	Actual        string          `json:"actual" yaml:"actual"`
	Results       []differ.Result `json:"results" yaml:"results"`
	Summary       differ.Summary  `json:"summary" yaml:"summary"`
	Collaborators []Collaborator  `json:"collaborators,omitempty" yaml:"collaborators,omitempty"`
}

// NewReport summarizes results. Captures, when given, are recorded alongside
// so non-zero exit statuses are visible in every format.
func NewReport(fixture, expected, actual string, results []differ.Result, captures ...runner.Capture) Report {
	r := Report{
		Fixture:  fixture,
		Expected: expected,
		Actual:   actual,
		Results:  results,
		Summary:  differ.Summarize(results),
	}

	for _, c := range captures {
		collab := Collaborator{
			Name:      c.Name,
			Command:   c.Command,
			ExitCodes: c.ExitCodes,
			Cached:    c.Cached,
		}
		if c.Err != nil {
			collab.Error = c.Err.Error()
		}
		r.Collaborators = append(r.Collaborators, collab)
	}

	return r
}

// CollaboratorFailed reports whether any collaborator failed to launch or
// exited non-zero.
func (r Report) CollaboratorFailed() bool {
	for _, c := range r.Collaborators {
		if c.Error != "" {
			return true
		}
		for _, code := range c.ExitCodes {
			if code != 0 {
				return true
			}
		}
	}
	return false
}

// Palette holds the text-mode colors. A nil color renders unstyled.
type Palette struct {
	Mismatch color.Color
	Success  color.Color
	Failure  color.Color
	Note     color.Color
}

// NewPalette resolves colors from the colors.* config keys, falling back to
// defaults readable on a dark or light background.
func NewPalette(isDark bool) Palette {
	resolveColor := func(key string, light string, dark string) color.Color {
		if colorCfg, err := config.GetString("colors." + key); err == nil {
			return lipgloss.Color(colorCfg)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	return Palette{
		Mismatch: resolveColor("mismatch", "#b08800", "#f6be00"),
		Success:  resolveColor("success", "#1a7f37", "#3fb950"),
		Failure:  resolveColor("failure", "#cf222e", "#f85149"),
		Note:     resolveColor("note", "#0088a0", "#00c8f0"),
	}
}

// DetectPalette inspects the terminal background.
func DetectPalette() Palette {
	return NewPalette(lipgloss.HasDarkBackground(os.Stdin, os.Stdout))
}

func paint(c color.Color, s string) string {
	if c == nil {
		return s
	}
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// Write renders r to w in the given format. If w is nil, os.Stdout is used.
func Write(w io.Writer, r Report, format string, palette Palette) error {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case "json":
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "text", "":
		return writeText(w, r, palette)
	default:
		return fmt.Errorf("unknown output format %q, must be one of %v", format, Formats)
	}
}

// writeText prints each mismatch as it was found and then the terminal
// outcome, in the wording the course harnesses used.
func writeText(w io.Writer, r Report, p Palette) error {
	var b strings.Builder

	for _, res := range r.Results {
		switch res.Kind {
		case differ.Mismatch:
			fmt.Fprintln(&b, paint(p.Mismatch, fmt.Sprintf("Wrong at line %s", humanize.Comma(int64(res.Line())))))
			fmt.Fprintf(&b, "  My output:       %s\n", res.Actual)
			fmt.Fprintf(&b, "  Standard output: %s\n\n", res.Expected)
		case differ.Match:
			if r.Summary.Mismatches == 0 {
				fmt.Fprintln(&b, paint(p.Success, fmt.Sprintf("Success, reach EOF after %s", lines(res.Index))))
			} else {
				fmt.Fprintln(&b, paint(p.Failure, fmt.Sprintf("Reach EOF after %s, %s wrong",
					lines(res.Index), english.Plural(r.Summary.Mismatches, "line", ""))))
			}
		case differ.LengthMismatch:
			fmt.Fprintln(&b, paint(p.Failure, fmt.Sprintf("Fail, number of lines do not match: %s has %s more, starting at line %s",
				sideLabel(res.Longer), lines(res.Extra), humanize.Comma(int64(res.Line())))))
		}
	}

	for _, c := range r.Collaborators {
		switch {
		case c.Error != "":
			fmt.Fprintln(&b, paint(p.Note, fmt.Sprintf("Note: %s could not run: %s", c.Name, c.Error)))
		case nonZero(c.ExitCodes):
			fmt.Fprintln(&b, paint(p.Note, fmt.Sprintf("Note: %s exited with status %v (%s)", c.Name, c.ExitCodes, c.Command)))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func lines(n int) string {
	return english.Plural(n, "line", "")
}

func sideLabel(s differ.Side) string {
	if s == differ.Expected {
		return "standard output"
	}
	return "my output"
}

func nonZero(codes []int) bool {
	for _, c := range codes {
		if c != 0 {
			return true
		}
	}
	return false
}
