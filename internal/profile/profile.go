// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package profile describes one comparison harness: which fixtures exist and
// how the program under test and the reference are invoked for each.
package profile

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/tfctl/linediff/internal/config"
	"github.com/tfctl/linediff/internal/runner"
)

// Placeholder is replaced with the fixture file name in every command.
const Placeholder = "{fixture}"

// Profile is a harness definition. Mine and Reference hold one command per
// pipeline stage.
type Profile struct {
	Extension     string
	Fixtures      []string
	Mine          []string
	Reference     []string
	Anchor        string
	CombineStderr bool
}

// Default is the parser assignment harness: a hand-built parser against the
// reference lexer piped into the reference parser.
func Default() Profile {
	return Profile{
		Extension: "cl",
		Fixtures:  []string{"good", "bad", "good2", "bad2", "good3"},
		Mine:      []string{"./myparser " + Placeholder},
		Reference: []string{
			"./lexer " + Placeholder,
			"../../bin/parser " + Placeholder,
		},
	}
}

// Load layers the profile.* config keys over Default.
func Load() (Profile, error) {
	p := Default()
	var err error

	if p.Extension, err = config.GetString("profile.extension", p.Extension); err != nil {
		return p, fmt.Errorf("profile.extension: %w", err)
	}
	if p.Fixtures, err = config.GetStringSlice("profile.fixtures", p.Fixtures); err != nil {
		return p, fmt.Errorf("profile.fixtures: %w", err)
	}
	if p.Mine, err = config.GetStringSlice("profile.mine", p.Mine); err != nil {
		return p, fmt.Errorf("profile.mine: %w", err)
	}
	if p.Reference, err = config.GetStringSlice("profile.reference", p.Reference); err != nil {
		return p, fmt.Errorf("profile.reference: %w", err)
	}
	if p.Anchor, err = config.GetString("profile.anchor", p.Anchor); err != nil {
		return p, fmt.Errorf("profile.anchor: %w", err)
	}
	if p.CombineStderr, err = config.GetBool("profile.combine_stderr", p.CombineStderr); err != nil {
		return p, fmt.Errorf("profile.combine_stderr: %w", err)
	}

	return p, p.Validate()
}

// Validate checks the profile is usable.
func (p Profile) Validate() error {
	if len(p.Fixtures) == 0 {
		return fmt.Errorf("profile has no fixtures")
	}
	for _, f := range p.Fixtures {
		if f == "" || strings.ContainsAny(f, `/\`) {
			return fmt.Errorf("invalid fixture name %q", f)
		}
	}
	if len(p.Mine) == 0 || len(p.Reference) == 0 {
		return fmt.Errorf("profile needs both mine and reference commands")
	}
	if _, err := expand(p.Mine, Placeholder); err != nil {
		return fmt.Errorf("mine: %w", err)
	}
	if _, err := expand(p.Reference, Placeholder); err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	return nil
}

// DefaultMode is the canonical fixture, the first one listed.
func (p Profile) DefaultMode() string {
	if len(p.Fixtures) == 0 {
		return ""
	}
	return p.Fixtures[0]
}

// ValidMode reports whether mode names one of the profile's fixtures.
func (p Profile) ValidMode(mode string) bool {
	return slices.Contains(p.Fixtures, mode)
}

// FixtureFile maps a mode to its file name, e.g. "good" to "good.cl".
func (p Profile) FixtureFile(mode string) string {
	if p.Extension == "" {
		return mode
	}
	return mode + "." + strings.TrimPrefix(p.Extension, ".")
}

// Pipelines expands both command lists for mode.
func (p Profile) Pipelines(mode string) (mine, reference runner.Pipeline, err error) {
	if !p.ValidMode(mode) {
		return mine, reference, fmt.Errorf("unknown fixture %q, must be one of %v", mode, p.Fixtures)
	}

	file := p.FixtureFile(mode)
	mineStages, err := expand(p.Mine, file)
	if err != nil {
		return mine, reference, fmt.Errorf("mine: %w", err)
	}
	referenceStages, err := expand(p.Reference, file)
	if err != nil {
		return mine, reference, fmt.Errorf("reference: %w", err)
	}

	mine = runner.Pipeline{
		Name:          "mine",
		Stages:        mineStages,
		CombineStderr: p.CombineStderr,
	}
	reference = runner.Pipeline{
		Name:          "reference",
		Stages:        referenceStages,
		CombineStderr: p.CombineStderr,
		Cacheable:     true,
		Inputs:        []string{filepath.Clean(file)},
	}

	return mine, reference, nil
}

// expand splits each command into words with shell quoting rules and
// substitutes the fixture in every word. Stages are separate list entries, so
// unquoted operators such as | or > are rejected rather than dropped.
func expand(commands []string, file string) ([][]string, error) {
	stages := make([][]string, 0, len(commands))
	for _, c := range commands {
		parser := shellwords.NewParser()
		words, err := parser.Parse(c)
		if err != nil {
			return nil, fmt.Errorf("cannot split command %q: %w", c, err)
		}
		if parser.Position >= 0 {
			return nil, fmt.Errorf("command %q contains a shell operator at offset %d, list pipeline stages separately or wrap it in sh -c", c, parser.Position)
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("empty command")
		}
		for i, w := range words {
			words[i] = strings.ReplaceAll(w, Placeholder, file)
		}
		stages = append(stages, words)
	}
	return stages, nil
}
