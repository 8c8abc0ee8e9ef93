// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"github.com/tfctl/linediff/internal/log"
	"github.com/tfctl/linediff/internal/stream"
)

// Kind identifies a comparison record.
type Kind string

const (
	// Mismatch is a content divergence at one index. It never halts the walk.
	Mismatch Kind = "mismatch"
	// LengthMismatch is terminal: one stream ran out before the other.
	LengthMismatch Kind = "length_mismatch"
	// Match is terminal: both streams ran out together.
	Match Kind = "match"
)

// Side names one of the two compared streams.
type Side string

const (
	Expected Side = "expected"
	Actual   Side = "actual"
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Expected {
		return Actual
	}
	return Expected
}

// Result is one record of a comparison run. Index, Expected and Actual are set
// for Mismatch. Index, Longer and Extra are set for LengthMismatch, where Index
// is the first line that exists on only one side.
type Result struct {
	Kind     Kind   `json:"kind" yaml:"kind"`
	Index    int    `json:"index" yaml:"index"`
	Expected string `json:"expected" yaml:"expected"`
	Actual   string `json:"actual" yaml:"actual"`
	Longer   Side   `json:"longer,omitempty" yaml:"longer,omitempty"`
	Extra    int    `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Line is the 1-based line number of the record.
func (r Result) Line() int {
	return r.Index + 1
}

// Terminal reports whether r ends a comparison run.
func (r Result) Terminal() bool {
	return r.Kind == Match || r.Kind == LengthMismatch
}

// cursor walks one immutable line array.
type cursor struct {
	lines stream.Lines
	pos   int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.lines)
}

func (c *cursor) line() string {
	return c.lines[c.pos]
}

func (c *cursor) remaining() int {
	return len(c.lines) - c.pos
}

// Compare walks expected and actual in lockstep. Unequal lines yield a
// Mismatch and the walk continues. The walk halts with LengthMismatch when one
// side runs out first, or with Match when both run out together. The returned
// slice always ends with exactly one terminal record.
//
// Both cursors advance together, so e.pos == a.pos holds on every iteration.
func Compare(expected, actual stream.Lines) []Result {
	e := &cursor{lines: expected}
	a := &cursor{lines: actual}

	var results []Result
	for {
		switch {
		case e.done() && a.done():
			log.Debugf("both streams exhausted at line %d", e.pos+1)
			return append(results, Result{Kind: Match, Index: e.pos})
		case e.done():
			return append(results, lengthMismatch(a, Actual))
		case a.done():
			return append(results, lengthMismatch(e, Expected))
		}

		want, got := e.line(), a.line()
		log.Tracef("line %d: expected=%q actual=%q", e.pos+1, want, got)
		if want != got {
			results = append(results, Result{
				Kind:     Mismatch,
				Index:    e.pos,
				Expected: want,
				Actual:   got,
			})
		}

		e.pos++
		a.pos++
	}
}

func lengthMismatch(longer *cursor, side Side) Result {
	log.Debugf("%s stream has %d extra line(s) from line %d", side, longer.remaining(), longer.pos+1)
	return Result{
		Kind:   LengthMismatch,
		Index:  longer.pos,
		Longer: side,
		Extra:  longer.remaining(),
	}
}
