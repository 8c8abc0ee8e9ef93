// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"strings"
)

// Lines is an ordered snapshot of one program's standard output. It is never
// mutated after creation; consumers walk it with index cursors.
type Lines []string

// Split breaks text into lines on "\n". A final line without a terminator is
// kept. A single trailing "\n" does not produce an extra empty line, and
// empty text produces no lines at all. Content is not trimmed or normalized,
// so a "\r" before the separator stays part of the line.
func Split(text string) Lines {
	if text == "" {
		return Lines{}
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return Lines(lines)
}

// FromBytes is Split over raw captured bytes.
func FromBytes(b []byte) Lines {
	return Split(string(b))
}

// From returns the tail of l starting at the first line that begins with
// anchor. Build tools often print chatter ahead of the interesting output, so
// this skips it. The second return is false when the anchor never appears, in
// which case l is returned unchanged. An empty anchor always matches line 0.
func (l Lines) From(anchor string) (Lines, bool) {
	if anchor == "" {
		return l, true
	}

	for i, line := range l {
		if strings.HasPrefix(line, anchor) {
			return l[i:], true
		}
	}

	return l, false
}

// Len is the number of lines.
func (l Lines) Len() int {
	return len(l)
}

// At returns the line at i and whether i is in bounds.
func (l Lines) At(i int) (string, bool) {
	if i < 0 || i >= len(l) {
		return "", false
	}
	return l[i], true
}

// String rejoins the lines with "\n" terminators.
func (l Lines) String() string {
	if len(l) == 0 {
		return ""
	}
	return strings.Join(l, "\n") + "\n"
}
