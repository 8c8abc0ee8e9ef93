// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/linediff/internal/differ"
	"github.com/tfctl/linediff/internal/runner"
	"github.com/tfctl/linediff/internal/stream"
)

func render(t *testing.T, r Report, format string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, format, Palette{}))
	return buf.String()
}

func TestWriteTextMismatchThenEOF(t *testing.T) {
	results := differ.Compare(stream.Lines{"#name", "a", "b"}, stream.Lines{"#name", "a", "c"})
	out := render(t, NewReport("good", "reference", "mine", results), "text")

	want := "Wrong at line 3\n" +
		"  My output:       c\n" +
		"  Standard output: b\n\n" +
		"Reach EOF after 3 lines, 1 line wrong\n"
	assert.Equal(t, want, out)
}

func TestWriteTextSuccess(t *testing.T) {
	results := differ.Compare(stream.Lines{"x"}, stream.Lines{"x"})
	assert.Equal(t, "Success, reach EOF after 1 line\n", render(t, NewReport("", "a", "b", results), "text"))

	results = differ.Compare(stream.Lines{}, stream.Lines{})
	assert.Equal(t, "Success, reach EOF after 0 lines\n", render(t, NewReport("", "a", "b", results), "text"))
}

func TestWriteTextLengthMismatch(t *testing.T) {
	results := differ.Compare(stream.Lines{"x", "y"}, stream.Lines{"x", "y", "z"})
	out := render(t, NewReport("", "a", "b", results), "text")
	assert.Equal(t, "Fail, number of lines do not match: my output has 1 line more, starting at line 3\n", out)

	results = differ.Compare(stream.Lines{"x", "y", "z"}, stream.Lines{"x"})
	out = render(t, NewReport("", "a", "b", results), "text")
	assert.Contains(t, out, "standard output has 2 lines more, starting at line 2")
}

func TestWriteTextCollaboratorNotes(t *testing.T) {
	results := differ.Compare(stream.Lines{}, stream.Lines{})
	r := NewReport("good", "reference", "mine", results,
		runner.Capture{Name: "mine", Command: "./myparser good.cl", ExitCodes: []int{1}},
		runner.Capture{Name: "reference", Command: "./lexer good.cl", ExitCodes: []int{-1}, Err: errors.New("not found")},
	)

	out := render(t, r, "text")
	assert.Contains(t, out, "Note: mine exited with status [1] (./myparser good.cl)\n")
	assert.Contains(t, out, "Note: reference could not run: not found\n")
	assert.True(t, r.CollaboratorFailed())
}

func TestWriteJSON(t *testing.T) {
	results := differ.Compare(stream.Lines{"a", "b"}, stream.Lines{"a", "c", "d"})
	r := NewReport("bad", "reference", "mine", results,
		runner.Capture{Name: "mine", Command: "./myparser bad.cl", ExitCodes: []int{0}},
	)

	doc := gjson.Parse(render(t, r, "json"))
	assert.Equal(t, "bad", doc.Get("fixture").String())
	assert.Equal(t, int64(2), doc.Get("results.#").Int())
	assert.Equal(t, "mismatch", doc.Get("results.0.kind").String())
	assert.Equal(t, int64(1), doc.Get("results.0.index").Int())
	assert.Equal(t, "b", doc.Get("results.0.expected").String())
	assert.Equal(t, "c", doc.Get("results.0.actual").String())
	assert.Equal(t, "length_mismatch", doc.Get("results.1.kind").String())
	assert.Equal(t, "actual", doc.Get("results.1.longer").String())
	assert.Equal(t, "length_mismatch", doc.Get("summary.outcome").String())
	assert.Equal(t, int64(1), doc.Get("summary.mismatches").Int())
	assert.Equal(t, "./myparser bad.cl", doc.Get("collaborators.0.command").String())
	assert.False(t, doc.Get("collaborators.0.error").Exists())
	assert.False(t, r.CollaboratorFailed())
}

func TestWriteYAML(t *testing.T) {
	results := differ.Compare(stream.Lines{"a"}, stream.Lines{"b"})
	out := render(t, NewReport("", "x.out", "y.out", results), "yaml")

	var decoded Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, results, decoded.Results)
	assert.Equal(t, "x.out", decoded.Expected)
	assert.Equal(t, differ.Match, decoded.Summary.Outcome)
}

func TestWriteKeepsEmptyMismatchLines(t *testing.T) {
	results := differ.Compare(stream.Lines{""}, stream.Lines{"x"})
	r := NewReport("", "x.out", "y.out", results)

	doc := gjson.Parse(render(t, r, "json"))
	require.True(t, doc.Get("results.0.expected").Exists())
	assert.Equal(t, "", doc.Get("results.0.expected").String())
	assert.Equal(t, "x", doc.Get("results.0.actual").String())

	var decoded struct {
		Results []map[string]any `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(render(t, r, "yaml")), &decoded))
	require.NotEmpty(t, decoded.Results)
	assert.Contains(t, decoded.Results[0], "expected")
	assert.Contains(t, decoded.Results[0], "actual")
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Report{}, "xml", Palette{})
	assert.ErrorContains(t, err, "unknown output format")
}

func TestWriteTextColor(t *testing.T) {
	results := differ.Compare(stream.Lines{"a"}, stream.Lines{"b"})
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewReport("", "x", "y", results), "text", NewPalette(true)))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Wrong at line 1")
}

func TestTableWriter(t *testing.T) {
	var buf bytes.Buffer
	TableWriter(&buf, []string{"MODE", "FILE"}, [][]string{{"good", "good.cl"}, {"bad", "bad.cl"}}, 2)

	out := buf.String()
	assert.Contains(t, out, "MODE")
	assert.Contains(t, out, "good.cl")
	assert.Contains(t, out, "bad.cl")
	assert.Less(t, strings.Index(out, "good.cl"), strings.Index(out, "bad.cl"), "row order kept")

	buf.Reset()
	TableWriter(&buf, nil, nil, 0)
	assert.Empty(t, buf.String())
}
