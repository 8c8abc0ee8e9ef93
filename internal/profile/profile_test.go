// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/linediff/internal/config"
)

func withConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "linediff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("LINEDIFF_CFG_FILE", path)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

func TestDefault(t *testing.T) {
	p := Default()

	require.NoError(t, p.Validate())
	assert.Equal(t, "good", p.DefaultMode())
	for _, m := range []string{"good", "bad", "good2", "bad2", "good3"} {
		assert.True(t, p.ValidMode(m), m)
	}
	assert.False(t, p.ValidMode("good4"))
	assert.False(t, p.ValidMode(""))
	assert.Equal(t, "bad2.cl", p.FixtureFile("bad2"))
}

func TestPipelines(t *testing.T) {
	mine, ref, err := Default().Pipelines("bad")
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"./myparser", "bad.cl"}}, mine.Stages)
	assert.Equal(t, [][]string{{"./lexer", "bad.cl"}, {"../../bin/parser", "bad.cl"}}, ref.Stages)
	assert.False(t, mine.Cacheable)
	assert.True(t, ref.Cacheable)
	assert.Equal(t, []string{"bad.cl"}, ref.Inputs)

	_, _, err = Default().Pipelines("worse")
	assert.ErrorContains(t, err, "unknown fixture")
}

func TestFixtureFile(t *testing.T) {
	assert.Equal(t, "test.cl", Profile{Extension: ".cl"}.FixtureFile("test"))
	assert.Equal(t, "test", Profile{}.FixtureFile("test"))
}

func TestValidate(t *testing.T) {
	p := Default()
	p.Fixtures = nil
	assert.Error(t, p.Validate())
	assert.Empty(t, p.DefaultMode())

	p = Default()
	p.Fixtures = []string{"../escape"}
	assert.Error(t, p.Validate())

	p = Default()
	p.Reference = nil
	assert.Error(t, p.Validate())
}

func TestLoadFromConfig(t *testing.T) {
	withConfig(t, `
profile:
  extension: cool
  anchor: "#name"
  fixtures: [test]
  mine: make dotest
  combine_stderr: true
`)

	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "cool", p.Extension)
	assert.Equal(t, "#name", p.Anchor)
	assert.Equal(t, []string{"test"}, p.Fixtures)
	assert.Equal(t, []string{"make dotest"}, p.Mine)
	assert.Equal(t, Default().Reference, p.Reference, "unset keys keep defaults")
	assert.True(t, p.CombineStderr)

	mine, _, err := p.Pipelines("test")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"make", "dotest"}}, mine.Stages)
	assert.True(t, mine.CombineStderr)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	withConfig(t, "profile:\n  fixtures: []\n")
	_, err := Load()
	assert.Error(t, err)

	withConfig(t, "profile:\n  anchor: [1]\n")
	_, err = Load()
	assert.ErrorContains(t, err, "profile.anchor")
}

func TestPipelinesQuoting(t *testing.T) {
	p := Default()
	p.Mine = []string{`sh -c "./myparser {fixture} 2>/dev/null"`}
	p.Reference = []string{`'./my lexer' {fixture}`, `../../bin/parser --name='{fixture}'`}

	mine, ref, err := p.Pipelines("good")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"sh", "-c", "./myparser good.cl 2>/dev/null"}}, mine.Stages)
	assert.Equal(t, [][]string{{"./my lexer", "good.cl"}, {"../../bin/parser", "--name=good.cl"}}, ref.Stages)
}

func TestValidateCommands(t *testing.T) {
	tests := []struct {
		name    string
		command string
		wantErr string
	}{
		{"unterminated quote", `./myparser "{fixture}`, "cannot split"},
		{"unquoted pipe", "./lexer {fixture} | ./parser {fixture}", "shell operator"},
		{"unquoted redirect", "./myparser {fixture} > out", "shell operator"},
		{"blank", "   ", "empty command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			p.Mine = []string{tt.command}
			assert.ErrorContains(t, p.Validate(), tt.wantErr)

			_, _, err := p.Pipelines("good")
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
