// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig sets LINEDIFF_CFG_FILE to point to a test config file and
// resets the global Config so the next getter reloads it.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("LINEDIFF_CFG_FILE", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	setupTestConfig(t, "profile.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Source))
	assert.Contains(t, cfg.Data, "profile")
	assert.Equal(t, cfg.Source, Path())
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("LINEDIFF_CFG_FILE", "/nonexistent/linediff.yaml")
		_, err := Load()
		assert.Error(t, err)
		assert.Empty(t, Path())
	})

	t.Run("no file in standard locations", func(t *testing.T) {
		t.Setenv("LINEDIFF_CFG_FILE", "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())
		_, err := Load()
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Setenv("LINEDIFF_CFG_FILE", "testdata")
		_, err := Load()
		assert.ErrorContains(t, err, "directory")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		setupTestConfig(t, "broken.yaml")
		_, err := Load()
		assert.ErrorContains(t, err, "failed to parse")
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty file", func(t *testing.T) {
		setupTestConfig(t, "empty.yaml")
		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotEmpty(t, cfg.Source)
	})
}

func TestLoadFromWorkingDirectory(t *testing.T) {
	t.Setenv("LINEDIFF_CFG_FILE", "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("profile:\n  extension: cool\n"), 0o600))
	t.Chdir(dir)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	ext, err := GetString("profile.extension")
	require.NoError(t, err)
	assert.Equal(t, "cool", ext)
}

func TestGetters(t *testing.T) {
	setupTestConfig(t, "profile.yaml")

	s, err := GetString("profile.anchor")
	require.NoError(t, err)
	assert.Equal(t, "#name", s)

	s, err = GetString("profile.missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", s)

	_, err = GetString("profile.missing")
	assert.Error(t, err)

	slice, err := GetStringSlice("profile.reference")
	require.NoError(t, err)
	assert.Equal(t, []string{"./lexer {fixture}", "../../bin/parser {fixture}"}, slice)

	slice, err = GetStringSlice("profile.mine")
	require.NoError(t, err)
	assert.Equal(t, []string{"./myparser {fixture}"}, slice, "scalar promotes to slice")

	n, err := GetInt("cache.clean")
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	n, err = GetInt("cache.missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	b, err := GetBool("profile.combine_stderr")
	require.NoError(t, err)
	assert.True(t, b)

	b, err = GetBool("profile.missing", true)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestGetterTypeErrors(t *testing.T) {
	setupTestConfig(t, "bad-types.yaml")

	_, err := GetString("profile.extension")
	assert.EqualError(t, err, "value is not a string")

	_, err = GetStringSlice("profile.fixtures")
	assert.EqualError(t, err, "slice element is not a string")

	_, err = GetStringSlice("profile")
	assert.EqualError(t, err, "value is not a slice")

	_, err = GetBool("profile.combine_stderr")
	assert.EqualError(t, err, "value is not a bool")

	_, err = GetInt("profile.fixtures")
	assert.EqualError(t, err, "value is not an int")
}

func TestNamespace(t *testing.T) {
	setupTestConfig(t, "profile.yaml")
	_, err := Load()
	require.NoError(t, err)

	mode, err := GetString("mode")
	require.NoError(t, err)
	assert.Equal(t, "good", mode)

	Config.Namespace = "run"
	mode, err = GetString("mode")
	require.NoError(t, err)
	assert.Equal(t, "bad", mode, "namespaced key wins")

	// Falls back to the global key when the namespace lacks it.
	n, err := GetInt("cache.clean")
	require.NoError(t, err)
	assert.Equal(t, 24, n)
}
