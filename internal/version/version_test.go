// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	origVersion, origRevision := Version, Revision
	t.Cleanup(func() { Version, Revision = origVersion, origRevision })

	tests := []struct {
		name     string
		version  string
		revision string
		want     string
	}{
		{"no revision", "v1.2.3", "", "v1.2.3"},
		{"with revision", "dev", "abc1234", "dev (abc1234)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Revision = tt.version, tt.revision
			assert.Equal(t, tt.want, String())
		})
	}
}

func TestVersionNotEmpty(t *testing.T) {
	assert.NotEmpty(t, Version)
}
