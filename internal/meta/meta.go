// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfctl/linediff/internal/config"
	"github.com/tfctl/linediff/internal/profile"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, the harness profile, context, and the starting working
// directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	Profile     profile.Profile
	StartingDir string
}
