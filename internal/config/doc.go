// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for linediff's YAML
// configuration. The file is resolved in this order:
//   - $LINEDIFF_CFG_FILE
//   - ./linediff.yaml, so each assignment directory can carry its own harness
//   - the user config directory (os.UserConfigDir), e.g.
//     $HOME/.config/linediff.yaml on Linux
package config
