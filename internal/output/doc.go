// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders comparison reports as text, JSON or YAML, and small
// listings as tables, for the commands to present.
package output
