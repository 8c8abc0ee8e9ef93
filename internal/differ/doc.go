// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ compares two captured output streams line by line, in
// lockstep, and reports every content mismatch plus how the walk ended.
package differ
