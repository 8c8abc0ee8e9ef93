// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package stream turns captured program output into an immutable, ordered
// sequence of lines suitable for lockstep comparison.
package stream
