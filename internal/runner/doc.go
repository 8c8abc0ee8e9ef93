// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package runner invokes the programs under comparison as opaque subprocess
// pipelines and captures their complete standard output. A collaborator that
// cannot be launched or exits non-zero is recorded on the Capture rather than
// returned as an error, so its (possibly empty) output can still be diffed.
package runner
