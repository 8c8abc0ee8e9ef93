// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/tfctl/linediff/internal/cacheutil"
	"github.com/tfctl/linediff/internal/log"
)

// waitDelay bounds how long a canceled stage may hold its output pipes open
// through orphaned children.
const waitDelay = 2 * time.Second

// Pipeline is an ordered list of stages. Each stage is an argv; the stdout of
// stage n is the stdin of stage n+1, and the stdout of the last stage is the
// captured output.
type Pipeline struct {
	Name   string
	Stages [][]string
	// CombineStderr folds every stage's stderr into the capture, the way a
	// shell "2>&1" around the whole pipeline would.
	CombineStderr bool
	// Cacheable pipelines are deterministic for a given set of Inputs.
	Cacheable bool
	// Inputs are files, relative to the run directory, whose content feeds the
	// cache key.
	Inputs []string
}

// String renders the pipeline shell-style for logs and cache keys.
func (p Pipeline) String() string {
	stages := make([]string, 0, len(p.Stages))
	for _, s := range p.Stages {
		stages = append(stages, strings.Join(s, " "))
	}
	return strings.Join(stages, " | ")
}

// Capture is the complete result of running one Pipeline.
type Capture struct {
	Name      string `json:"name" yaml:"name"`
	Command   string `json:"command" yaml:"command"`
	Output    []byte `json:"-" yaml:"-"`
	ExitCodes []int  `json:"exit_codes" yaml:"exit_codes"`
	Cached    bool   `json:"cached,omitempty" yaml:"cached,omitempty"`
	Err       error  `json:"-" yaml:"-"`
}

// Failed reports whether any stage could not be launched or exited non-zero.
func (c Capture) Failed() bool {
	if c.Err != nil {
		return true
	}
	for _, code := range c.ExitCodes {
		if code != 0 {
			return true
		}
	}
	return false
}

// Pair holds the two captures of one comparison run.
type Pair struct {
	Mine      Capture
	Reference Capture
}

// Runner executes pipelines in Dir. When Cache is set, captures of Cacheable
// pipelines are read from and written to the on-disk cache.
type Runner struct {
	Dir   string
	Cache bool
}

// RunPair runs both pipelines concurrently and returns once both have
// completed and their output is fully captured.
func (r *Runner) RunPair(ctx context.Context, mine, reference Pipeline) (Pair, error) {
	var pair Pair

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pair.Mine, err = r.Run(gctx, mine)
		return
	})
	g.Go(func() (err error) {
		pair.Reference, err = r.Run(gctx, reference)
		return
	})

	if err := g.Wait(); err != nil {
		return pair, err
	}
	return pair, nil
}

// Run executes p and captures its output. The returned error is non-nil only
// when ctx ends before the pipeline does; collaborator failures are recorded
// on the Capture.
func (r *Runner) Run(ctx context.Context, p Pipeline) (Capture, error) {
	capture := Capture{Name: p.Name, Command: p.String()}

	if len(p.Stages) == 0 {
		capture.Err = errors.New("pipeline has no stages")
		return capture, nil
	}

	var key string
	if r.Cache && p.Cacheable {
		if k, err := r.cacheKey(p); err == nil {
			key = k
			if entry, ok := cacheutil.Read([]string{"captures"}, key); ok {
				log.Debugf("%s: using cached capture %s", p.Name, entry.Path)
				capture.Output = entry.Data
				capture.ExitCodes = make([]int, len(p.Stages))
				capture.Cached = true
				return capture, nil
			}
		} else {
			log.Debugf("%s: not caching: %v", p.Name, err)
		}
	}

	var combined bytes.Buffer
	var input []byte
	for i, argv := range p.Stages {
		var stdout, stderr bytes.Buffer

		if len(argv) == 0 {
			capture.Err = fmt.Errorf("stage %d is empty", i+1)
			capture.ExitCodes = append(capture.ExitCodes, -1)
			break
		}

		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Dir = r.Dir
		cmd.Stdin = bytes.NewReader(input)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		cmd.WaitDelay = waitDelay

		log.Debugf("%s: stage %d: %s", p.Name, i+1, strings.Join(argv, " "))
		err := cmd.Run()

		if ctx.Err() != nil {
			return capture, fmt.Errorf("%s: %w", p.Name, ctx.Err())
		}

		var exitErr *exec.ExitError
		switch {
		case err == nil:
			capture.ExitCodes = append(capture.ExitCodes, 0)
		case errors.As(err, &exitErr):
			capture.ExitCodes = append(capture.ExitCodes, exitErr.ExitCode())
			log.Warnf("%s: stage %d exited %d", p.Name, i+1, exitErr.ExitCode())
		default:
			capture.ExitCodes = append(capture.ExitCodes, -1)
			capture.Err = fmt.Errorf("stage %d (%s): %w", i+1, argv[0], err)
			log.WithError(err).Warnf("%s: stage %d could not run", p.Name, i+1)
		}

		if stderr.Len() > 0 {
			log.Debugf("%s: stage %d stderr: %s", p.Name, i+1, strings.TrimSpace(stderr.String()))
			if p.CombineStderr {
				combined.Write(stderr.Bytes())
			}
		}

		if capture.Err != nil {
			break
		}
		input = stdout.Bytes()
	}

	if capture.Err == nil {
		combined.Write(input)
	}
	capture.Output = combined.Bytes()
	log.Debugf("%s: captured %s", p.Name, humanize.Bytes(uint64(len(capture.Output))))

	if key != "" && !capture.Failed() {
		if err := cacheutil.Write([]string{"captures"}, key, capture.Output); err != nil {
			log.WithError(err).Warnf("%s: cache write failed", p.Name)
		}
	}

	return capture, nil
}

// cacheKey combines the run directory and pipeline text with the content of
// every input file.
func (r *Runner) cacheKey(p Pipeline) (string, error) {
	// Relative program paths resolve against Dir, so it is part of the key.
	dir, err := filepath.Abs(r.Dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve run directory: %w", err)
	}

	var b strings.Builder
	b.WriteString(dir)
	b.WriteString("\x00")
	b.WriteString(p.String())
	fmt.Fprintf(&b, "\x00stderr=%t", p.CombineStderr)

	for _, in := range p.Inputs {
		path := in
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.Dir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read cache input: %w", err)
		}
		b.WriteString("\x00")
		b.WriteString(in)
		b.WriteString("\x00")
		b.Write(data)
	}

	return b.String(), nil
}
