// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/tfctl/linediff/internal/cacheutil"
	"github.com/tfctl/linediff/internal/command"
	"github.com/tfctl/linediff/internal/config"
	"github.com/tfctl/linediff/internal/log"
	"github.com/tfctl/linediff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
			return true
		}
	}
	return false
}

// routeDefaultCommand inserts "run" when no subcommand is named, so a bare
// "linediff" or "linediff -m bad" compares a fixture.
func routeDefaultCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "run")
	}

	first := args[1]
	if first == "--help" || first == "-h" || slices.Contains(command.Commands, first) {
		return args
	}

	return append([]string{args[0], "run"}, args[1:]...)
}

// prepareCache creates the cache base directory and drops cached captures
// older than cache.clean hours. Cache problems never stop a run.
func prepareCache() {
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
		return
	} else if !ok {
		return
	}

	hours, err := config.GetInt("cache.clean", 0)
	if err != nil {
		log.Debugf("cache.clean: err=%v", err)
		return
	}
	if err := cacheutil.Purge(hours); err != nil {
		log.WithError(err).Warnf("cache purge failed")
	}
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	prepareCache()

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, command.ErrDiverged) {
			log.Debugf("strict: %v", err)
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = routeDefaultCommand(args)
	log.Debugf("args after routing: args=%v", args)

	return initAndRunApp(args)
}
