// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/linediff/internal/config"
	"github.com/tfctl/linediff/internal/profile"
)

// NewReportFlags returns the flags shared by every command that prints a
// comparison report.
func NewReportFlags(ns string) (flags []cli.Flag) {
	output := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LINEDIFF_OUTPUT"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	flags = []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(ns, config.Path(), output),
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "colored text output (default: on when stdout is a terminal)",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "exit 1 when the outputs diverge or a program exits non-zero",
			Value: false,
		},
	}

	return
}

// NewModeFlag constructs the fixture selector. Its default is the profile's
// canonical fixture and only the profile's fixtures are accepted.
func NewModeFlag(p profile.Profile) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "fixture to run, one of " + strings.Join(p.Fixtures, ", "),
		Value:   p.DefaultMode(),
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LINEDIFF_MODE"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, ModeValidator(p))
		},
	}

	return NameSpacedValueChainFlagFromConfigFile("run", config.Path(), flag)
}

// NewDirFlag constructs the flag naming the directory the programs run in and
// where fixtures live.
func NewDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Usage:   "directory holding the fixtures and programs",
		Value:   ".",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LINEDIFF_DIR"),
		),
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain. It is a no-op without a config
// file.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
