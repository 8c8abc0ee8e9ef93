// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"

	"github.com/tfctl/linediff/internal/output"
	"github.com/tfctl/linediff/internal/profile"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// ModeValidator accepts only the fixtures the profile defines.
func ModeValidator(p profile.Profile) FlagValidatorType {
	return func(value any) error {
		s, _ := value.(string)
		if !p.ValidMode(s) {
			return fmt.Errorf("must be one of %v", p.Fixtures)
		}
		return nil
	}
}
