// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

// Summary condenses a result sequence.
type Summary struct {
	Mismatches int  `json:"mismatches" yaml:"mismatches"`
	Outcome    Kind `json:"outcome" yaml:"outcome"`
	Longer     Side `json:"longer,omitempty" yaml:"longer,omitempty"`
	Extra      int  `json:"extra,omitempty" yaml:"extra,omitempty"`
	Compared   int  `json:"compared" yaml:"compared"`
}

// Summarize counts mismatches and captures the terminal record. Compared is
// the number of line pairs examined before the walk halted.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Kind {
		case Mismatch:
			s.Mismatches++
		case Match, LengthMismatch:
			s.Outcome = r.Kind
			s.Longer = r.Longer
			s.Extra = r.Extra
			s.Compared = r.Index
		}
	}
	return s
}

// Clean is true when both streams ended together with no mismatches.
func (s Summary) Clean() bool {
	return s.Outcome == Match && s.Mismatches == 0
}

// Mismatches filters results down to the Mismatch records.
func Mismatches(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Kind == Mismatch {
			out = append(out, r)
		}
	}
	return out
}
