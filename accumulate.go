//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/value.go
// (the exhaustive switch-over-a-closed-enum shape of Value.Strings())
//

package aclaf

// optionOccurrence records one occurrence of an option on the input
// stream: the value(s) it consumed (possibly none, for a zero-arity
// flag or a (0,k) option with zero supplied values) and the token index
// of the option itself, for error reporting.
type optionOccurrence struct {
	Values     []string
	TokenIndex int
}

// accumulate collapses occs according to mode, implementing spec.md §4.6.
// It assumes each occurrence already satisfies the option's arity bounds
// (checked by the dispatcher as each occurrence is finalized); its only
// remaining job is the mode-specific collapse and the ERROR-mode
// duplicate check.
func accumulate(name string, mode AccumulationMode, occs []optionOccurrence) (OptionValue, error) {
	if len(occs) == 0 {
		return OptionValue{Present: false}, nil
	}

	switch mode {
	case AccumulationCollect:
		var values []string
		for _, occ := range occs {
			values = append(values, occ.Values...)
		}
		return OptionValue{Present: true, Values: values}, nil

	case AccumulationCount:
		return OptionValue{Present: true, Count: uint(len(occs))}, nil

	case AccumulationFirstWins:
		return OptionValue{Present: true, Values: occs[0].Values}, nil

	case AccumulationLastWins:
		last := occs[len(occs)-1]
		return OptionValue{Present: true, Values: last.Values}, nil

	case AccumulationError:
		if len(occs) > 1 {
			return OptionValue{}, OptionCannotBeSpecifiedMultipleTimes{
				Name:       name,
				TokenIndex: occs[1].TokenIndex,
			}
		}
		return OptionValue{Present: true, Values: occs[0].Values}, nil

	default:
		panic("aclaf: unhandled accumulation mode")
	}
}
