//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/value.go
//

package aclaf

import (
	"fmt"
	"sort"
	"strings"
)

// OptionValue is the resolved value of one declared option after
// accumulation (spec.md §4.6). An option that was never observed on the
// input carries Present = false, the "unset" sentinel distinct from
// present-with-empty (e.g. a (0,k)-arity option that appeared with zero
// values, or a COLLECT option that appeared but received no values).
type OptionValue struct {
	// Present is true if the option was observed at least once.
	Present bool

	// Values holds the resolved value sequence for every mode except
	// [AccumulationCount]: the full concatenated sequence for
	// [AccumulationCollect], or the single selected occurrence's values
	// for [AccumulationFirstWins], [AccumulationLastWins], and
	// [AccumulationError].
	Values []string

	// Count holds the number of occurrences for [AccumulationCount];
	// zero (and meaningless) for every other mode.
	Count uint
}

// PositionalValue is the resolved value of one declared positional slot.
// Zero values with a zero-minimum arity is legal and yields an empty
// slice, never a slice containing an empty string.
type PositionalValue struct {
	Values []string
}

// ParseResult is the immutable, deep-value-equal outcome of a successful
// [*Parser.Parse] call (spec.md §3). Every option and positional declared
// in the resolved [CommandSpec] appears in the corresponding map.
type ParseResult struct {
	// Options maps each declared option's long name to its resolved
	// value.
	Options map[string]OptionValue

	// Positionals maps each declared positional's name to its resolved
	// value.
	Positionals map[string]PositionalValue

	// Subcommand is non-nil when a subcommand keyword was consumed at
	// this level; it holds the recursively parsed result for the child
	// command.
	Subcommand *ParseResult
}

// String implements [fmt.Stringer], rendering the result as a
// deterministically ordered, debug-friendly summary. This is a
// convenience mirror of the Value.Strings() round-trip helper the
// teacher exposes on its own parsed-value types; it is not meant to be
// machine-parsed.
func (r ParseResult) String() string {
	var sb strings.Builder
	r.writeIndented(&sb, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func (r ParseResult) writeIndented(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)

	names := make([]string, 0, len(r.Options))
	for name := range r.Options {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		val := r.Options[name]
		switch {
		case !val.Present:
			fmt.Fprintf(sb, "%s--%s: <unset>\n", indent, name)
		case val.Count > 0 || (val.Count == 0 && val.Values == nil):
			fmt.Fprintf(sb, "%s--%s: count=%d\n", indent, name, val.Count)
		default:
			fmt.Fprintf(sb, "%s--%s: %v\n", indent, name, val.Values)
		}
	}

	posNames := make([]string, 0, len(r.Positionals))
	for name := range r.Positionals {
		posNames = append(posNames, name)
	}
	sort.Strings(posNames)
	for _, name := range posNames {
		fmt.Fprintf(sb, "%s%s: %v\n", indent, name, r.Positionals[name].Values)
	}

	if r.Subcommand != nil {
		fmt.Fprintf(sb, "%s(subcommand)\n", indent)
		r.Subcommand.writeIndented(sb, depth+1)
	}
}

// buildResult implements C8 (spec.md §4.8): it produces a [ParseResult]
// containing every declared option (including unset ones) and every
// declared positional (possibly empty), given the dispatcher's collected
// occurrences and positional buffers.
func buildResult(
	spec CommandSpec,
	occurrences map[string][]optionOccurrence,
	positionals map[string][]string,
	subcommand *ParseResult,
) (ParseResult, error) {
	options := make(map[string]OptionValue, len(spec.Options))
	for _, opt := range spec.Options {
		value, err := accumulate(opt.Long, opt.Accumulation, occurrences[opt.Long])
		if err != nil {
			return ParseResult{}, err
		}
		options[opt.Long] = value
	}

	posValues := make(map[string]PositionalValue, len(spec.Positionals))
	for _, pos := range spec.Positionals {
		posValues[pos.Name] = PositionalValue{Values: positionals[pos.Name]}
	}

	return ParseResult{
		Options:     options,
		Positionals: posValues,
		Subcommand:  subcommand,
	}, nil
}
