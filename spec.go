//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/clip/blob/v0.8.0/pkg/nparser/config.go
//

package aclaf

import "fmt"

// AccumulationMode is the policy used to collapse multiple occurrences of
// the same [OptionSpec] into a single result value. The zero value is
// [AccumulationCollect].
type AccumulationMode int

const (
	// AccumulationCollect appends each occurrence's value(s) to an
	// ordered sequence containing every occurrence seen, in order.
	AccumulationCollect AccumulationMode = iota

	// AccumulationCount discards occurrence payloads and keeps only the
	// number of occurrences observed. Intended for flags.
	AccumulationCount

	// AccumulationFirstWins keeps the first occurrence's value and
	// silently discards subsequent occurrences.
	AccumulationFirstWins

	// AccumulationLastWins keeps the last occurrence's value.
	AccumulationLastWins

	// AccumulationError rejects a second occurrence with
	// [OptionCannotBeSpecifiedMultipleTimes].
	AccumulationError
)

// String implements [fmt.Stringer].
func (m AccumulationMode) String() string {
	switch m {
	case AccumulationCollect:
		return "collect"
	case AccumulationCount:
		return "count"
	case AccumulationFirstWins:
		return "first-wins"
	case AccumulationLastWins:
		return "last-wins"
	case AccumulationError:
		return "error"
	default:
		return fmt.Sprintf("AccumulationMode(%d)", int(m))
	}
}

// OptionSpec is an immutable description of one named option. Construct
// specs by value and pass them to [NewCommandSpec]; do not mutate a spec
// once it has been used to build a [CommandSpec].
type OptionSpec struct {
	// Long is the long option name (without leading `--`), unique
	// within a command.
	Long string

	// Short is the optional short name (a single character, without
	// leading `-`), unique within a command. Empty means no short form.
	Short string

	// Arity bounds the number of values a single occurrence may carry.
	// The zero value is treated as [ArityExactlyOne] unless IsFlag is
	// set, in which case it is forced to [ArityZero].
	Arity Arity

	// IsFlag marks this option as a boolean flag: presence alone carries
	// meaning and Arity is forced to [ArityZero].
	IsFlag bool

	// Accumulation is the duplicate-occurrence policy. The zero value
	// ([AccumulationCollect]) is used when unset.
	Accumulation AccumulationMode

	// Description is an opaque, human-readable description of the
	// option. The core never inspects it.
	Description string
}

func (o OptionSpec) resolvedArity() Arity {
	if o.IsFlag {
		return ArityZero
	}
	if o.Arity == (Arity{}) {
		return ArityExactlyOne
	}
	if max, bounded := o.Arity.Max(); bounded && max == 0 {
		return ArityZero
	}
	return o.Arity
}

// PositionalSpec is an immutable description of one positional argument
// slot.
type PositionalSpec struct {
	// Name uniquely identifies this positional within a command.
	Name string

	// Arity bounds the number of values this positional may consume.
	// The zero value is treated as [ArityExactlyOne].
	Arity Arity

	// Description is an opaque, human-readable description.
	Description string
}

func (p PositionalSpec) resolvedArity() Arity {
	if p.Arity == (Arity{}) {
		return ArityExactlyOne
	}
	return p.Arity
}

func (p PositionalSpec) isVariadic() bool {
	a := p.resolvedArity()
	if a.Unbounded() {
		return true
	}
	max, _ := a.Max()
	return max > 1
}

// CommandSpec is an immutable tree describing one command level: its
// options, its positionals (in declaration order), and its subcommands
// (by name). Construct with [NewCommandSpec], which validates the whole
// tree up front and fails fast with [InvalidSpec].
type CommandSpec struct {
	// Name is this command's name. For the root of the tree this is
	// typically the program name; for a subcommand it is the keyword
	// used to select it.
	Name string

	// Options are the options declared at this level.
	Options []OptionSpec

	// Positionals are the positional slots declared at this level, in
	// the order they are filled.
	Positionals []PositionalSpec

	// Subcommands maps a subcommand keyword to its [CommandSpec]. A nil
	// or empty map means this command has no subcommands.
	Subcommands map[string]CommandSpec

	byLong  map[string]OptionSpec
	byShort map[string]OptionSpec
}

// InvalidSpec indicates that a [CommandSpec] (or one of its nested
// [OptionSpec]/[PositionalSpec] entries) violates a structural invariant.
type InvalidSpec struct {
	// Reason is a human-readable explanation of the violation.
	Reason string
}

var _ error = InvalidSpec{}

// Error implements the error interface.
func (err InvalidSpec) Error() string {
	return fmt.Sprintf("invalid command spec: %s", err.Reason)
}

// NewCommandSpec validates spec and returns it with its internal lookup
// tables populated, or an [InvalidSpec] error.
//
// Validation checks, applied to this level and recursively to every
// subcommand:
//
//  1. no two options share a long name;
//  2. no two options share a short name;
//  3. no option's long name collides with a subcommand name;
//  4. IsFlag implies Arity is zero (or unset, which resolves to zero);
//  5. at most one positional has an unbounded or >1 max, and it must be
//     the last positional (otherwise later positionals are unreachable);
//  6. no two subcommands share a name (guaranteed by the map type, kept
//     here only as a doc anchor — see spec.md §3).
func NewCommandSpec(spec CommandSpec) (CommandSpec, error) {
	byLong := make(map[string]OptionSpec, len(spec.Options))
	byShort := make(map[string]OptionSpec, len(spec.Options))

	for _, opt := range spec.Options {
		if opt.Long == "" {
			return CommandSpec{}, InvalidSpec{Reason: "option long name cannot be empty"}
		}
		if _, dup := byLong[opt.Long]; dup {
			return CommandSpec{}, InvalidSpec{
				Reason: fmt.Sprintf("duplicate long option name: %q", opt.Long),
			}
		}
		if max, bounded := opt.Arity.Max(); opt.IsFlag && opt.Arity != (Arity{}) && (!bounded || max != 0) {
			return CommandSpec{}, InvalidSpec{
				Reason: fmt.Sprintf("option %q is a flag but declares a non-zero arity", opt.Long),
			}
		}
		byLong[opt.Long] = opt

		if opt.Short != "" {
			if len(opt.Short) != 1 {
				return CommandSpec{}, InvalidSpec{
					Reason: fmt.Sprintf("short option name must be a single character: %q", opt.Short),
				}
			}
			if _, dup := byShort[opt.Short]; dup {
				return CommandSpec{}, InvalidSpec{
					Reason: fmt.Sprintf("duplicate short option name: %q", opt.Short),
				}
			}
			byShort[opt.Short] = opt
		}
	}

	for name := range spec.Subcommands {
		if _, collide := byLong[name]; collide {
			return CommandSpec{}, InvalidSpec{
				Reason: fmt.Sprintf("subcommand name %q collides with an option long name", name),
			}
		}
	}

	for idx, pos := range spec.Positionals {
		if pos.Name == "" {
			return CommandSpec{}, InvalidSpec{Reason: "positional name cannot be empty"}
		}
		if pos.isVariadic() && idx != len(spec.Positionals)-1 {
			return CommandSpec{}, InvalidSpec{
				Reason: fmt.Sprintf(
					"positional %q accepts more than one value but is not the last positional",
					pos.Name,
				),
			}
		}
	}

	validatedChildren := make(map[string]CommandSpec, len(spec.Subcommands))
	for name, child := range spec.Subcommands {
		child.Name = name
		validChild, err := NewCommandSpec(child)
		if err != nil {
			return CommandSpec{}, InvalidSpec{
				Reason: fmt.Sprintf("subcommand %q: %s", name, err.(InvalidSpec).Reason),
			}
		}
		validatedChildren[name] = validChild
	}

	spec.Subcommands = validatedChildren
	spec.byLong = byLong
	spec.byShort = byShort
	return spec, nil
}

func (c CommandSpec) findLong(name string) (OptionSpec, bool) {
	opt, ok := c.byLong[name]
	return opt, ok
}

func (c CommandSpec) findShort(ch byte) (OptionSpec, bool) {
	opt, ok := c.byShort[string(ch)]
	return opt, ok
}

func (c CommandSpec) hasShort(ch byte) bool {
	_, ok := c.byShort[string(ch)]
	return ok
}

func (c CommandSpec) findSubcommand(name string) (CommandSpec, bool) {
	child, ok := c.Subcommands[name]
	return child, ok
}
