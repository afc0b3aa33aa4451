//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/clip/blob/v0.8.0/pkg/nparser/parse.go
// Adapted from: https://github.com/bassosimone/clip/blob/v0.8.0/pkg/nparser/config.go
//

package aclaf

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// UnknownOption indicates that a long or short option name was not
// declared at the active command level.
type UnknownOption struct {
	// Name is the unrecognized option name, without its prefix. For a
	// token that carries no name at all (such as `--=x` or `-=x`), it is
	// the whole raw token.
	Name string

	// TokenIndex is the offending token's position in the input.
	TokenIndex int

	// CommandPath is the sequence of command names leading to the level
	// where the error occurred, root first.
	CommandPath []string

	// NegativeNumberHint is set when the feature is disabled and the
	// offending token's first character after `-` is a digit, as a
	// nudge toward one of the disambiguation mechanisms (spec.md §9).
	NegativeNumberHint bool
}

var _ error = UnknownOption{}

// Error implements the error interface.
func (err UnknownOption) Error() string {
	msg := fmt.Sprintf("%sunknown option %q at token %d", pathPrefix(err.CommandPath), err.Name, err.TokenIndex)
	if err.NegativeNumberHint {
		msg += " (looks like a negative number: enable allow_negative_numbers, " +
			"use `--` before it, or pass it as an option value)"
	}
	return msg
}

// FlagTakesNoValue indicates that an inline value was supplied to an
// option whose arity is zero.
type FlagTakesNoValue struct {
	// Name is the offending option's long name.
	Name string

	// TokenIndex is the offending token's position in the input.
	TokenIndex int

	// CommandPath is the sequence of command names leading to the level
	// where the error occurred, root first.
	CommandPath []string
}

var _ error = FlagTakesNoValue{}

// Error implements the error interface.
func (err FlagTakesNoValue) Error() string {
	return fmt.Sprintf("%soption %q takes no value, at token %d", pathPrefix(err.CommandPath), err.Name, err.TokenIndex)
}

// InsufficientOptionValues indicates that an option occurrence ended
// (at end of stream, at the `--` delimiter, or at a malformed token such
// as `--=x`) with fewer values than its declared minimum arity, or that
// a single inline or glued value was given to an option whose minimum
// arity is above one.
type InsufficientOptionValues struct {
	// Name is the offending option's long name.
	Name string

	// Have is the number of values actually supplied.
	Have uint

	// Want is the minimum number of values required.
	Want uint

	// TokenIndex is the position of the option's own token.
	TokenIndex int

	// CommandPath is the sequence of command names leading to the level
	// where the error occurred, root first.
	CommandPath []string
}

var _ error = InsufficientOptionValues{}

// Error implements the error interface.
func (err InsufficientOptionValues) Error() string {
	return fmt.Sprintf(
		"%soption %q requires at least %d value(s), got %d, at token %d",
		pathPrefix(err.CommandPath), err.Name, err.Want, err.Have, err.TokenIndex,
	)
}

// OptionCannotBeSpecifiedMultipleTimes indicates that an
// [AccumulationError]-mode option was observed more than once.
type OptionCannotBeSpecifiedMultipleTimes struct {
	// Name is the offending option's long name.
	Name string

	// TokenIndex is the position of the second occurrence's token.
	TokenIndex int

	// CommandPath is the sequence of command names leading to the level
	// where the error occurred, root first.
	CommandPath []string
}

var _ error = OptionCannotBeSpecifiedMultipleTimes{}

// Error implements the error interface.
func (err OptionCannotBeSpecifiedMultipleTimes) Error() string {
	return fmt.Sprintf(
		"%soption %q cannot be specified multiple times, at token %d",
		pathPrefix(err.CommandPath), err.Name, err.TokenIndex,
	)
}

// TooManyPositionals indicates that a positional-looking token arrived
// after every declared positional slot was already saturated.
type TooManyPositionals struct {
	// TokenIndex is the offending token's position in the input.
	TokenIndex int

	// Extra contains the offending token and any remaining unconsumed
	// tokens, for diagnostic purposes.
	Extra []string

	// CommandPath is the sequence of command names leading to the level
	// where the error occurred, root first.
	CommandPath []string
}

var _ error = TooManyPositionals{}

// Error implements the error interface.
func (err TooManyPositionals) Error() string {
	return fmt.Sprintf(
		"%stoo many positional arguments, starting at token %d: %s",
		pathPrefix(err.CommandPath), err.TokenIndex, shellquote.Join(err.Extra...),
	)
}

// MissingPositional indicates that a required [PositionalSpec] did not
// reach its minimum arity by end of stream.
type MissingPositional struct {
	// Name is the under-saturated positional's name.
	Name string

	// Have is the number of values actually supplied.
	Have uint

	// Want is the minimum number of values required.
	Want uint

	// CommandPath is the sequence of command names leading to the level
	// where the error occurred, root first.
	CommandPath []string
}

var _ error = MissingPositional{}

// Error implements the error interface.
func (err MissingPositional) Error() string {
	return fmt.Sprintf(
		"%smissing positional argument %q: requires at least %d value(s), got %d",
		pathPrefix(err.CommandPath), err.Name, err.Want, err.Have,
	)
}

func pathPrefix(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return strings.Join(path, " ") + ": "
}
