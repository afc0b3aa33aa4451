//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/doc.go
//

/*
Package aclaf implements a command-line argument parser driven by a
declarative command specification rather than by imperative flag
registration.

To parse arguments, you need to:

 1. Build a [CommandSpec] describing the options, positionals, and
    subcommands of your command (and, recursively, of each subcommand).

 2. Construct a [*Parser] with [NewParser], passing the spec and a
    [ParserConfig].

 3. Call [*Parser.Parse] with the raw argument vector (never including
    the program name) to obtain a [ParseResult].

# Arity

Every [OptionSpec] and [PositionalSpec] declares an [Arity]: the range of
values a single occurrence may carry. [ArityExactlyOne] is the default for
an [OptionSpec] that does not set one explicitly; [ArityZero] is forced
whenever IsFlag is set.

# Accumulation

When an option appears more than once, its [AccumulationMode] decides how
the occurrences collapse into one [OptionValue]: [AccumulationCollect]
concatenates every occurrence's values, [AccumulationCount] counts
occurrences, [AccumulationFirstWins]/[AccumulationLastWins] keep one
occurrence, and [AccumulationError] rejects a second occurrence outright.

# Negative-Number Disambiguation

By default a `-`-prefixed token (other than a lone `-`) that is not
taken as a value by an option still short of its minimum arity is
either a known option or an error;
[ParserConfig.AllowNegativeNumbers] opts into classifying such a
token as a value (e.g. `-10`) when no declared short option matches its
first character and the dispatcher is expecting a value. A declared short
option always takes precedence: `-n` is never reinterpreted as a number
merely because the feature is enabled.

# Subcommands

A [CommandSpec] may declare subcommands. A bare word that matches a
declared subcommand name, appearing before any positional has been
consumed and before the `--` delimiter, switches the active spec to the
child and recurses; the child's [ParseResult] is attached as
[ParseResult.Subcommand].

# Example

Consider a command with a required `--temp` option and a variadic
`values` positional with negative numbers enabled:

	spec, _ := aclaf.NewCommandSpec(aclaf.CommandSpec{
		Name: "calc",
		Options: []aclaf.OptionSpec{
			{Long: "temp", Arity: aclaf.ArityExactlyOne},
		},
		Positionals: []aclaf.PositionalSpec{
			{Name: "values", Arity: aclaf.ArityZeroOrMore},
		},
	})
	px, _ := aclaf.NewParser(spec, aclaf.ParserConfig{AllowNegativeNumbers: true})
	result, _ := px.Parse([]string{"--temp", "-273.15", "-10", "5", "-3"})
	result.Options["temp"].Values       // []string{"-273.15"}
	result.Positionals["values"].Values // []string{"-10", "5", "-3"}
*/
package aclaf
