//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/parser.go
//

package aclaf

import (
	"regexp"

	"github.com/bassosimone/runtimex"
)

// ParserConfig configures a [Parser]'s negative-number disambiguation
// subsystem (spec.md §3, §4.3).
type ParserConfig struct {
	// AllowNegativeNumbers enables classifying a `-`-prefixed token as a
	// negative-number literal instead of an option, in a value-consuming
	// context, when no declared short option matches its first
	// character. Default: false.
	AllowNegativeNumbers bool

	// NegativeNumberPattern overrides [DefaultNegativeNumberPattern].
	// Ignored when AllowNegativeNumbers is false. Validated at
	// [NewParser] time; see [compileNegativeNumberPattern].
	NegativeNumberPattern string

	negativeNumberRegexp *regexp.Regexp
}

// Parser is an immutable command-line parser bundling a validated
// [CommandSpec] and a [ParserConfig]. Construct with [NewParser]; a
// constructed [*Parser] is safe for concurrent use by multiple
// goroutines, and repeated [*Parser.Parse] calls on the same [*Parser]
// are independent (spec.md §5).
type Parser struct {
	spec   CommandSpec
	config ParserConfig
}

// NewParser validates spec and config and returns a ready-to-use
// [*Parser]. Construction-time errors are [InvalidSpec] or
// [InvalidPattern]. NewParser never returns [InvalidArity]: [NewArity]
// panics on malformed bounds before a spec can hold them; build arities
// with [NewArityChecked] if you need to validate user-supplied bounds
// before calling [NewParser].
func NewParser(spec CommandSpec, config ParserConfig) (*Parser, error) {
	validSpec, err := NewCommandSpec(spec)
	if err != nil {
		return nil, err
	}

	if config.AllowNegativeNumbers {
		pattern := config.NegativeNumberPattern
		if pattern == "" {
			pattern = DefaultNegativeNumberPattern
		}
		compiled, err := compileNegativeNumberPattern(pattern)
		if err != nil {
			return nil, err
		}
		config.negativeNumberRegexp = compiled
	}

	return &Parser{spec: validSpec, config: config}, nil
}

// Parse converts tokens into a [ParseResult] according to the [Parser]'s
// spec and config, or returns the first [C9 error taxonomy] error
// encountered. tokens MUST NOT include the program name. Parse does not
// mutate tokens and does not mutate the [*Parser]; see spec.md §5 for the
// concurrency and determinism guarantees this method upholds.
func (px *Parser) Parse(tokens []string) (ParseResult, error) {
	// px.spec.byLong is only nil if px was built by zero value instead of NewParser.
	runtimex.Assert(px.spec.byLong != nil)

	result, err := dispatchLevel(&px.config, px.spec, nil, tokens, 0)
	if err != nil {
		return ParseResult{}, err
	}

	// buildResult always populates Options, one entry per declared option.
	runtimex.Assert(result.Options != nil)
	return result, nil
}
