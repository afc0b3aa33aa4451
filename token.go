//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagscanner's Token taxonomy,
// as used by https://github.com/bassosimone/clip/blob/v0.8.0/pkg/nparser/doparse.go
//

package aclaf

import "strings"

// classifiedToken is the output alphabet of the classifier described in
// spec.md §4.4: every raw argument token is classified into exactly one
// of the concrete types below, given the current dispatch state.
type classifiedToken interface {
	// Index returns the token's position in the original input slice.
	Index() int

	// Raw returns the original, unmodified token text.
	Raw() string
}

type tokenBase struct {
	index int
	raw   string
}

func (t tokenBase) Index() int  { return t.index }
func (t tokenBase) Raw() string { return t.raw }

// longOptionTok is produced for `--name` and `--name=value` tokens.
type longOptionTok struct {
	tokenBase
	Name        string
	InlineValue *string
}

// shortClusterTok is produced for `-x`, `-xyz`, and `-x=value` tokens.
// Chars is the token text after the leading `-` and after stripping any
// `=value` suffix; splitting the cluster into per-character occurrences
// and resolving glued values is spec-dependent and happens in dispatch.go.
type shortClusterTok struct {
	tokenBase
	Chars       string
	InlineValue *string
}

// delimiterTok is produced for the literal `--`.
type delimiterTok struct {
	tokenBase
}

// subcommandTok is produced when a token exactly matches a declared
// subcommand name in a position where subcommand recognition is active.
type subcommandTok struct {
	tokenBase
	Name string
}

// negativeNumberTok is produced for a `-`-prefixed token that matches the
// configured negative-number pattern in a value-consuming context.
type negativeNumberTok struct {
	tokenBase
	Value string
}

// positionalTok is produced for every token that is not one of the above.
type positionalTok struct {
	tokenBase
	Value string
}

// unknownTok is produced when the raw token's shape is itself invalid,
// independent of spec lookup (e.g. `--=value`, an empty long name).
type unknownTok struct {
	tokenBase
	Err error
}

// classifyState carries the dispatch context the classifier needs beyond
// the raw token and its position, per spec.md §4.4 and §4.5.
type classifyState struct {
	// AfterDelimiter is true once `--` has been consumed at this level.
	AfterDelimiter bool

	// ValueConsuming is true when the next token is expected to be a
	// value: either a pending option has not yet reached its maximum
	// arity, or the current positional slot is still accepting input. See the
	// GLOSSARY entry for "value-consuming context".
	ValueConsuming bool

	// SubcommandAllowed is true when a subcommand keyword may still
	// appear at this level: before any positional has been consumed and
	// before the delimiter (spec.md §4.7).
	SubcommandAllowed bool
}

// classify implements spec.md §4.4: it classifies one raw token given
// the active command spec, the parser's negative-number configuration,
// and the current dispatch state. Classification is total and
// deterministic given its inputs.
func classify(raw string, index int, cfg *ParserConfig, spec CommandSpec, state classifyState) classifiedToken {
	base := tokenBase{index: index, raw: raw}

	// Once the delimiter has been seen, every token is positional,
	// regardless of its leading characters (spec.md invariant 9).
	if state.AfterDelimiter {
		return positionalTok{tokenBase: base, Value: raw}
	}

	// Rule 1: the literal `--` is the delimiter.
	if raw == "--" {
		return delimiterTok{tokenBase: base}
	}

	// Rule 2: `--name` or `--name=value`.
	if strings.HasPrefix(raw, "--") && len(raw) > 2 {
		rest := raw[2:]
		if idx := strings.IndexByte(rest, '='); idx >= 0 {
			name, value := rest[:idx], rest[idx+1:]
			if name == "" {
				return unknownTok{tokenBase: base, Err: UnknownOption{Name: raw, TokenIndex: index}}
			}
			return longOptionTok{tokenBase: base, Name: name, InlineValue: &value}
		}
		if rest == "" {
			return unknownTok{tokenBase: base, Err: UnknownOption{Name: raw, TokenIndex: index}}
		}
		return longOptionTok{tokenBase: base, Name: rest}
	}

	// Rule 3: the lone `-` is the stdin-convention positional.
	if raw == "-" {
		return positionalTok{tokenBase: base, Value: raw}
	}

	// Rule 4: anything else starting with `-` and longer than one byte.
	if strings.HasPrefix(raw, "-") && len(raw) > 1 {
		firstChar := raw[1]
		declaredShort := spec.hasShort(firstChar)

		if !declaredShort && cfg.AllowNegativeNumbers && state.ValueConsuming {
			if cfg.negativeNumberRegexp.MatchString(raw) {
				return negativeNumberTok{tokenBase: base, Value: raw}
			}
		}

		// Precedence rule: a declared short option at the first
		// character is always a short option, never a negative number,
		// regardless of the above.
		rest := raw[1:]
		if idx := strings.IndexByte(rest, '='); idx >= 0 {
			chars, value := rest[:idx], rest[idx+1:]
			return shortClusterTok{tokenBase: base, Chars: chars, InlineValue: &value}
		}
		return shortClusterTok{tokenBase: base, Chars: rest}
	}

	// Rule 5: a subcommand keyword, if recognition is still active here.
	if state.SubcommandAllowed {
		if _, ok := spec.findSubcommand(raw); ok {
			return subcommandTok{tokenBase: base, Name: raw}
		}
	}

	// Rule 6: everything else is positional.
	return positionalTok{tokenBase: base, Value: raw}
}
