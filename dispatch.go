//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/doparse.go
//

package aclaf

import (
	"fmt"
	"io"
)

// parseDebugWriter is only used by tests to surface dispatch steps,
// mirroring the teacher's doparse.go:parseDebugWriter seam.
var parseDebugWriter io.Writer = io.Discard

// rawToken pairs an argument string with its position in the original
// top-level argument vector, surviving subcommand recursion.
type rawToken struct {
	Value string
	Index int
}

// pendingOption is a [OptionSpec] whose name has been consumed but whose
// values are still being collected from following tokens (spec.md §4.5,
// GLOSSARY "pending option").
type pendingOption struct {
	Spec       OptionSpec
	Values     []string
	TokenIndex int
}

func (p *pendingOption) minSatisfied() bool {
	return uint(len(p.Values)) >= p.Spec.resolvedArity().Min()
}

func (p *pendingOption) acceptingMore() bool {
	max, bounded := p.Spec.resolvedArity().Max()
	return !bounded || uint(len(p.Values)) < max
}

// dispatchLevel implements C5 (spec.md §4.5) for one command level: it
// drives the per-token transition table, recursing into C7 when a
// subcommand keyword is consumed, and returns the built [ParseResult] via
// C6/C8 on success.
//
// tokens are the raw arguments remaining for this level; indexOffset is
// the position, in the original top-level argument vector, of tokens[0]
// — used so that every error's TokenIndex refers to the original input
// regardless of subcommand recursion depth.
func dispatchLevel(cfg *ParserConfig, spec CommandSpec, path []string, tokens []string, indexOffset int) (ParseResult, error) {
	raw := make([]rawToken, len(tokens))
	for i, tok := range tokens {
		raw[i] = rawToken{Value: tok, Index: indexOffset + i}
	}
	cursor := 0

	var (
		positionalCursor  int
		positionalBuffer  = map[string][]string{}
		occurrences       = map[string][]optionOccurrence{}
		afterDelimiter    bool
		positionalStarted bool
		pending           *pendingOption
	)

	currentPositionalAccepting := func() bool {
		if positionalCursor >= len(spec.Positionals) {
			return false
		}
		pos := spec.Positionals[positionalCursor]
		max, bounded := pos.resolvedArity().Max()
		return !bounded || uint(len(positionalBuffer[pos.Name])) < max
	}

	valueConsuming := func() bool {
		if pending != nil {
			return pending.acceptingMore()
		}
		return currentPositionalAccepting()
	}

	subcommandAllowed := func() bool {
		return !afterDelimiter && !positionalStarted && len(spec.Subcommands) > 0
	}

	finalizePending := func() error {
		if pending == nil {
			return nil
		}
		p := pending
		pending = nil
		if !p.minSatisfied() {
			return InsufficientOptionValues{
				Name:        p.Spec.Long,
				Have:        uint(len(p.Values)),
				Want:        p.Spec.resolvedArity().Min(),
				TokenIndex:  p.TokenIndex,
				CommandPath: path,
			}
		}
		occurrences[p.Spec.Long] = append(occurrences[p.Spec.Long], optionOccurrence{
			Values:     p.Values,
			TokenIndex: p.TokenIndex,
		})
		return nil
	}

	appendPendingValue := func(value string) error {
		pending.Values = append(pending.Values, value)
		if !pending.acceptingMore() {
			return finalizePending()
		}
		return nil
	}

	remainingRaw := func(current rawToken) []string {
		out := []string{current.Value}
		for _, v := range raw[cursor:] {
			out = append(out, v.Value)
		}
		return out
	}

	appendPositionalValue := func(value string, tokIdx int, extra []string) error {
		positionalStarted = true
		for positionalCursor < len(spec.Positionals) {
			pos := spec.Positionals[positionalCursor]
			max, bounded := pos.resolvedArity().Max()
			have := uint(len(positionalBuffer[pos.Name]))
			if !bounded || have < max {
				positionalBuffer[pos.Name] = append(positionalBuffer[pos.Name], value)
				if bounded && have+1 >= max {
					positionalCursor++
				}
				return nil
			}
			positionalCursor++
		}
		return TooManyPositionals{TokenIndex: tokIdx, Extra: extra, CommandPath: path}
	}

	for cursor < len(raw) {
		cur := raw[cursor]
		cursor++
		fmt.Fprintf(parseDebugWriter, "\nprocessing token %d: %q\n", cur.Index, cur.Value)

		state := classifyState{
			AfterDelimiter:    afterDelimiter,
			ValueConsuming:    valueConsuming(),
			SubcommandAllowed: subcommandAllowed(),
		}
		ctok := classify(cur.Value, cur.Index, cfg, spec, state)
		fmt.Fprintf(parseDebugWriter, "classified as: %#v\n", ctok)

		if pending != nil {
			handled, err := handlePendingToken(pending, ctok, cur, &afterDelimiter, finalizePending, appendPendingValue)
			if err != nil {
				return ParseResult{}, err
			}
			if handled {
				continue
			}
			// pending was finalized above (min satisfied, an option-shaped
			// token arrived): fall through and reprocess ctok below.
			pending = nil
		}

		switch t := ctok.(type) {

		case delimiterTok:
			afterDelimiter = true

		case longOptionTok:
			opt, ok := spec.findLong(t.Name)
			if !ok {
				return ParseResult{}, UnknownOption{
					Name: t.Name, TokenIndex: t.Index(), CommandPath: path,
					NegativeNumberHint: looksNumeric(t.Name) && !cfg.AllowNegativeNumbers,
				}
			}
			if err := openOrFinalizeOption(opt, t.InlineValue, t.Index(), path, occurrences, &pending); err != nil {
				return ParseResult{}, err
			}

		case shortClusterTok:
			if err := dispatchShortCluster(spec, t, path, occurrences, &pending); err != nil {
				if unk, ok := err.(UnknownOption); ok && cfg.AllowNegativeNumbers {
					unk.NegativeNumberHint = false
					err = unk
				}
				return ParseResult{}, err
			}

		case subcommandTok:
			rest := make([]string, len(raw)-cursor)
			for i, v := range raw[cursor:] {
				rest[i] = v.Value
			}
			cursor = len(raw)
			childResult, err := resolveSubcommand(cfg, spec, path, t, rest)
			if err != nil {
				return ParseResult{}, err
			}
			if err := checkMissingPositionals(spec, positionalBuffer, path); err != nil {
				return ParseResult{}, err
			}
			return buildResult(spec, occurrences, positionalBuffer, childResult)

		case negativeNumberTok:
			if err := appendPositionalValue(t.Value, t.Index(), remainingRaw(cur)); err != nil {
				return ParseResult{}, err
			}

		case positionalTok:
			if err := appendPositionalValue(t.Value, t.Index(), remainingRaw(cur)); err != nil {
				return ParseResult{}, err
			}

		case unknownTok:
			return ParseResult{}, t.Err

		default:
			panic("aclaf: unhandled classified token type")
		}
	}

	if err := finalizePending(); err != nil {
		return ParseResult{}, err
	}
	if err := checkMissingPositionals(spec, positionalBuffer, path); err != nil {
		return ParseResult{}, err
	}
	return buildResult(spec, occurrences, positionalBuffer, nil)
}

// handlePendingToken implements the pending-option branch of spec.md
// §4.5. It returns handled = true when ctok was consumed as a value (or
// as the delimiter) for the pending option; handled = false means the
// pending option was finalized and ctok must be reprocessed in the
// non-pending state.
func handlePendingToken(
	pending *pendingOption,
	ctok classifiedToken,
	cur rawToken,
	afterDelimiter *bool,
	finalize func() error,
	appendValue func(string) error,
) (bool, error) {
	switch ctok.(type) {

	case delimiterTok:
		if err := finalize(); err != nil {
			return false, err
		}
		*afterDelimiter = true
		return true, nil

	case longOptionTok, shortClusterTok:
		if pending.minSatisfied() {
			return false, finalize()
		}
		return true, appendValue(cur.Value)

	case unknownTok:
		if err := finalize(); err != nil {
			return false, err
		}
		return true, ctok.(unknownTok).Err

	default:
		// subcommandTok, negativeNumberTok, positionalTok: never stop
		// consumption on their own (spec.md §4.5's "Exception" clause
		// generalizes to every value-shaped classification, not just
		// negative numbers, since only option-shaped tokens trigger the
		// early-stop rule).
		return true, appendValue(cur.Value)
	}
}

// openOrFinalizeOption handles a resolved long or short option that is
// not part of a cluster: either it records a zero-arity flag occurrence
// immediately, consumes its inline value, or opens a pending occurrence
// to be filled by following tokens.
func openOrFinalizeOption(
	opt OptionSpec,
	inline *string,
	tokIndex int,
	path []string,
	occurrences map[string][]optionOccurrence,
	pending **pendingOption,
) error {
	arity := opt.resolvedArity()

	if inline != nil {
		if arity == ArityZero {
			return FlagTakesNoValue{Name: opt.Long, TokenIndex: tokIndex, CommandPath: path}
		}
		if arity.Min() > 1 {
			return InsufficientOptionValues{
				Name: opt.Long, Have: 1, Want: arity.Min(), TokenIndex: tokIndex, CommandPath: path,
			}
		}
		occurrences[opt.Long] = append(occurrences[opt.Long], optionOccurrence{
			Values:     []string{*inline},
			TokenIndex: tokIndex,
		})
		return nil
	}

	if arity == ArityZero {
		occurrences[opt.Long] = append(occurrences[opt.Long], optionOccurrence{TokenIndex: tokIndex})
		return nil
	}

	*pending = &pendingOption{Spec: opt, TokenIndex: tokIndex}
	return nil
}

// dispatchShortCluster implements the clustered-short-option bullet of
// spec.md §4.5: every character except possibly the last is a bare flag;
// the last may accept an inline/glued value or open a pending occurrence.
// A value-taking option anywhere before the last character immediately
// consumes the remainder of the cluster as its glued value (Open
// Question 2 in DESIGN.md).
func dispatchShortCluster(
	spec CommandSpec,
	t shortClusterTok,
	path []string,
	occurrences map[string][]optionOccurrence,
	pending **pendingOption,
) error {
	if len(t.Chars) == 0 {
		// `-=value`: an inline value with no flag character to attach it
		// to. Surface it as an unknown option rather than silently
		// dropping the token.
		return UnknownOption{Name: t.Raw(), TokenIndex: t.Index(), CommandPath: path}
	}

	for i := 0; i < len(t.Chars); i++ {
		ch := t.Chars[i]
		opt, ok := spec.findShort(ch)
		if !ok {
			return UnknownOption{
				Name: string(ch), TokenIndex: t.Index(), CommandPath: path,
				NegativeNumberHint: i == 0 && ch >= '0' && ch <= '9',
			}
		}
		arity := opt.resolvedArity()

		if arity == ArityZero {
			occurrences[opt.Long] = append(occurrences[opt.Long], optionOccurrence{TokenIndex: t.Index()})
			continue
		}

		// Value-taking option. If it is not the last character, the
		// remainder of the cluster is its glued value.
		if i < len(t.Chars)-1 {
			value := t.Chars[i+1:]
			if arity.Min() > 1 {
				return InsufficientOptionValues{
					Name: opt.Long, Have: 1, Want: arity.Min(), TokenIndex: t.Index(), CommandPath: path,
				}
			}
			occurrences[opt.Long] = append(occurrences[opt.Long], optionOccurrence{
				Values:     []string{value},
				TokenIndex: t.Index(),
			})
			return nil
		}

		// Last character: inline "=value" suffix, or open a pending
		// occurrence for following tokens to fill.
		if t.InlineValue != nil {
			if arity.Min() > 1 {
				return InsufficientOptionValues{
					Name: opt.Long, Have: 1, Want: arity.Min(), TokenIndex: t.Index(), CommandPath: path,
				}
			}
			occurrences[opt.Long] = append(occurrences[opt.Long], optionOccurrence{
				Values:     []string{*t.InlineValue},
				TokenIndex: t.Index(),
			})
			return nil
		}

		*pending = &pendingOption{Spec: opt, TokenIndex: t.Index()}
		return nil
	}
	return nil
}

func checkMissingPositionals(spec CommandSpec, buffer map[string][]string, path []string) error {
	for _, pos := range spec.Positionals {
		arity := pos.resolvedArity()
		have := uint(len(buffer[pos.Name]))
		if have < arity.Min() {
			return MissingPositional{
				Name: pos.Name, Have: have, Want: arity.Min(), CommandPath: path,
			}
		}
	}
	return nil
}

func looksNumeric(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
