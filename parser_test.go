//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package aclaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParser_Scenarios exercises the six concrete end-to-end scenarios.
func TestParser_Scenarios(t *testing.T) {
	t.Run("variadic positionals absorb negative numbers", func(t *testing.T) {
		spec, err := NewCommandSpec(CommandSpec{
			Name:        "calc",
			Positionals: []PositionalSpec{{Name: "values", Arity: ArityZeroOrMore}},
		})
		require.NoError(t, err)
		px, err := NewParser(spec, ParserConfig{AllowNegativeNumbers: true})
		require.NoError(t, err)

		result, err := px.Parse([]string{"-10", "5", "-3"})
		require.NoError(t, err)
		assert.Equal(t, []string{"-10", "5", "-3"}, result.Positionals["values"].Values)
	})

	t.Run("options consume negative-number-looking values", func(t *testing.T) {
		spec, err := NewCommandSpec(CommandSpec{
			Name: "calc",
			Options: []OptionSpec{
				{Long: "temp", Arity: ArityExactlyOne},
				{Long: "pressure", Arity: ArityExactlyOne},
				{Long: "time", Arity: ArityExactlyOne},
			},
		})
		require.NoError(t, err)
		px, err := NewParser(spec, ParserConfig{AllowNegativeNumbers: true})
		require.NoError(t, err)

		result, err := px.Parse([]string{"--temp", "-273.15", "--pressure", "1.0", "--time", "-0.5"})
		require.NoError(t, err)
		assert.Equal(t, []string{"-273.15"}, result.Options["temp"].Values)
		assert.Equal(t, []string{"1.0"}, result.Options["pressure"].Values)
		assert.Equal(t, []string{"-0.5"}, result.Options["time"].Values)
	})

	t.Run("undeclared negative number with nothing to consume it is unknown option", func(t *testing.T) {
		spec, err := NewCommandSpec(CommandSpec{
			Name:    "app",
			Options: []OptionSpec{{Long: "verbose", Short: "v", IsFlag: true}},
		})
		require.NoError(t, err)
		px, err := NewParser(spec, ParserConfig{AllowNegativeNumbers: true})
		require.NoError(t, err)

		_, err = px.Parse([]string{"-1"})
		require.Error(t, err)
		var target UnknownOption
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "1", target.Name)
	})

	t.Run("delimiter forces positional interpretation without the feature enabled", func(t *testing.T) {
		spec, err := NewCommandSpec(CommandSpec{
			Name:        "app",
			Positionals: []PositionalSpec{{Name: "x", Arity: ArityExactlyOne}},
		})
		require.NoError(t, err)
		px, err := NewParser(spec, ParserConfig{AllowNegativeNumbers: false})
		require.NoError(t, err)

		result, err := px.Parse([]string{"--", "-1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"-1"}, result.Positionals["x"].Values)
	})

	t.Run("zero supplied values for a (0,5) option does not crash", func(t *testing.T) {
		spec, err := NewCommandSpec(CommandSpec{
			Name: "app",
			Options: []OptionSpec{
				{Long: "opt", Arity: NewArity(0, 5, true)},
			},
		})
		require.NoError(t, err)
		px, err := NewParser(spec, ParserConfig{})
		require.NoError(t, err)

		result, err := px.Parse([]string{"--opt"})
		require.NoError(t, err)
		assert.True(t, result.Options["opt"].Present)
		assert.Empty(t, result.Options["opt"].Values)
	})

	t.Run("subcommand positionals absorb negative numbers", func(t *testing.T) {
		spec, err := NewCommandSpec(CommandSpec{
			Name: "app",
			Subcommands: map[string]CommandSpec{
				"add": {
					Positionals: []PositionalSpec{{Name: "operands", Arity: ArityOneOrMore}},
				},
			},
		})
		require.NoError(t, err)
		px, err := NewParser(spec, ParserConfig{AllowNegativeNumbers: true})
		require.NoError(t, err)

		result, err := px.Parse([]string{"add", "-10", "5", "-3"})
		require.NoError(t, err)
		require.NotNil(t, result.Subcommand)
		assert.Equal(t, []string{"-10", "5", "-3"}, result.Subcommand.Positionals["operands"].Values)
	})
}

func TestNewParser_InvalidSpec(t *testing.T) {
	_, err := NewParser(CommandSpec{Options: []OptionSpec{{Long: ""}}}, ParserConfig{})
	require.Error(t, err)
	var target InvalidSpec
	assert.ErrorAs(t, err, &target)
}

func TestNewParser_InvalidPattern(t *testing.T) {
	_, err := NewParser(CommandSpec{}, ParserConfig{
		AllowNegativeNumbers:  true,
		NegativeNumberPattern: `(unclosed`,
	})
	require.Error(t, err)
	var target InvalidPattern
	assert.ErrorAs(t, err, &target)
}

func TestNewParser_DefaultPatternUsedWhenEmpty(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{
		Positionals: []PositionalSpec{{Name: "x", Arity: ArityZeroOrMore}},
	})
	require.NoError(t, err)
	px, err := NewParser(spec, ParserConfig{AllowNegativeNumbers: true})
	require.NoError(t, err)

	result, err := px.Parse([]string{"-3.14"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-3.14"}, result.Positionals["x"].Values)
}

func TestParser_ShortOptionPrecedenceOverNegativeNumber(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{
		Options:     []OptionSpec{{Long: "n", Short: "1", IsFlag: true}},
		Positionals: []PositionalSpec{{Name: "x", Arity: ArityZeroOrMore}},
	})
	require.NoError(t, err)
	px, err := NewParser(spec, ParserConfig{AllowNegativeNumbers: true})
	require.NoError(t, err)

	result, err := px.Parse([]string{"-1"})
	require.NoError(t, err)
	assert.True(t, result.Options["n"].Present)
	assert.Empty(t, result.Positionals["x"].Values)
}

func TestParser_ClusteredShortOptionGluedValue(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{
		Options: []OptionSpec{
			{Long: "fail", Short: "f", IsFlag: true},
			{Long: "output", Short: "o", Arity: ArityExactlyOne},
		},
	})
	require.NoError(t, err)
	px, err := NewParser(spec, ParserConfig{})
	require.NoError(t, err)

	result, err := px.Parse([]string{"-foresult.txt"})
	require.NoError(t, err)
	assert.True(t, result.Options["fail"].Present)
	assert.Equal(t, []string{"result.txt"}, result.Options["output"].Values)
}

func TestParser_MissingPositional(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{
		Positionals: []PositionalSpec{{Name: "x", Arity: ArityExactlyOne}},
	})
	require.NoError(t, err)
	px, err := NewParser(spec, ParserConfig{})
	require.NoError(t, err)

	_, err = px.Parse(nil)
	require.Error(t, err)
	var target MissingPositional
	assert.ErrorAs(t, err, &target)
}

func TestParser_TooManyPositionals(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{
		Positionals: []PositionalSpec{{Name: "x", Arity: ArityExactlyOne}},
	})
	require.NoError(t, err)
	px, err := NewParser(spec, ParserConfig{})
	require.NoError(t, err)

	_, err = px.Parse([]string{"a", "b"})
	require.Error(t, err)
	var target TooManyPositionals
	assert.ErrorAs(t, err, &target)
}

func TestParser_PendingOptionStopsOnFollowingOption(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{
		Options: []OptionSpec{
			{Long: "tags", Arity: ArityOneOrMore},
			{Long: "verbose", Short: "v", IsFlag: true},
		},
	})
	require.NoError(t, err)
	px, err := NewParser(spec, ParserConfig{})
	require.NoError(t, err)

	result, err := px.Parse([]string{"--tags", "a", "b", "--verbose"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result.Options["tags"].Values)
	assert.True(t, result.Options["verbose"].Present)
}

func TestParser_DeterministicRepeatedCalls(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{
		Options: []OptionSpec{{Long: "n", Arity: ArityExactlyOne}},
	})
	require.NoError(t, err)
	px, err := NewParser(spec, ParserConfig{})
	require.NoError(t, err)

	first, err := px.Parse([]string{"--n", "1"})
	require.NoError(t, err)
	second, err := px.Parse([]string{"--n", "1"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
