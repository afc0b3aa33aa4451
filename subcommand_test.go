//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package aclaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_SubcommandNotRecognizedAfterPositionalStarted(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{
		Positionals: []PositionalSpec{{Name: "first", Arity: ArityZeroOrMore}},
		Subcommands: map[string]CommandSpec{"run": {}},
	})
	require.NoError(t, err)
	px, err := NewParser(spec, ParserConfig{})
	require.NoError(t, err)

	result, err := px.Parse([]string{"file.txt", "run"})
	require.NoError(t, err)
	assert.Nil(t, result.Subcommand)
	assert.Equal(t, []string{"file.txt", "run"}, result.Positionals["first"].Values)
}

func TestParser_SubcommandNotRecognizedAfterDelimiter(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{
		Positionals: []PositionalSpec{{Name: "rest", Arity: ArityZeroOrMore}},
		Subcommands: map[string]CommandSpec{"run": {}},
	})
	require.NoError(t, err)
	px, err := NewParser(spec, ParserConfig{})
	require.NoError(t, err)

	result, err := px.Parse([]string{"--", "run"})
	require.NoError(t, err)
	assert.Nil(t, result.Subcommand)
	assert.Equal(t, []string{"run"}, result.Positionals["rest"].Values)
}

func TestParser_NestedSubcommandPath(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{
		Subcommands: map[string]CommandSpec{
			"remote": {
				Subcommands: map[string]CommandSpec{
					"add": {
						Positionals: []PositionalSpec{
							{Name: "name", Arity: ArityExactlyOne},
							{Name: "url", Arity: ArityExactlyOne},
						},
					},
				},
			},
		},
	})
	require.NoError(t, err)
	px, err := NewParser(spec, ParserConfig{})
	require.NoError(t, err)

	result, err := px.Parse([]string{"remote", "add", "origin", "https://example.com/repo.git"})
	require.NoError(t, err)
	require.NotNil(t, result.Subcommand)
	require.NotNil(t, result.Subcommand.Subcommand)
	leaf := result.Subcommand.Subcommand
	assert.Equal(t, []string{"origin"}, leaf.Positionals["name"].Values)
	assert.Equal(t, []string{"https://example.com/repo.git"}, leaf.Positionals["url"].Values)
}

func TestParser_SubcommandErrorCarriesCommandPath(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{
		Subcommands: map[string]CommandSpec{
			"add": {
				Positionals: []PositionalSpec{{Name: "name", Arity: ArityExactlyOne}},
			},
		},
	})
	require.NoError(t, err)
	px, err := NewParser(spec, ParserConfig{})
	require.NoError(t, err)

	_, err = px.Parse([]string{"add"})
	require.Error(t, err)
	var target MissingPositional
	require.ErrorAs(t, err, &target)
	assert.Equal(t, []string{"add"}, target.CommandPath)
}

func TestResolveSubcommand_PanicsOnUndeclaredKeyword(t *testing.T) {
	spec, err := NewCommandSpec(CommandSpec{Subcommands: map[string]CommandSpec{"run": {}}})
	require.NoError(t, err)

	assert.Panics(t, func() {
		_, _ = resolveSubcommand(&ParserConfig{}, spec, nil, subcommandTok{Name: "missing"}, nil)
	})
}
