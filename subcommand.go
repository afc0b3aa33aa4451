//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/clip/blob/v0.8.0/dispatcher.go
//

package aclaf

import "github.com/bassosimone/runtimex"

// resolveSubcommand implements C7 (spec.md §4.7): it recurses into the
// child [CommandSpec] selected by a [subcommandTok], extending the
// command path the same way
// bassosimone-clip/dispatcher.go:(*DispatcherCommand).run does
// (`CommandName: args.CommandName + " " + subName`), and returns the
// child's [ParseResult] to be attached to the parent's.
func resolveSubcommand(
	cfg *ParserConfig,
	spec CommandSpec,
	path []string,
	keyword subcommandTok,
	rest []string,
) (*ParseResult, error) {
	child, ok := spec.findSubcommand(keyword.Name)
	// classify only ever produces a subcommandTok for a name that
	// spec.findSubcommand already confirmed exists; ok false here would be
	// a programmer error in the classifier, not a user-facing one.
	runtimex.Assert(ok)

	childPath := make([]string, 0, len(path)+1)
	childPath = append(childPath, path...)
	childPath = append(childPath, keyword.Name)

	result, err := dispatchLevel(cfg, child, childPath, rest, keyword.Index()+1)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
