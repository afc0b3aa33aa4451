//
// SPDX-License-Identifier: GPL-3.0-or-later
//

// Package resultcmp provides a go-cmp-based structural-equality helper for
// aclaf.ParseResult, used by tests that assert two parses of equivalent
// input produce deep-equal results and want a readable diff on failure.
package resultcmp

import (
	"github.com/google/go-cmp/cmp"
)

// Diff returns an empty string when got and want are structurally equal,
// or a human-readable diff otherwise. got and want must be values
// comparable by go-cmp's default rules (exported struct fields, maps,
// slices); unexported fields are not inspected.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}

// Equal reports whether want and got are structurally equal.
func Equal(want, got any) bool {
	return cmp.Equal(want, got)
}
