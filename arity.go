//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package aclaf

import "fmt"

// Arity represents the permitted range of per-occurrence value counts for
// an [OptionSpec] or [PositionalSpec]. The zero value is invalid; use
// [NewArity] or one of the standard constants below.
type Arity struct {
	min uint
	max *uint // nil means unbounded
	set bool  // true for every constructed Arity, false for the zero value
}

// Min returns the minimum number of values, inclusive.
func (a Arity) Min() uint {
	return a.min
}

// Max returns the maximum number of values and whether it is bounded.
func (a Arity) Max() (value uint, bounded bool) {
	if a.max == nil {
		return 0, false
	}
	return *a.max, true
}

// Unbounded returns true if there is no upper bound on the value count.
func (a Arity) Unbounded() bool {
	return a.max == nil
}

// Contains returns true if n lies within [min, max].
func (a Arity) Contains(n uint) bool {
	if n < a.min {
		return false
	}
	return a.max == nil || n <= *a.max
}

// InvalidArity indicates that an [Arity] construction violated its
// invariant: max, when bounded, must be >= min.
type InvalidArity struct {
	// Reason is a human-readable explanation of the violation.
	Reason string
}

var _ error = InvalidArity{}

// Error implements the error interface.
func (err InvalidArity) Error() string {
	return fmt.Sprintf("invalid arity: %s", err.Reason)
}

// NewArity constructs an [Arity] with the given bounds. Pass boundedMax =
// false for an unbounded maximum (equivalent to max = None in spec.md).
//
// Panics with [InvalidArity] if max is bounded and max < min. Use
// [NewArityChecked] to get a returned error instead of a panic.
func NewArity(min uint, max uint, boundedMax bool) Arity {
	a, err := NewArityChecked(min, max, boundedMax)
	if err != nil {
		panic(err)
	}
	return a
}

// NewArityChecked is like [NewArity] but returns [InvalidArity] instead of
// panicking.
func NewArityChecked(min uint, max uint, boundedMax bool) (Arity, error) {
	if !boundedMax {
		return Arity{min: min, max: nil, set: true}, nil
	}
	if max < min {
		return Arity{}, InvalidArity{
			Reason: fmt.Sprintf("max (%d) must be >= min (%d)", max, min),
		}
	}
	return Arity{min: min, max: &max, set: true}, nil
}

// Standard arity constants, named after spec.md §3.
var (
	// ArityZero permits exactly zero values (used by flags).
	ArityZero = NewArity(0, 0, true)

	// ArityZeroOrOne permits zero or one value.
	ArityZeroOrOne = NewArity(0, 1, true)

	// ArityExactlyOne requires exactly one value. This is the default
	// arity for an [OptionSpec] that does not declare one explicitly.
	ArityExactlyOne = NewArity(1, 1, true)

	// ArityZeroOrMore permits any number of values, including none.
	ArityZeroOrMore = NewArity(0, 0, false)

	// ArityOneOrMore requires at least one value and permits any number
	// beyond that.
	ArityOneOrMore = NewArity(1, 0, false)
)
