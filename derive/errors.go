// SPDX-License-Identifier: MIT
// Package derive: sentinel error values.
//
// Purpose:
//   - One canonical error value per failure condition, so callers branch
//     with errors.Is instead of string matching.
//   - Messages are prefixed "derive: " and stay terse; operation tags are
//     added at the public entry points (fmt.Errorf("%s: %w", op, err)).
//
// Note:
//   - Input-normalization failures are NOT redeclared here: the stencil
//     package's sentinels (stencil.ErrEmpty, …) pass through unchanged so a
//     caller sees exactly one identity per condition.

package derive

import "errors"

var (
	// ErrBadOrder rejects a derivative order below 1.
	ErrBadOrder = errors.New("derive: derivative order must be positive")

	// ErrBadTermLimit rejects a term limit below 1 (engine construction or
	// SetMaxTerms).
	ErrBadTermLimit = errors.New("derive: term limit must be positive")

	// ErrBadDigits rejects a display digit count outside 1..MaxDigits.
	ErrBadDigits = errors.New("derive: digit count out of range")

	// ErrNoSolution reports a trivial null space: no nonzero weight vector
	// satisfies the elimination constraints at this exact stencil.
	ErrNoSolution = errors.New("derive: stencil admits no solution for this derivative order")

	// ErrDegenerate reports a nonempty null space in which every enumerated
	// basis direction leaves the target-order multiplier at zero.
	ErrDegenerate = errors.New("derive: stencil is degenerate for this derivative order")

	// ErrInsufficientTerms reports that the truncation scan hit the term
	// limit before finding a nonzero error coefficient. Raising the limit
	// via SetMaxTerms may let the same derivation succeed.
	ErrInsufficientTerms = errors.New("derive: term limit reached before a nonzero error term")

	// ErrNoFormula reports that a search strategy exhausted every stencil
	// reduction without a single successful derivation.
	ErrNoFormula = errors.New("derive: no formula exists within the searched stencils")

	// ErrNoFormulaYet reports a Last call before any successful derivation
	// on this engine.
	ErrNoFormulaYet = errors.New("derive: no formula derived yet")

	// ErrUnknownStrategy reports a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("derive: unknown search strategy")

	// ErrCoeffCount reports a verification candidate whose coefficient
	// count does not match its stencil length.
	ErrCoeffCount = errors.New("derive: coefficient count does not match stencil length")

	// ErrBadMultiplier reports a verification candidate with a nil or zero
	// multiplier.
	ErrBadMultiplier = errors.New("derive: multiplier must be nonzero")
)
