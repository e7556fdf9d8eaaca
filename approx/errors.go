package approx

import "errors"

// Sentinel errors, compared with errors.Is by callers.
var (
	// ErrNilResult reports a nil formula.
	ErrNilResult = errors.New("approx: nil result")

	// ErrBadResult reports a formula whose coefficient count, stencil or
	// multiplier are inconsistent (hand-built rather than derived).
	ErrBadResult = errors.New("approx: inconsistent result")

	// ErrBadStep reports a non-finite or non-positive default step.
	ErrBadStep = errors.New("approx: step must be positive and finite")

	// ErrBadDigits reports a decimal digit count outside [1, 19].
	ErrBadDigits = errors.New("approx: digits must be in [1, 19]")
)
