package render

import "errors"

// Sentinel errors, compared with errors.Is by callers.
var (
	// ErrNilResult reports a nil formula.
	ErrNilResult = errors.New("render: nil result")

	// ErrBadResult reports a formula whose coefficient count, stencil or
	// multiplier are inconsistent.
	ErrBadResult = errors.New("render: inconsistent result")

	// ErrBadDigits reports a decimal digit count outside [1, 19].
	ErrBadDigits = errors.New("render: digits must be in [1, 19]")
)
