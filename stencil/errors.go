package stencil

import "errors"

// Sentinel errors for stencil construction and parsing.
//
// Naming/style notes:
//   - Messages are prefixed "stencil: " so they read correctly when wrapped
//     by caller operation tags (fmt.Errorf("Parse: %w", ErrSyntax)).
//   - Callers must compare with errors.Is, never by string.
var (
	// ErrEmpty reports that construction was given no offsets at all
	// (or Parse found none in its input).
	ErrEmpty = errors.New("stencil: empty stencil")

	// ErrBadRange reports FromRange(lo, hi) with lo > hi.
	ErrBadRange = errors.New("stencil: range lower bound exceeds upper bound")

	// ErrSyntax reports Parse input that is neither an integer range
	// ("lo:hi") nor a list of integers.
	ErrSyntax = errors.New("stencil: malformed stencil text")
)
