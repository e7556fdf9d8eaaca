package taylor

import "errors"

// Sentinel errors, compared with errors.Is by callers.
var (
	// ErrBadTermCount reports a term count < 1 or a negative order.
	ErrBadTermCount = errors.New("taylor: term count must be positive")

	// ErrLengthMismatch reports weight/offset slices of different lengths.
	ErrLengthMismatch = errors.New("taylor: weights and offsets differ in length")

	// ErrNilWeight reports a nil *big.Rat weight entry.
	ErrNilWeight = errors.New("taylor: nil weight")
)
