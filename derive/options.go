// SPDX-License-Identifier: MIT
// Package derive: engine construction options.
//
// Purpose:
//   - Single source of truth for every tunable default.
//   - Functional options for New; runtime reconfiguration goes through the
//     checked SetMaxTerms/SetDigits methods instead.
//
// Policy:
//   - Option constructors panic on values that are wrong at the call site
//     (programmer error); the runtime setters return sentinel errors for
//     user-driven values (CLI input).

package derive

const (
	// DefaultMaxTerms is the largest Taylor term count the engine generates
	// unless reconfigured: coefficient orders 0..DefaultMaxTerms−1.
	DefaultMaxTerms = 30

	// DefaultDigits is the decimal digit count presentation layers round
	// coefficients to. The exact solver itself never rounds.
	DefaultDigits = 16

	// MaxDigits caps SetDigits/WithDigits: the widest decimal coefficient
	// the rounded evaluator representation carries.
	MaxDigits = 19
)

// Panic messages for misused option constructors.
const (
	panicBadTermLimit = "derive: WithMaxTerms requires a positive limit"
	panicBadDigits    = "derive: WithDigits requires 1..MaxDigits"
)

// Options bundles the engine configuration. Zero value is NOT usable;
// obtain one via DefaultOptions or let New assemble it.
type Options struct {
	// MaxTerms bounds every Taylor generation and truncation scan.
	MaxTerms int
	// Digits is the display rounding precision consumed by the approx and
	// render layers through Engine.Digits.
	Digits int
}

// DefaultOptions returns the canonical defaults.
func DefaultOptions() Options {
	return Options{MaxTerms: DefaultMaxTerms, Digits: DefaultDigits}
}

// Option mutates Options during New.
type Option func(*Options)

// WithMaxTerms sets the Taylor term limit. Panics if limit < 1.
func WithMaxTerms(limit int) Option {
	if limit < 1 {
		panic(panicBadTermLimit)
	}
	return func(o *Options) { o.MaxTerms = limit }
}

// WithDigits sets the display digit count. Panics outside 1..MaxDigits.
func WithDigits(digits int) Option {
	if digits < 1 || digits > MaxDigits {
		panic(panicBadDigits)
	}
	return func(o *Options) { o.Digits = digits }
}

// gatherOptions folds opts over the defaults in call order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
