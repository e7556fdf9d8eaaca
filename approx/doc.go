// Package approx turns derived formulas into callable floating-point
// approximations. It is the only bridge between the exact rational world
// of derive and float64 numerics.
//
// What:
//
//   - Exact compiles a Result into an Evaluator whose weights k_p/m are
//     converted to float64 at full precision.
//   - Rounded does the same through govalues/decimal at a fixed number of
//     decimal digits, making precision loss observable on purpose.
//   - Formula exports a Result as a gonum diff/fd Formula so it can drive
//     fd.Derivative directly.
//
// Why:
//
//   - Derivation stays exact end to end; rounding is a presentation-time
//     decision, so it lives here rather than inside the solver.
//   - The gonum export keeps the module interoperable with the ecosystem's
//     standard numerical differentiation entry point.
//
// Evaluators perform no validation per call: a zero or negative step h
// yields the same overflow/NaN behavior the underlying float math gives.
// All validation happens once, at compile time of the evaluator.
//
// Errors:
//
//   - ErrNilResult: no formula was supplied.
//   - ErrBadResult: the supplied formula is structurally inconsistent.
//   - ErrBadStep: Formula called with a non-finite or non-positive step.
//   - ErrBadDigits: Rounded called with digits outside [1, 19].
package approx
