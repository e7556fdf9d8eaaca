// Package findiff derives finite-difference differentiation formulas in
// exact rational arithmetic: pick a derivative order and a set of grid
// offsets, get back coprime integer weights, a common denominator and
// the order of the truncation error.
//
// 🚀 What is findiff?
//
//	A compact derivation engine that turns (order, stencil) requests into formulas:
//		• Stencils: parse, normalize and inspect grid offset sets
//		• Taylor rows: exact rational expansions of f(x + j·h)
//		• Derivation: Gauss-Jordan elimination over big.Rat with a
//		  canonical coprime-integer result
//		• Search: forward/backward/bidirectional stencil shrinking when
//		  the requested points admit no formula
//		• Verification: check hand-written candidates, derive alternatives
//		• Evaluation: float64 evaluators, rounded-decimal variants and
//		  a gonum diff/fd export
//		• Rendering: text, LaTeX, JSON and decimal weight tables
//
// ✨ Why findiff?
//
//   - Exact first: every derivation step runs on big.Rat; floats appear
//     only at the evaluation boundary
//   - Deterministic: identical requests yield bit-identical formulas
//   - Small API: one Engine, a handful of value types, sentinel errors
//   - Interoperable: results plug straight into gonum's fd.Derivative
//
// Under the hood, everything is organized under focused subpackages:
//
//	stencil/ - grid offset sets: construction, parsing, symmetry checks
//	taylor/  - exact Taylor coefficient rows and weighted combinations
//	derive/  - elimination solver, truncation analysis, search, verification
//	approx/  - float64 evaluators and the gonum diff/fd bridge
//	render/  - text, LaTeX, JSON and decimal presentation
//	cmd/     - the findiff CLI and its interactive shell
//
// Quick example:
//
//	f''(x) ≈ [1·f(x-h) - 2·f(x) + 1·f(x+h)] / (1·h^2) + O(h^2)
//
//	is derived from the stencil {-1,0,1} in exact arithmetic, then
//	compiled, rendered or exported as needed.
//
// Dive into README-style walkthroughs under examples/ for a heat-equation
// stencil, boundary accuracy ladders and rounding error budgets.
//
//	go get github.com/katalvlaran/findiff
package findiff
