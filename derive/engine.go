// SPDX-License-Identifier: MIT
// Package derive: engine facade.
//
// Purpose:
//   - Thin, well-documented entry points over the solver/search/truncation
//     kernels; every method validates, delegates, tags errors with its
//     operation name and manages the one remembered Result.
//
// Determinism & Policy:
//   - Facades never change kernel loop orders or numeric policy.
//   - The remembered Result changes only on a successful derivation; failed
//     calls leave it exactly as it was.

package derive

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/findiff/stencil"
	"github.com/katalvlaran/findiff/taylor"
)

// Operation tags used when wrapping sentinel errors.
const (
	opDerive      = "Derive"
	opSearch      = "Search"
	opLast        = "Last"
	opTaylorRow   = "TaylorRow"
	opCombine     = "CombineSeries"
	opSetMaxTerms = "SetMaxTerms"
	opSetDigits   = "SetDigits"
	opVerify      = "Verify"
)

// deriveErrorf tags an underlying sentinel with the public operation name.
func deriveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Engine is one derivation session: configuration plus the last successful
// Result. The zero value is not usable; construct with New.
//
// An Engine is intentionally unsynchronized (see package doc): embedders
// running concurrent sessions create one Engine each.
type Engine struct {
	maxTerms int
	digits   int
	last     *Result
}

// New returns an Engine with the given options applied over the defaults
// (DefaultMaxTerms Taylor terms, DefaultDigits display digits).
func New(opts ...Option) *Engine {
	o := gatherOptions(opts...)
	return &Engine{maxTerms: o.MaxTerms, digits: o.Digits}
}

// Derive produces the canonical finite-difference formula for the order-th
// derivative on the given offsets.
//
// Implementation:
//
//	1) Validate the order, normalize the offsets into a stencil.
//	2) Solve the elimination system (solver.go).
//	3) Determine the truncation order of the leading error term.
//	4) Remember the Result and hand back an independent copy.
//
// Errors: ErrBadOrder, stencil.ErrEmpty, ErrNoSolution, ErrDegenerate,
// ErrInsufficientTerms, each wrapped with the "Derive" tag.
func (e *Engine) Derive(order int, offsets ...int) (*Result, error) {
	res, err := e.attempt(order, offsets)
	if err != nil {
		return nil, deriveErrorf(opDerive, err)
	}
	e.last = res
	return res.Clone(), nil
}

// Search behaves like Derive but recovers from solver failure by shrinking
// the stencil according to the strategy. The returned Result reports the
// surviving stencil and, in Dropped, exactly which requested offsets were
// removed. A request the solver handles directly comes back with zero
// removals, identical to Derive.
//
// Errors: ErrBadOrder, ErrUnknownStrategy, stencil.ErrEmpty, ErrNoFormula
// (every reduction exhausted), ErrInsufficientTerms.
func (e *Engine) Search(strat Strategy, order int, offsets ...int) (*Result, error) {
	if order < 1 {
		return nil, deriveErrorf(opSearch, ErrBadOrder)
	}
	requested, err := stencil.New(offsets...)
	if err != nil {
		return nil, deriveErrorf(opSearch, err)
	}

	out, err := searchWith(solve, order, requested, strat)
	if err != nil {
		return nil, deriveErrorf(opSearch, err)
	}

	p, err := truncationOrder(order, out.used, out.coeffs, e.maxTerms)
	if err != nil {
		return nil, deriveErrorf(opSearch, err)
	}

	res := &Result{
		Derivative:      order,
		Stencil:         out.used.Clone(),
		Coeffs:          out.coeffs,
		Multiplier:      out.mult,
		TruncationOrder: p,
		Dropped:         droppedOffsets(requested, out.used),
	}
	e.last = res
	return res.Clone(), nil
}

// Last returns a copy of the most recent successful Result.
// Errors: ErrNoFormulaYet before the first success on this engine.
func (e *Engine) Last() (*Result, error) {
	if e.last == nil {
		return nil, deriveErrorf(opLast, ErrNoFormulaYet)
	}
	return e.last.Clone(), nil
}

// TaylorRow exposes raw Taylor coefficients jᵗ/t! for teaching and
// inspection, bounded by the engine term limit.
// Errors: taylor.ErrBadTermCount (terms < 1), ErrBadTermLimit (terms
// above MaxTerms).
func (e *Engine) TaylorRow(offset, terms int) ([]*big.Rat, error) {
	if terms > e.maxTerms {
		return nil, deriveErrorf(opTaylorRow, ErrBadTermLimit)
	}
	row, err := taylor.Row(offset, terms)
	if err != nil {
		return nil, deriveErrorf(opTaylorRow, err)
	}
	return row, nil
}

// CombineSeries exposes the weighted series combination for teaching and
// inspection, bounded by the engine term limit. Offsets are taken as
// given (no normalization): the caller controls the pairing with weights.
// Errors: taylor.ErrBadTermCount, taylor.ErrLengthMismatch,
// taylor.ErrNilWeight, ErrBadTermLimit.
func (e *Engine) CombineSeries(weights []*big.Rat, offsets []int, terms int) ([]*big.Rat, error) {
	if terms > e.maxTerms {
		return nil, deriveErrorf(opCombine, ErrBadTermLimit)
	}
	sum, err := taylor.Combine(weights, offsets, terms)
	if err != nil {
		return nil, deriveErrorf(opCombine, err)
	}
	return sum, nil
}

// MaxTerms reports the current Taylor term limit.
func (e *Engine) MaxTerms() int { return e.maxTerms }

// SetMaxTerms reconfigures the Taylor term limit at runtime.
// Errors: ErrBadTermLimit when limit < 1.
func (e *Engine) SetMaxTerms(limit int) error {
	if limit < 1 {
		return deriveErrorf(opSetMaxTerms, ErrBadTermLimit)
	}
	e.maxTerms = limit
	return nil
}

// Digits reports the display digit count used by presentation layers.
func (e *Engine) Digits() int { return e.digits }

// SetDigits reconfigures the display digit count. The solver is exact and
// unaffected; only rounded output changes.
// Errors: ErrBadDigits outside 1..MaxDigits.
func (e *Engine) SetDigits(digits int) error {
	if digits < 1 || digits > MaxDigits {
		return deriveErrorf(opSetDigits, ErrBadDigits)
	}
	e.digits = digits
	return nil
}

// attempt runs the untagged derive pipeline without touching the
// remembered Result: validate → normalize → solve → truncation.
func (e *Engine) attempt(order int, offsets []int) (*Result, error) {
	if order < 1 {
		return nil, ErrBadOrder
	}
	s, err := stencil.New(offsets...)
	if err != nil {
		return nil, err
	}
	k, m, err := solve(order, s)
	if err != nil {
		return nil, err
	}
	p, err := truncationOrder(order, s, k, e.maxTerms)
	if err != nil {
		return nil, err
	}
	return &Result{
		Derivative:      order,
		Stencil:         s,
		Coeffs:          k,
		Multiplier:      m,
		TruncationOrder: p,
	}, nil
}
