// SPDX-License-Identifier: MIT
// Package derive: external formula verification.

package derive

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/findiff/stencil"
	"github.com/katalvlaran/findiff/taylor"
)

// Verification is the outcome of checking an externally supplied formula
// candidate against the defining equations
// Σ k_p·s_pᵗ/t! = 0 for t < n and = m at t = n.
type Verification struct {
	// Confirmed is true when the supplied candidate satisfies every
	// defining equation as given (no rescaling is applied or required).
	Confirmed bool

	// FailedOrder is the first order whose equation the candidate
	// violates; −1 when Confirmed.
	FailedOrder int

	// Got is the combined coefficient actually found at FailedOrder
	// (nil when Confirmed).
	Got *big.Rat

	// Result is the confirmed formula completed with its truncation
	// order, or the freshly derived alternative after a failed check.
	// Nil when the candidate is invalid and no alternative exists.
	Result *Result

	// Derived marks Result as a fresh derivation rather than the
	// confirmed candidate.
	Derived bool

	// DeriveFailure holds the derivation error when an alternative was
	// attempted and none exists; nil otherwise.
	DeriveFailure error
}

// Verify checks a supplied (order, offsets, coeffs, multiplier) candidate.
//
// Behavior highlights:
//
//   - Offsets pair positionally with coeffs; pairs are sorted into stencil
//     order and coefficients of duplicated offsets accumulate, so callers
//     may pass the tuple in any arrangement.
//   - A valid candidate is confirmed WITHOUT re-derivation: only its
//     truncation order is computed so the returned Result is complete.
//     The engine's remembered Result is not touched.
//   - An invalid candidate triggers one fresh derivation from (order,
//     stencil) alone; when that succeeds it is attached as the
//     alternative and remembered by the engine like any Derive success.
//   - Validity means the equations hold exactly for the values given;
//     scaled variants of the canonical formula (including a negative
//     multiplier matching its weights) verify as valid.
//
// Errors: ErrBadOrder, ErrBadMultiplier, ErrCoeffCount, stencil.ErrEmpty,
// taylor.ErrNilWeight, ErrInsufficientTerms (truncation of a confirmed
// candidate ran past the term limit).
func (e *Engine) Verify(order int, offsets []int, coeffs []*big.Rat, multiplier *big.Rat) (*Verification, error) {
	// 1) Shape validation, cheapest first.
	if order < 1 {
		return nil, deriveErrorf(opVerify, ErrBadOrder)
	}
	if multiplier == nil || multiplier.Sign() == 0 {
		return nil, deriveErrorf(opVerify, ErrBadMultiplier)
	}
	if len(offsets) == 0 {
		return nil, deriveErrorf(opVerify, stencil.ErrEmpty)
	}
	if len(coeffs) != len(offsets) {
		return nil, deriveErrorf(opVerify, ErrCoeffCount)
	}
	for i, w := range coeffs {
		if w == nil {
			return nil, deriveErrorf(opVerify, fmt.Errorf("coefficient %d: %w", i, taylor.ErrNilWeight))
		}
	}

	// 2) Sort the (offset, coefficient) pairs into stencil order and merge
	// duplicated offsets by summing their coefficients.
	s, k := sortPairs(offsets, coeffs)

	// 3) Defining equations: zeros below the target order…
	for t := 0; t < order; t++ {
		c, err := taylor.Term(k, s, t)
		if err != nil {
			return nil, deriveErrorf(opVerify, err) // unreachable after shape checks
		}
		if c.Sign() != 0 {
			return e.verifyFailed(order, s, t, c)
		}
	}
	// …and the multiplier at the target order.
	c, err := taylor.Term(k, s, order)
	if err != nil {
		return nil, deriveErrorf(opVerify, err)
	}
	if c.Cmp(multiplier) != 0 {
		return e.verifyFailed(order, s, order, c)
	}

	// 4) Confirmed: complete the candidate with its truncation order.
	p, err := truncationOrder(order, s, k, e.maxTerms)
	if err != nil {
		return nil, deriveErrorf(opVerify, err)
	}
	return &Verification{
		Confirmed:   true,
		FailedOrder: -1,
		Result: &Result{
			Derivative:      order,
			Stencil:         s,
			Coeffs:          k,
			Multiplier:      new(big.Rat).Set(multiplier),
			TruncationOrder: p,
		},
	}, nil
}

// verifyFailed records the first violated equation and attempts the
// alternative derivation. Only a successful alternative touches the
// engine's remembered Result.
func (e *Engine) verifyFailed(order int, s stencil.Stencil, failedOrder int, got *big.Rat) (*Verification, error) {
	v := &Verification{
		Confirmed:   false,
		FailedOrder: failedOrder,
		Got:         got,
	}
	alt, err := e.attempt(order, s)
	if err != nil {
		v.DeriveFailure = err
		return v, nil
	}
	e.last = alt
	v.Result = alt.Clone()
	v.Derived = true
	return v, nil
}

// sortPairs orders (offset, coefficient) pairs by offset and accumulates
// coefficients of equal offsets. Returned slices are freshly allocated;
// the stencil construction invariant (ascending, distinct) holds by
// construction.
func sortPairs(offsets []int, coeffs []*big.Rat) (stencil.Stencil, []*big.Rat) {
	idx := make([]int, len(offsets))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return offsets[idx[a]] < offsets[idx[b]] })

	s := make(stencil.Stencil, 0, len(offsets))
	k := make([]*big.Rat, 0, len(coeffs))
	for _, i := range idx {
		if n := len(s); n > 0 && s[n-1] == offsets[i] {
			k[n-1].Add(k[n-1], coeffs[i])
			continue
		}
		s = append(s, offsets[i])
		k = append(k, new(big.Rat).Set(coeffs[i]))
	}
	return s, k
}
