// SPDX-License-Identifier: MIT
// Package derive: public result and strategy types.

package derive

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/findiff/stencil"
)

// Strategy selects how Search shrinks a stencil that admits no formula.
type Strategy int

const (
	// Forward fixes the smallest offset and repeatedly drops the largest.
	Forward Strategy = iota
	// Backward fixes the largest offset and repeatedly drops the smallest.
	Backward
	// Bidirectional runs both directions and keeps the better outcome:
	// fewer points dropped wins; on a tie a symmetric-around-zero stencil
	// is preferred; a full tie resolves to the forward result.
	Bidirectional
)

// String implements fmt.Stringer for log and error texts.
func (st Strategy) String() string {
	switch st {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Bidirectional:
		return "bidirectional"
	default:
		return "unknown"
	}
}

// Result is one successfully derived finite-difference formula:
//
//	Σ_p Coeffs[p]·f(x + Stencil[p]·h) = Multiplier·hⁿ·f⁽ⁿ⁾(x) + O(hⁿ⁺ᵖ)
//
// with n = Derivative and p = TruncationOrder. Coeffs are coprime integers
// (held as rationals), Multiplier is positive, and Stencil is the point set
// actually used. Dropped lists the requested offsets search had to remove,
// in ascending order, and stays empty for direct derivations.
//
// Results handed out by an Engine are deep copies; mutating one never
// affects the engine's remembered state.
type Result struct {
	Derivative      int
	Stencil         stencil.Stencil
	Coeffs          []*big.Rat
	Multiplier      *big.Rat
	TruncationOrder int
	Dropped         []int
}

// Clone returns an independent deep copy.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	c := &Result{
		Derivative:      r.Derivative,
		Stencil:         r.Stencil.Clone(),
		Coeffs:          cloneRats(r.Coeffs),
		Multiplier:      new(big.Rat).Set(r.Multiplier),
		TruncationOrder: r.TruncationOrder,
	}
	if r.Dropped != nil {
		c.Dropped = append([]int(nil), r.Dropped...)
	}
	return c
}

// String renders a compact diagnostic form, e.g.
// "n=2 {-1,0,1} k=[1 -2 1] m=1 O(h^2)". Presentation-grade formatting
// lives in the render package.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "n=%d %s k=[", r.Derivative, r.Stencil)
	for i, k := range r.Coeffs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k.RatString())
	}
	fmt.Fprintf(&b, "] m=%s O(h^%d)", r.Multiplier.RatString(), r.TruncationOrder)
	if len(r.Dropped) > 0 {
		fmt.Fprintf(&b, " dropped=%v", r.Dropped)
	}
	return b.String()
}

// cloneRats deep-copies a rational slice.
func cloneRats(rs []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(rs))
	for i, r := range rs {
		out[i] = new(big.Rat).Set(r)
	}
	return out
}
