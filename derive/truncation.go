// SPDX-License-Identifier: MIT
// Package derive: truncation-order analysis.

package derive

import (
	"math/big"

	"github.com/katalvlaran/findiff/stencil"
	"github.com/katalvlaran/findiff/taylor"
)

// truncationOrder finds the leading error term of an accepted formula: the
// first order q > order at which the combined series coefficient
// Σ k_p·s_p^q/q! is nonzero. The formula's error is then O(h^(q−order)).
//
// The scan covers orders order+1 .. limit−1 (limit = term count, so the
// highest generated order is limit−1). When every scanned coefficient is
// zero the result is ErrInsufficientTerms; the caller may raise the engine
// term limit and rerun the derivation.
//
// Complexity: O(limit·L) rational operations in one Combine pass.
func truncationOrder(order int, s stencil.Stencil, k []*big.Rat, limit int) (int, error) {
	if limit <= order+1 {
		// Not a single order beyond the target fits under the limit.
		return 0, ErrInsufficientTerms
	}

	series, err := taylor.Combine(k, s, limit)
	if err != nil {
		return 0, err // unreachable for solver-produced inputs
	}
	for q := order + 1; q < limit; q++ {
		if series[q].Sign() != 0 {
			return q - order, nil
		}
	}
	return 0, ErrInsufficientTerms
}
