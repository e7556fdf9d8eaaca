// SPDX-License-Identifier: MIT
// Package derive: stencil search strategies.
//
// Design principles:
//   - Strictly monotone shrinking: every retry removes exactly one endpoint
//     offset, so a search over L points runs at most L−order attempts.
//   - Any solver failure on a candidate triggers the next shrink; the
//     distinction between failure kinds only matters once every candidate
//     is exhausted (ErrNoFormula).
//   - All tie-breaking is explicit and reproducible: fewer points removed,
//     then a stencil symmetric around zero, then the forward result.
//   - The solver is injected (solveFunc) so the shrink loops and tie rules
//     are testable with forced failures.

package derive

import (
	"math/big"

	"github.com/katalvlaran/findiff/stencil"
)

// searchOutcome is one direction's first success: the surviving stencil,
// its raw solution and how many points were removed to get there.
type searchOutcome struct {
	used    stencil.Stencil
	coeffs  []*big.Rat
	mult    *big.Rat
	removed int
	ok      bool
}

// searchWith dispatches one search strategy over the injected solver.
// The full stencil is always the first candidate, so a solvable request
// returns with zero removals regardless of strategy.
func searchWith(solveFn solveFunc, order int, s stencil.Stencil, strat Strategy) (searchOutcome, error) {
	switch strat {
	case Forward:
		if out := shrink(solveFn, order, s, true); out.ok {
			return out, nil
		}
		return searchOutcome{}, ErrNoFormula

	case Backward:
		if out := shrink(solveFn, order, s, false); out.ok {
			return out, nil
		}
		return searchOutcome{}, ErrNoFormula

	case Bidirectional:
		fwd := shrink(solveFn, order, s, true)
		bwd := shrink(solveFn, order, s, false)
		switch {
		case !fwd.ok && !bwd.ok:
			return searchOutcome{}, ErrNoFormula
		case fwd.ok && !bwd.ok:
			return fwd, nil
		case bwd.ok && !fwd.ok:
			return bwd, nil
		}
		// Both directions succeeded: fewer removals first.
		if fwd.removed != bwd.removed {
			if fwd.removed < bwd.removed {
				return fwd, nil
			}
			return bwd, nil
		}
		// Equal removals: prefer a stencil symmetric around zero.
		if bwd.used.IsSymmetric() && !fwd.used.IsSymmetric() {
			return bwd, nil
		}
		// Remaining ties resolve to the forward result.
		return fwd, nil

	default:
		return searchOutcome{}, ErrUnknownStrategy
	}
}

// shrink retries the solver on progressively shorter stencils. dropLargest
// selects the forward direction (smallest offset pinned, largest dropped);
// otherwise the smallest offset is dropped. Candidates below order+1
// points cannot carry a formula, so the loop stops there.
func shrink(solveFn solveFunc, order int, s stencil.Stencil, dropLargest bool) searchOutcome {
	cand := s
	removed := 0
	for len(cand) >= order+1 {
		k, m, err := solveFn(order, cand)
		if err == nil {
			return searchOutcome{used: cand, coeffs: k, mult: m, removed: removed, ok: true}
		}
		if dropLargest {
			cand = cand[:len(cand)-1]
		} else {
			cand = cand[1:]
		}
		removed++
	}
	return searchOutcome{}
}

// droppedOffsets lists the requested offsets missing from the surviving
// stencil, ascending. Nil when nothing was dropped, so direct derivations
// and zero-removal searches report identically.
func droppedOffsets(requested, used stencil.Stencil) []int {
	if len(requested) == len(used) {
		return nil
	}
	dropped := make([]int, 0, len(requested)-len(used))
	i := 0
	for _, v := range requested {
		if i < len(used) && used[i] == v {
			i++
			continue
		}
		dropped = append(dropped, v)
	}
	return dropped
}
