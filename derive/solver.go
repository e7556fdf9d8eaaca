// SPDX-License-Identifier: MIT
// Package derive: exact elimination solver kernels.
//
// Purpose:
//   - Assemble the rational elimination system for (order, stencil).
//   - Reduce it to reduced row-echelon form with exact Gauss–Jordan steps.
//   - Enumerate null-space basis vectors deterministically and pick the
//     canonical formula.
//
// Determinism & Policy:
//   - Column sweep ascending; pivot = first nonzero row; free columns
//     enumerated ascending; first basis vector with nonzero target-order
//     multiplier wins. No randomness, no floating point anywhere.
//   - Canonical form: multiplier positive, weights scaled to coprime
//     integers (multiplier scaled identically).

package derive

import (
	"math/big"

	"github.com/katalvlaran/findiff/stencil"
	"github.com/katalvlaran/findiff/taylor"
)

// solveFunc is the solver signature the search strategies retry against.
// Tests substitute failing stand-ins to exercise shrink paths that the
// exact solver, which only fails when L ≤ order, cannot reach.
type solveFunc func(order int, s stencil.Stencil) ([]*big.Rat, *big.Rat, error)

// solve derives the canonical weight vector and multiplier for the given
// derivative order on a normalized stencil.
//
// Implementation:
//
//	Stage 1 - build one elimination row per order t < L, t ≠ order.
//	Stage 2 - Gauss–Jordan reduction to RREF, collecting pivot columns.
//	Stage 3 - d = L − rank; d = 0 → ErrNoSolution.
//	Stage 4 - enumerate basis vectors (free column = 1, others 0) in
//	          ascending column order; accept the first whose multiplier
//	          Σ k_p·s_pᵒʳᵈᵉʳ/order! is nonzero; none → ErrDegenerate.
//	Stage 5 - sign-normalize (multiplier > 0) and reduce to canonical form.
//
// Pure: identical inputs always produce identical output.
func solve(order int, s stencil.Stencil) ([]*big.Rat, *big.Rat, error) {
	points := len(s)

	// Stage 1 - elimination rows.
	rows := eliminationRows(order, s)

	// Stage 2 - exact RREF.
	pivots := reduce(rows, points)

	// Stage 3 - trivial null space means no formula at this stencil.
	if len(pivots) == points {
		return nil, nil, ErrNoSolution
	}

	// Stage 4 - deterministic basis enumeration.
	for _, f := range freeColumns(pivots, points) {
		k := basisVector(rows, pivots, points, f)
		m, err := taylor.Term(k, s, order)
		if err != nil {
			return nil, nil, err // unreachable once shapes are built above
		}
		if m.Sign() != 0 {
			// Stage 5 - canonical scaling.
			canonicalize(k, m)
			return k, m, nil
		}
	}
	return nil, nil, ErrDegenerate
}

// eliminationRows returns the system rows: for every Taylor order t < L
// except the target order, the row holds s_pᵗ/t! per stencil column. The
// target order is skipped so its coefficient survives as the multiplier;
// every other order the stencil can resolve is driven to zero, which is
// what maximizes the accuracy of the accepted formula.
//
// Each returned rational is freshly allocated and owned by exactly one row,
// so reduce may mutate rows in place.
func eliminationRows(order int, s stencil.Stencil) [][]*big.Rat {
	points := len(s)
	cols := make([][]*big.Rat, points)
	for p, j := range s {
		cols[p], _ = taylor.Row(j, points) // points ≥ 1 by stencil invariant; error not expected
	}

	rows := make([][]*big.Rat, 0, points)
	for t := 0; t < points; t++ {
		if t == order {
			continue
		}
		row := make([]*big.Rat, points)
		for p := 0; p < points; p++ {
			row[p] = cols[p][t]
		}
		rows = append(rows, row)
	}
	return rows
}

// reduce performs exact Gauss–Jordan elimination in place and returns the
// pivot columns in ascending order. After return every pivot column holds
// 1 in its pivot row and 0 elsewhere (reduced row-echelon form).
//
// Complexity: O(rows·cols²) rational operations.
func reduce(rows [][]*big.Rat, cols int) []int {
	pivots := make([]int, 0, len(rows))
	next := 0 // next pivot row slot

	for col := 0; col < cols && next < len(rows); col++ {
		// 1) First nonzero row at or below the slot becomes the pivot row.
		pivot := -1
		for r := next; r < len(rows); r++ {
			if rows[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue // free column
		}
		rows[next], rows[pivot] = rows[pivot], rows[next]

		// 2) Scale the pivot row so the pivot entry is exactly 1.
		inv := new(big.Rat).Inv(rows[next][col])
		for c := col; c < cols; c++ {
			rows[next][c].Mul(rows[next][c], inv)
		}

		// 3) Clear the column from every other row.
		for r := 0; r < len(rows); r++ {
			if r == next || rows[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(rows[r][col])
			for c := col; c < cols; c++ {
				rows[r][c].Sub(rows[r][c], new(big.Rat).Mul(factor, rows[next][c]))
			}
		}

		pivots = append(pivots, col)
		next++
	}
	return pivots
}

// freeColumns lists the columns not claimed as pivots, ascending.
func freeColumns(pivots []int, cols int) []int {
	free := make([]int, 0, cols-len(pivots))
	i := 0
	for c := 0; c < cols; c++ {
		if i < len(pivots) && pivots[i] == c {
			i++
			continue
		}
		free = append(free, c)
	}
	return free
}

// basisVector materializes the null-space basis vector for one free column:
// the free variable is 1, every other free variable 0, and each pivot
// variable balances its row (x_pivot = −row[free]).
func basisVector(rows [][]*big.Rat, pivots []int, cols, free int) []*big.Rat {
	k := make([]*big.Rat, cols)
	for c := range k {
		k[c] = new(big.Rat)
	}
	k[free].SetInt64(1)
	for r, pc := range pivots {
		k[pc].Neg(rows[r][free])
	}
	return k
}

// canonicalize rewrites (k, m) in place into the canonical representative
// of its scaling class: m > 0, all weights integral with content 1 (their
// absolute values share no common divisor), m scaled by the same factor.
func canonicalize(k []*big.Rat, m *big.Rat) {
	// 1) Positive multiplier.
	if m.Sign() < 0 {
		m.Neg(m)
		for _, w := range k {
			w.Neg(w)
		}
	}

	// 2) Common denominator of the weights.
	lcm := big.NewInt(1)
	for _, w := range k {
		lcm = lcmInt(lcm, w.Denom())
	}

	// 3) Integer content of the scaled weights. At least one weight is
	// nonzero (the free variable is 1), so the content ends positive.
	content := new(big.Int)
	tmp := new(big.Int)
	for _, w := range k {
		if w.Sign() == 0 {
			continue
		}
		tmp.Quo(lcm, w.Denom()) // exact by construction of lcm
		tmp.Mul(tmp, w.Num())
		tmp.Abs(tmp)
		if content.Sign() == 0 {
			content.Set(tmp)
			continue
		}
		content = new(big.Int).GCD(nil, nil, content, tmp)
	}

	// 4) One shared scaling factor lcm/content.
	scale := new(big.Rat).SetFrac(lcm, content)
	for _, w := range k {
		w.Mul(w, scale)
	}
	m.Mul(m, scale)
}

// lcmInt returns lcm(a, b) for positive a, b.
func lcmInt(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	out := new(big.Int).Quo(a, g)
	return out.Mul(out, b)
}
