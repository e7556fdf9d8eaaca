// SPDX-License-Identifier: MIT
// Package derive: whitebox kernel tests covering RREF mechanics, basis
// enumeration, canonical scaling and the truncation scan.

package derive

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/findiff/stencil"
)

// rat is a test shorthand for big.NewRat.
func rat(p, q int64) *big.Rat { return big.NewRat(p, q) }

// ratRow flattens rationals to "p/q" strings for readable expectations.
func ratRow(rs []*big.Rat) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.RatString()
	}
	return out
}

// mustStencil builds a normalized stencil or fails the test.
func mustStencil(t *testing.T, offsets ...int) stencil.Stencil {
	t.Helper()
	s, err := stencil.New(offsets...)
	require.NoError(t, err)
	return s
}

// TestSolve_ReferenceFormulas pins the canonical weights and multipliers of
// the textbook formulas the solver must reproduce exactly.
func TestSolve_ReferenceFormulas(t *testing.T) {
	cases := []struct {
		name    string
		order   int
		offsets []int
		wantK   []string
		wantM   string
	}{
		{"central first", 1, []int{-1, 0, 1}, []string{"-1", "0", "1"}, "2"},
		{"central second", 2, []int{-1, 0, 1}, []string{"1", "-2", "1"}, "1"},
		{"forward three-point", 1, []int{0, 1, 2}, []string{"-3", "4", "-1"}, "2"},
		{"backward three-point", 1, []int{-2, -1, 0}, []string{"1", "-4", "3"}, "2"},
		{"five-point first", 1, []int{-2, -1, 0, 1, 2}, []string{"1", "-8", "0", "8", "-1"}, "12"},
		{"central third, no origin", 3, []int{-2, -1, 1, 2}, []string{"-1", "2", "-2", "1"}, "2"},
		{"plain forward", 1, []int{0, 1}, []string{"-1", "1"}, "1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, m, err := solve(tc.order, mustStencil(t, tc.offsets...))
			require.NoError(t, err)
			assert.Equal(t, tc.wantK, ratRow(k), "weights")
			assert.Equal(t, tc.wantM, m.RatString(), "multiplier")
		})
	}
}

// TestSolve_NoSolution covers the trivial-null-space boundary: a stencil of
// L points cannot carry a derivative of order ≥ L.
func TestSolve_NoSolution(t *testing.T) {
	for _, tc := range []struct {
		order   int
		offsets []int
	}{
		{1, []int{0}},
		{2, []int{0, 1}},
		{3, []int{-1, 0, 1}},
		{5, []int{-1, 0, 1}},
	} {
		_, _, err := solve(tc.order, mustStencil(t, tc.offsets...))
		assert.ErrorIs(t, err, ErrNoSolution, "order %d on %v", tc.order, tc.offsets)
	}
}

// TestSolve_Deterministic reruns the same derivation and demands
// bit-identical output.
func TestSolve_Deterministic(t *testing.T) {
	s := mustStencil(t, -2, -1, 0, 1, 2)
	k1, m1, err := solve(2, s)
	require.NoError(t, err)
	k2, m2, err := solve(2, s)
	require.NoError(t, err)

	assert.Equal(t, ratRow(k1), ratRow(k2))
	assert.Zero(t, m1.Cmp(m2))
}

// TestReduce_PivotBookkeeping drives the RREF kernel over a rank-deficient
// system and checks pivot/free column accounting plus the basis vector.
func TestReduce_PivotBookkeeping(t *testing.T) {
	rows := [][]*big.Rat{
		{rat(1, 1), rat(1, 1)},
		{rat(1, 1), rat(1, 1)},
	}
	pivots := reduce(rows, 2)
	assert.Equal(t, []int{0}, pivots, "duplicate rows collapse to one pivot")
	assert.Equal(t, []int{1}, freeColumns(pivots, 2))

	k := basisVector(rows, pivots, 2, 1)
	assert.Equal(t, []string{"-1", "1"}, ratRow(k))
}

// TestReduce_InteriorFreeColumn exercises the case where the singular
// leading minor pushes the free column into the interior: offsets {-1,1,2}
// for the first derivative eliminate orders 0 and 2, and columns -1 and 1
// are linearly dependent there.
func TestReduce_InteriorFreeColumn(t *testing.T) {
	k, m, err := solve(1, mustStencil(t, -1, 1, 2))
	require.NoError(t, err)

	// The surviving direction is the plain central difference; the third
	// point carries weight zero.
	assert.Equal(t, []string{"-1", "1", "0"}, ratRow(k))
	assert.Equal(t, "2", m.RatString())
}

// TestCanonicalize covers sign flipping and the shared scaling factor.
func TestCanonicalize(t *testing.T) {
	// Fractional weights scale up by the common denominator.
	k := []*big.Rat{rat(1, 2), rat(-1, 1), rat(1, 2)}
	m := rat(1, 4)
	canonicalize(k, m)
	assert.Equal(t, []string{"1", "-2", "1"}, ratRow(k))
	assert.Equal(t, "1/2", m.RatString())

	// Common integer content divides out; a negative multiplier flips all.
	k = []*big.Rat{rat(2, 1), rat(0, 1), rat(-2, 1)}
	m = rat(-4, 1)
	canonicalize(k, m)
	assert.Equal(t, []string{"-1", "0", "1"}, ratRow(k))
	assert.Equal(t, "2", m.RatString())
}

// TestLcmInt pins the helper on coprime and overlapping factors.
func TestLcmInt(t *testing.T) {
	assert.Equal(t, int64(12), lcmInt(big.NewInt(4), big.NewInt(6)).Int64())
	assert.Equal(t, int64(35), lcmInt(big.NewInt(5), big.NewInt(7)).Int64())
	assert.Equal(t, int64(9), lcmInt(big.NewInt(1), big.NewInt(9)).Int64())
}

// TestTruncationOrder walks the limit boundary for the central first
// derivative: its first error term sits at order 3, so term counts of 4
// and above succeed and 3 must fail.
func TestTruncationOrder(t *testing.T) {
	s := mustStencil(t, -1, 0, 1)
	k, _, err := solve(1, s)
	require.NoError(t, err)

	p, err := truncationOrder(1, s, k, DefaultMaxTerms)
	require.NoError(t, err)
	assert.Equal(t, 2, p, "central difference is second-order accurate")

	p, err = truncationOrder(1, s, k, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, p, "order 3 is the last one a 4-term limit generates")

	_, err = truncationOrder(1, s, k, 3)
	assert.ErrorIs(t, err, ErrInsufficientTerms)

	_, err = truncationOrder(1, s, k, 1)
	assert.ErrorIs(t, err, ErrInsufficientTerms, "limit below the target order")
}
