package taylor

import (
	"fmt"
	"math/big"
)

// Row returns the first terms Taylor coefficients of f(x + offset·h) as
// exact rationals: c_t = offsetᵗ/t! for t = 0…terms−1, with 0⁰ = 1.
//
// Inputs: offset - grid offset j; terms - how many coefficients to produce.
// Returns: freshly allocated []*big.Rat of length terms.
// Errors: ErrBadTermCount when terms < 1.
// Determinism: pure; identical inputs yield identical coefficients.
func Row(offset, terms int) ([]*big.Rat, error) {
	if terms < 1 {
		return nil, fmt.Errorf("Row(%d, %d): %w", offset, terms, ErrBadTermCount)
	}

	row := make([]*big.Rat, terms)
	// c₀ = 1 for every offset (0⁰ = 1).
	row[0] = big.NewRat(1, 1)
	// c_t = c_{t−1}·j/t keeps every step a single reduced multiply.
	for t := 1; t < terms; t++ {
		row[t] = new(big.Rat).Mul(row[t-1], big.NewRat(int64(offset), int64(t)))
	}
	return row, nil
}

// Combine returns the termwise sum Σ_p weights[p]·Row(offsets[p], terms):
// the Taylor series of the weighted sample combination
// Σ_p weights[p]·f(x + offsets[p]·h), coefficient of hᵗ·f⁽ᵗ⁾(x) at index t.
//
// Inputs: parallel weights/offsets slices and a term count.
// Returns: freshly allocated []*big.Rat of length terms; inputs untouched.
// Errors: ErrBadTermCount, ErrLengthMismatch, ErrNilWeight.
// Complexity: O(terms·L) rational operations.
func Combine(weights []*big.Rat, offsets []int, terms int) ([]*big.Rat, error) {
	if terms < 1 {
		return nil, fmt.Errorf("Combine(%d): %w", terms, ErrBadTermCount)
	}
	if err := checkWeights(weights, offsets); err != nil {
		return nil, fmt.Errorf("Combine: %w", err)
	}

	// 1) Zero-initialized accumulator.
	sum := make([]*big.Rat, terms)
	for t := range sum {
		sum[t] = new(big.Rat)
	}

	// 2) Walk each offset's row incrementally, scaled by its weight.
	for p, j := range offsets {
		cur := new(big.Rat).Set(weights[p]) // weight·c₀
		for t := 0; t < terms; t++ {
			sum[t].Add(sum[t], cur)
			if t+1 < terms {
				cur.Mul(cur, big.NewRat(int64(j), int64(t+1)))
			}
		}
	}
	return sum, nil
}

// Term returns the single combined coefficient at one order:
// Σ_p weights[p]·offsets[p]^order/order!.
//
// Errors: ErrBadTermCount when order < 0, ErrLengthMismatch, ErrNilWeight.
// Complexity: O(order·L), Memory O(1) beyond the result.
func Term(weights []*big.Rat, offsets []int, order int) (*big.Rat, error) {
	if order < 0 {
		return nil, fmt.Errorf("Term(%d): %w", order, ErrBadTermCount)
	}
	if err := checkWeights(weights, offsets); err != nil {
		return nil, fmt.Errorf("Term: %w", err)
	}

	sum := new(big.Rat)
	for p, j := range offsets {
		// weight·jᵗ/t! built by the same incremental recurrence as Row.
		cur := new(big.Rat).Set(weights[p])
		for t := 1; t <= order; t++ {
			cur.Mul(cur, big.NewRat(int64(j), int64(t)))
		}
		sum.Add(sum, cur)
	}
	return sum, nil
}

// checkWeights validates the parallel weight/offset slices shared by
// Combine and Term. Plain sentinels; callers add the operation tag.
func checkWeights(weights []*big.Rat, offsets []int) error {
	if len(weights) != len(offsets) {
		return ErrLengthMismatch
	}
	for p, w := range weights {
		if w == nil {
			return fmt.Errorf("weight %d: %w", p, ErrNilWeight)
		}
	}
	return nil
}
