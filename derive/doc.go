// Package derive builds exact finite-difference formulas: given a derivative
// order n and a stencil of integer grid offsets, it produces the unique
// canonical weight vector k and positive multiplier m with
//
//	Σ_p k_p·f(x + s_p·h) = m·hⁿ·f⁽ⁿ⁾(x) + O(hⁿ⁺ᵖ)
//
// entirely in rational arithmetic, together with the formal truncation
// order p of the leading error term.
//
// What:
//
//   - Engine: a session object owning the configuration (term limit, display
//     digits) and the last successfully derived formula. One engine per
//     session; no package-level mutable state.
//   - Derive: normalize → eliminate → analyze truncation → remember.
//   - Search: forward/backward/bidirectional stencil shrinking when the
//     requested point set admits no formula, reporting exactly which offsets
//     were dropped.
//   - Verify: check an externally supplied (n, stencil, k, m) against the
//     defining equations; on mismatch derive a fresh alternative.
//   - TaylorRow/CombineSeries: term-limited inspection passthroughs for
//     teaching use.
//
// How the solver works:
//
//	For a stencil of length L the combined series coefficient at order t is
//	Σ_p k_p·s_pᵗ/t!. The solver assembles one elimination row for every
//	order t < L except the target n (the largest system the stencil can
//	satisfy, which is what makes the resulting formula the most accurate
//	one available), reduces it to row-echelon form by exact Gauss–Jordan
//	elimination, and enumerates null-space basis vectors in ascending free
//	column order. The first basis vector whose target-order sum
//	m = Σ k_p·s_pⁿ/n! is nonzero is accepted, sign-normalized so m > 0,
//	and scaled to the canonical form in which the weights are coprime
//	integers. With distinct integer offsets the null space has dimension
//	L − rank ∈ {0, 1}: dimension 0 (L ≤ n) means no formula at this
//	stencil; the enumeration order still fixes behavior deterministically
//	should a wider null space ever arise.
//
// Determinism:
//
//   - Identical inputs yield bit-identical (k, m, truncation order) across
//     calls, engines and processes: loop orders are fixed, pivoting always
//     picks the first nonzero row, ties in bidirectional search resolve by
//     documented rules (fewer points dropped, then symmetric-around-zero,
//     then forward).
//
// Errors (all distinct under errors.Is):
//
//   - ErrBadOrder, ErrBadTermLimit, ErrBadDigits: configuration rejects.
//   - stencil.ErrEmpty and friends propagate from input normalization.
//   - ErrNoSolution: trivial null space at this stencil (too few points).
//   - ErrDegenerate: null space exists, every direction has zero multiplier.
//   - ErrInsufficientTerms: no nonzero error term within the term limit.
//   - ErrNoFormula: every search reduction exhausted.
//   - ErrNoFormulaYet: Last before the first success.
//   - ErrUnknownStrategy, ErrCoeffCount, ErrBadMultiplier: bad call shapes.
//
// Concurrency:
//
//   - An Engine is deliberately unsynchronized. Serialize access or use one
//     engine per goroutine.
//
// Complexity: elimination is O(L³) rational operations per attempt; search
// adds at most L−n attempts; the truncation scan costs O(limit·L).
package derive
