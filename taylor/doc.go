// Package taylor generates exact rational Taylor coefficients of a function
// sampled at integer grid offsets, and linearly combines such series.
//
// What:
//
//   - Row(j, T) returns c₀…c_{T−1} with c_t = jᵗ/t!, the coefficient of
//     hᵗ·f⁽ᵗ⁾(x) in the expansion of f(x + j·h). By convention 0⁰ = 1, so
//     c₀ = 1 for every offset including j = 0.
//   - Combine(w, offsets, T) returns the termwise sum Σ_p w_p·Row(offsets_p),
//     the series of the weighted sample combination Σ_p w_p·f(x + offsets_p·h).
//   - Term(w, offsets, t) returns the single combined coefficient at order t.
//
// Why:
//
//   - The elimination solver needs the rows as matrix columns; the truncation
//     analyzer scans combined coefficients order by order; verification
//     re-evaluates the defining sums; the CLI exposes Row/Combine directly
//     for teaching.
//
// Arithmetic:
//
//   - Everything is math/big.Rat. Factorial denominators grow fast enough
//     that float64 misrepresents rows well inside practical term counts,
//     so no floating point appears anywhere in this package.
//   - Rows are built incrementally (c_t = c_{t−1}·j/t), one small rational
//     multiply per term.
//
// Complexity:
//
//   - Row: O(T) rational multiplies, Memory O(T).
//   - Combine: O(T·L), Memory O(T).
//   - Term: O(t·L), Memory O(1).
//
// Errors:
//
//   - ErrBadTermCount: requested term count < 1 (or a negative order).
//   - ErrLengthMismatch: weight and offset slices differ in length.
//   - ErrNilWeight: a weight entry is nil.
//
// The engine-level term ceiling (default 30) is enforced by the derive
// package before calls arrive here; this package only rejects counts that
// are meaningless outright.
package taylor
