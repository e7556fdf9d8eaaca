// Package stencil models the grid point sets a finite-difference formula is
// built on: small ascending sequences of distinct integer offsets around a
// point of interest (offset 0 = the point itself).
//
// What:
//
//   - Stencil wraps []int with a construction-time normal form: sorted
//     ascending, duplicates removed, never empty.
//   - New accepts arbitrary unsorted/duplicated offsets; FromRange builds the
//     inclusive run lo..hi; Parse reads the textual forms users type
//     ("-2:2", "-1,0,1", "{-1 0 1}").
//   - Read-only helpers answer the questions the derivation layers ask:
//     Min/Max, Contains, IsSymmetric, Clone, String.
//
// Why:
//
//   - Every downstream component (Taylor rows, elimination, search) assumes
//     the normal form; centralizing it here keeps their guards trivial.
//   - Search strategies shrink stencils from either end, which is only
//     well-defined on the sorted ascending representation.
//
// Errors:
//
//   - ErrEmpty: no offsets survive normalization.
//   - ErrBadRange: FromRange called with lo > hi.
//   - ErrSyntax: Parse input is not a range or an integer list.
//
// All operations are pure; a Stencil is never mutated after construction.
package stencil
