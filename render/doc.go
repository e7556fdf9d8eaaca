// Package render formats derived formulas for people and machines. It
// never mutates a Result and never rounds anything except in Decimals,
// where rounding is the requested service.
//
// What:
//
//   - Text: the classic one-line form,
//     f''(x) ≈ [1·f(x-h) - 2·f(x) + 1·f(x+h)] / (1·h^2) + O(h^2).
//   - LaTeX: the same content as a \frac expression for papers and docs.
//   - JSON: a machine-readable document with every rational kept exact as
//     a "num/den" string (goccy/go-json).
//   - Decimals: the per-point weights k_p/m as trimmed decimal strings at
//     a chosen digit budget (govalues/decimal).
//
// Why:
//
//   - Presentation concerns stay out of derive, which hands over exact
//     rationals and nothing else.
//   - JSON strings rather than JSON numbers keep 1/3 exact; consumers
//     opt into floats deliberately via approx.
//
// Errors:
//
//   - ErrNilResult: no formula was supplied.
//   - ErrBadResult: the supplied formula is structurally inconsistent.
//   - ErrBadDigits: Decimals called with digits outside [1, 19].
package render
