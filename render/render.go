package render

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/findiff/derive"
)

// Text renders the classic one-line form:
//
//	f''(x) ≈ [1·f(x-h) - 2·f(x) + 1·f(x+h)] / (1·h^2) + O(h^2)
//
// Coefficients are printed exactly (RatString), the leading sign is
// folded into the first term and h is written without an exponent for
// first derivatives.
func Text(res *derive.Result) (string, error) {
	if err := validate(res); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(prime(res.Derivative))
	b.WriteString("(x) ≈ [")
	for i, k := range res.Coeffs {
		writeSign(&b, i == 0, k.Sign())
		b.WriteString(new(big.Rat).Abs(k).RatString())
		b.WriteString("·")
		b.WriteString(sample(res.Stencil[i]))
	}
	b.WriteString("] / (")
	b.WriteString(res.Multiplier.RatString())
	b.WriteString("·")
	b.WriteString(hPow(res.Derivative))
	fmt.Fprintf(&b, ") + O(h^%d)", res.TruncationOrder)
	return b.String(), nil
}

// LaTeX renders the same content as a display-ready fraction:
//
//	f''(x) \approx \frac{1 \cdot f(x-h) - 2 \cdot f(x) + 1 \cdot f(x+h)}{1 \cdot h^{2}} + O(h^{2})
//
// Non-integer coefficients become \tfrac{num}{den}.
func LaTeX(res *derive.Result) (string, error) {
	if err := validate(res); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(primeTeX(res.Derivative))
	b.WriteString(`(x) \approx \frac{`)
	for i, k := range res.Coeffs {
		writeSign(&b, i == 0, k.Sign())
		b.WriteString(texRat(new(big.Rat).Abs(k)))
		b.WriteString(` \cdot `)
		b.WriteString(sample(res.Stencil[i]))
	}
	b.WriteString(`}{`)
	b.WriteString(texRat(res.Multiplier))
	b.WriteString(` \cdot `)
	b.WriteString(hPowTeX(res.Derivative))
	fmt.Fprintf(&b, `} + O(h^{%d})`, res.TruncationOrder)
	return b.String(), nil
}

// writeSign emits the separator before a term: the first term carries a
// bare minus when negative, later terms are joined with " + " or " - ".
// Zero coefficients join with " + " so every stencil point stays visible.
func writeSign(b *strings.Builder, first bool, sign int) {
	switch {
	case first && sign < 0:
		b.WriteString("-")
	case first:
	case sign < 0:
		b.WriteString(" - ")
	default:
		b.WriteString(" + ")
	}
}

// sample renders the sampled argument for one offset.
func sample(offset int) string {
	switch {
	case offset == 0:
		return "f(x)"
	case offset == 1:
		return "f(x+h)"
	case offset == -1:
		return "f(x-h)"
	case offset > 1:
		return fmt.Sprintf("f(x+%dh)", offset)
	default:
		return fmt.Sprintf("f(x-%dh)", -offset)
	}
}

// prime builds the derivative marker: f', f'', f''', then f^(n).
func prime(n int) string {
	if n <= 3 {
		return "f" + strings.Repeat("'", n)
	}
	return fmt.Sprintf("f^(%d)", n)
}

// primeTeX is the LaTeX twin of prime.
func primeTeX(n int) string {
	if n <= 3 {
		return "f" + strings.Repeat("'", n)
	}
	return fmt.Sprintf("f^{(%d)}", n)
}

// hPow renders the step power, dropping the exponent for n = 1.
func hPow(n int) string {
	if n == 1 {
		return "h"
	}
	return fmt.Sprintf("h^%d", n)
}

// hPowTeX is the LaTeX twin of hPow.
func hPowTeX(n int) string {
	if n == 1 {
		return "h"
	}
	return fmt.Sprintf("h^{%d}", n)
}

// texRat renders a rational for LaTeX: integers inline, fractions as
// \tfrac, the sign always outside the fraction.
func texRat(r *big.Rat) string {
	if r.IsInt() {
		return r.RatString()
	}
	if r.Sign() < 0 {
		return "-" + texRat(new(big.Rat).Abs(r))
	}
	return fmt.Sprintf(`\tfrac{%s}{%s}`, r.Num(), r.Denom())
}

// validate rejects nil and structurally inconsistent results.
func validate(res *derive.Result) error {
	if res == nil {
		return ErrNilResult
	}
	if res.Derivative < 1 || res.Multiplier == nil || res.Multiplier.Sign() == 0 ||
		len(res.Coeffs) == 0 || len(res.Coeffs) != len(res.Stencil) {
		return ErrBadResult
	}
	for _, k := range res.Coeffs {
		if k == nil {
			return ErrBadResult
		}
	}
	return nil
}
