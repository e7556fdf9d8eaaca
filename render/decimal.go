package render

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"

	"github.com/katalvlaran/findiff/derive"
)

// Decimals renders the per-point weights k_p/m with the given number of
// fractional digits, trailing zeros trimmed, index-aligned with
// res.Stencil. This is the display side of the engine's digits setting;
// approx.Rounded is the computing side of the same budget.
func Decimals(res *derive.Result, digits int) ([]string, error) {
	if digits < 1 || digits > derive.MaxDigits {
		return nil, ErrBadDigits
	}
	if err := validate(res); err != nil {
		return nil, err
	}

	out := make([]string, len(res.Coeffs))
	w := new(big.Rat)
	for i, k := range res.Coeffs {
		w.Quo(k, res.Multiplier)
		d, err := decimal.Parse(w.FloatString(digits))
		if err != nil {
			return nil, fmt.Errorf("render: weight %d: %w", i, err)
		}
		out[i] = d.Trim(0).String()
	}
	return out, nil
}
