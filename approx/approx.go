package approx

import (
	"fmt"
	"math"
	"math/big"

	"github.com/govalues/decimal"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/findiff/derive"
	"github.com/katalvlaran/findiff/stencil"
)

// Evaluator applies a compiled formula to f at x with step h:
//
//	Σ_p w_p·f(x + s_p·h) / hⁿ
//
// The step is trusted; a zero or negative h produces whatever the float
// math produces.
type Evaluator func(f func(float64) float64, x, h float64) float64

// Exact compiles res into an Evaluator whose weights w_p = k_p/m are the
// nearest float64 to the exact rationals.
//
// Errors: ErrNilResult, ErrBadResult.
func Exact(res *derive.Result) (Evaluator, error) {
	ws, err := weights(res)
	if err != nil {
		return nil, err
	}
	floats := make([]float64, len(ws))
	for i, w := range ws {
		floats[i], _ = w.Float64()
	}
	return compile(floats, res.Stencil, res.Derivative), nil
}

// Rounded compiles res like Exact but first renders every weight with the
// given number of fractional decimal digits, so the Evaluator computes
// what a reader of the printed decimal formula would compute. The loss
// against Exact is the point: it makes the cost of a digit budget
// measurable.
//
// Errors: ErrNilResult, ErrBadResult, ErrBadDigits.
func Rounded(res *derive.Result, digits int) (Evaluator, error) {
	if digits < 1 || digits > derive.MaxDigits {
		return nil, ErrBadDigits
	}
	ws, err := weights(res)
	if err != nil {
		return nil, err
	}
	floats := make([]float64, len(ws))
	for i, w := range ws {
		d, err := decimal.Parse(w.FloatString(digits))
		if err != nil {
			return nil, fmt.Errorf("approx: weight %d: %w", i, err)
		}
		f, ok := d.Float64()
		if !ok {
			return nil, fmt.Errorf("approx: weight %d: %w", i, ErrBadResult)
		}
		floats[i] = f
	}
	return compile(floats, res.Stencil, res.Derivative), nil
}

// Formula exports res as a gonum finite-difference formula with the given
// default step, ready for diff/fd.Derivative.
//
// Errors: ErrNilResult, ErrBadResult, ErrBadStep.
func Formula(res *derive.Result, step float64) (fd.Formula, error) {
	if step <= 0 || math.IsInf(step, 1) || math.IsNaN(step) {
		return fd.Formula{}, ErrBadStep
	}
	ws, err := weights(res)
	if err != nil {
		return fd.Formula{}, err
	}
	pts := make([]fd.Point, len(ws))
	for i, w := range ws {
		c, _ := w.Float64()
		pts[i] = fd.Point{Loc: float64(res.Stencil[i]), Coeff: c}
	}
	return fd.Formula{Stencil: pts, Derivative: res.Derivative, Step: step}, nil
}

// weights validates res and returns the exact per-point weights k_p/m.
func weights(res *derive.Result) ([]*big.Rat, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if res.Derivative < 1 || res.Multiplier == nil || res.Multiplier.Sign() == 0 ||
		len(res.Coeffs) == 0 || len(res.Coeffs) != len(res.Stencil) {
		return nil, ErrBadResult
	}
	ws := make([]*big.Rat, len(res.Coeffs))
	for i, k := range res.Coeffs {
		if k == nil {
			return nil, ErrBadResult
		}
		ws[i] = new(big.Rat).Quo(k, res.Multiplier)
	}
	return ws, nil
}

// compile closes over the float weights. hⁿ is recomputed per call so one
// Evaluator serves any step size.
func compile(weights []float64, s stencil.Stencil, order int) Evaluator {
	locs := make([]float64, len(s))
	for i, off := range s {
		locs[i] = float64(off)
	}
	return func(f func(float64) float64, x, h float64) float64 {
		var sum float64
		for i, w := range weights {
			sum += w * f(x+locs[i]*h)
		}
		return sum / math.Pow(h, float64(order))
	}
}
