// File: approx/approx_test.go
package approx_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/findiff/approx"
	"github.com/katalvlaran/findiff/derive"
	"github.com/katalvlaran/findiff/stencil"
)

// deriveFor is a test shorthand: derive or fail the test.
func deriveFor(t *testing.T, order int, offsets ...int) *derive.Result {
	t.Helper()
	res, err := derive.New().Derive(order, offsets...)
	require.NoError(t, err)
	return res
}

// TestExact_PolynomialIsExact: the central second difference of x² is 2
// with no truncation error at all, and every intermediate float here is
// exactly representable, so the comparison is exact.
func TestExact_PolynomialIsExact(t *testing.T) {
	res := deriveFor(t, 2, -1, 0, 1)
	d2, err := approx.Exact(res)
	require.NoError(t, err)

	sq := func(x float64) float64 { return x * x }
	assert.Equal(t, 2.0, d2(sq, 1.0, 0.5))
	assert.Equal(t, 2.0, d2(sq, -3.0, 0.25))
}

// TestExact_FivePointSin: fourth-order accuracy on sin leaves an error
// around h⁴, far below the asserted tolerance.
func TestExact_FivePointSin(t *testing.T) {
	res := deriveFor(t, 1, -2, -1, 0, 1, 2)
	d1, err := approx.Exact(res)
	require.NoError(t, err)

	got := d1(math.Sin, 0.3, 1e-2)
	assert.InDelta(t, math.Cos(0.3), got, 1e-8)
}

// TestExact_ThirdDerivativeExp: an odd-order formula on exp, checked at
// the origin where every derivative is 1.
func TestExact_ThirdDerivativeExp(t *testing.T) {
	res := deriveFor(t, 3, -2, -1, 0, 1, 2)
	d3, err := approx.Exact(res)
	require.NoError(t, err)

	got := d3(math.Exp, 0, 1e-2)
	assert.InDelta(t, 1.0, got, 1e-3)
}

// TestExact_ErrorShrinksWithStep: halving h on a second-order formula
// must cut the truncation error by roughly four.
func TestExact_ErrorShrinksWithStep(t *testing.T) {
	res := deriveFor(t, 1, -1, 0, 1)
	d1, err := approx.Exact(res)
	require.NoError(t, err)

	x := 0.7
	errAt := func(h float64) float64 {
		return math.Abs(d1(math.Exp, x, h) - math.Exp(x))
	}
	coarse := errAt(1e-2)
	fine := errAt(5e-3)
	assert.Less(t, fine, coarse/3, "second-order convergence")
}

// TestRounded_KeepsTerminatingWeights: the forward three-point weights
// (-3/2, 2, -1/2) terminate in decimal, so rounding at any budget must
// reproduce Exact bit for bit.
func TestRounded_KeepsTerminatingWeights(t *testing.T) {
	res := deriveFor(t, 1, 0, 1, 2)

	exact, err := approx.Exact(res)
	require.NoError(t, err)
	rounded, err := approx.Rounded(res, 4)
	require.NoError(t, err)

	for _, h := range []float64{1, 0.5, 1e-3} {
		assert.Equal(t, exact(math.Sin, 0.4, h), rounded(math.Sin, 0.4, h), "h=%g", h)
	}
}

// TestRounded_ObservableLoss: the five-point weights ±1/12, ±2/3 do not
// terminate. At two digits they become ±0.08 and ±0.67, and applying the
// formula to the identity function exposes the rounded weight sum
// directly: Σ w_p·s_p = 1.02 instead of 1.
func TestRounded_ObservableLoss(t *testing.T) {
	res := deriveFor(t, 1, -2, -1, 0, 1, 2)

	rounded, err := approx.Rounded(res, 2)
	require.NoError(t, err)
	id := func(x float64) float64 { return x }
	assert.InDelta(t, 1.02, rounded(id, 0, 1), 1e-9)

	exact, err := approx.Exact(res)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, exact(id, 0, 1), 1e-12)
}

// TestFormula_RoundTrip: the exported gonum formula drives fd.Derivative
// to the same answer the local evaluator computes.
func TestFormula_RoundTrip(t *testing.T) {
	res := deriveFor(t, 2, -1, 0, 1)

	ff, err := approx.Formula(res, 1e-4)
	require.NoError(t, err)
	assert.Equal(t, 2, ff.Derivative)
	assert.Equal(t, 1e-4, ff.Step)
	require.Len(t, ff.Stencil, 3)
	assert.Equal(t, fd.Point{Loc: -1, Coeff: 1}, ff.Stencil[0])
	assert.Equal(t, fd.Point{Loc: 0, Coeff: -2}, ff.Stencil[1])
	assert.Equal(t, fd.Point{Loc: 1, Coeff: 1}, ff.Stencil[2])

	got := fd.Derivative(math.Sin, 1.0, &fd.Settings{Formula: ff})
	assert.InDelta(t, -math.Sin(1.0), got, 1e-6)

	direct, err := approx.Exact(res)
	require.NoError(t, err)
	assert.InDelta(t, direct(math.Sin, 1.0, 1e-4), got, 1e-9)
}

// TestCompileErrors maps the guard failures onto their sentinels.
func TestCompileErrors(t *testing.T) {
	res := deriveFor(t, 1, -1, 0, 1)

	_, err := approx.Exact(nil)
	assert.ErrorIs(t, err, approx.ErrNilResult)
	_, err = approx.Rounded(nil, 4)
	assert.ErrorIs(t, err, approx.ErrNilResult)
	_, err = approx.Formula(nil, 1e-3)
	assert.ErrorIs(t, err, approx.ErrNilResult)

	_, err = approx.Rounded(res, 0)
	assert.ErrorIs(t, err, approx.ErrBadDigits)
	_, err = approx.Rounded(res, derive.MaxDigits+1)
	assert.ErrorIs(t, err, approx.ErrBadDigits)

	for _, step := range []float64{0, -1e-3, math.Inf(1), math.NaN()} {
		_, err = approx.Formula(res, step)
		assert.ErrorIs(t, err, approx.ErrBadStep, "step=%v", step)
	}

	mangled := &derive.Result{
		Derivative: 1,
		Stencil:    stencil.Stencil{-1, 1},
		Coeffs:     []*big.Rat{big.NewRat(-1, 1)},
		Multiplier: big.NewRat(2, 1),
	}
	_, err = approx.Exact(mangled)
	assert.ErrorIs(t, err, approx.ErrBadResult)

	mangled.Coeffs = []*big.Rat{big.NewRat(-1, 1), nil}
	_, err = approx.Exact(mangled)
	assert.ErrorIs(t, err, approx.ErrBadResult)

	mangled.Coeffs = []*big.Rat{big.NewRat(-1, 1), big.NewRat(1, 1)}
	mangled.Multiplier = new(big.Rat)
	_, err = approx.Exact(mangled)
	assert.ErrorIs(t, err, approx.ErrBadResult, "zero multiplier")
}
