// File: approx/example_test.go
package approx_test

import (
	"fmt"

	"github.com/katalvlaran/findiff/approx"
	"github.com/katalvlaran/findiff/derive"
)

// ExampleExact compiles the central second difference and applies it to
// x², where the answer is exact for any step.
func ExampleExact() {
	eng := derive.New()
	res, err := eng.Derive(2, -1, 0, 1)
	if err != nil {
		fmt.Println("derive:", err)
		return
	}

	d2, err := approx.Exact(res)
	if err != nil {
		fmt.Println("approx:", err)
		return
	}
	sq := func(x float64) float64 { return x * x }
	fmt.Printf("%.4f\n", d2(sq, 1.0, 0.5))
	// Output:
	// 2.0000
}

// ExampleRounded shows the cost of a two-digit weight budget on the
// five-point first derivative: the identity function exposes the rounded
// weight sum directly.
func ExampleRounded() {
	eng := derive.New()
	res, err := eng.Derive(1, -2, -1, 0, 1, 2)
	if err != nil {
		fmt.Println("derive:", err)
		return
	}

	d1, err := approx.Rounded(res, 2)
	if err != nil {
		fmt.Println("approx:", err)
		return
	}
	id := func(x float64) float64 { return x }
	fmt.Printf("%.2f\n", d1(id, 0, 1))
	// Output:
	// 1.02
}
