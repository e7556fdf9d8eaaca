// File: render/example_test.go
package render_test

import (
	"fmt"

	"github.com/katalvlaran/findiff/derive"
	"github.com/katalvlaran/findiff/render"
)

// ExampleText renders the five-point first derivative the way textbooks
// print it.
func ExampleText() {
	eng := derive.New()
	res, err := eng.Derive(1, -2, -1, 0, 1, 2)
	if err != nil {
		fmt.Println("derive:", err)
		return
	}

	line, err := render.Text(res)
	if err != nil {
		fmt.Println("render:", err)
		return
	}
	fmt.Println(line)
	// Output:
	// f'(x) ≈ [1·f(x-2h) - 8·f(x-h) + 0·f(x) + 8·f(x+h) - 1·f(x+2h)] / (12·h) + O(h^4)
}

// ExampleDecimals shows the same weights under a four-digit budget.
func ExampleDecimals() {
	eng := derive.New()
	res, err := eng.Derive(1, -2, -1, 0, 1, 2)
	if err != nil {
		fmt.Println("derive:", err)
		return
	}

	ws, err := render.Decimals(res, 4)
	if err != nil {
		fmt.Println("render:", err)
		return
	}
	fmt.Println(ws)
	// Output:
	// [0.0833 -0.6667 0 0.6667 -0.0833]
}
