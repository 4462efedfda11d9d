package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-cqt/window"
)

func ExampleGenerate() {
	w := window.Generate(window.TypeHann, 4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleSumSquares() {
	w := window.Generate(window.TypeHann, 4)
	fmt.Printf("%.3f\n", window.SumSquares(w))
	// Output:
	// 1.125
}
