package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/staircase/matrix"
)

// ExampleNewLabeled fills a symmetric matrix by label.
func ExampleNewLabeled() {
	m, _ := matrix.NewLabeled([]string{"north", "south"})
	_ = m.SetLabel("north", "north", 1)
	_ = m.SetLabel("south", "south", 1)
	_ = m.SetLabel("north", "south", -0.25)
	_ = m.SetLabel("south", "north", -0.25)

	fmt.Print(m)
	fmt.Println(m.IsSymmetric())

	// Output:
	// north [1, -0.25]
	// south [-0.25, 1]
	// true
}
