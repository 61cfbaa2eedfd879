package stairs_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/staircase/stairs"
)

// ExampleStairs_Layer builds a step function interval by interval.
func ExampleStairs_Layer() {
	f := stairs.New().
		Layer(1, 10, 2).
		Layer(-4, 5, -1.75).
		Layer(3, 5, 2.5).
		Layer(6, 7, -2.5).
		Layer(7, 10, -2.5)

	fmt.Println(f.StepPoints())
	fmt.Println(f.StepChanges())

	integral, _ := f.Integral()
	fmt.Println(integral)

	// Output:
	// [-4 1 3 5 6 10]
	// [-1.75 2 2.5 -0.75 -2.5 0.5]
	// -2.75
}

// ExampleStairs_Clip restricts a function to a window; outside it is undefined.
func ExampleStairs_Clip() {
	f := stairs.New().Layer(0, 4, 1).Layer(2, 8, 3)
	c, _ := f.Clip(1, 5)

	fmt.Println(c.Sample(0), c.Sample(1), c.Sample(3), c.Sample(5))
	mean, _ := c.MeanOver(math.Inf(-1), math.Inf(1))
	fmt.Println(mean)

	// Output:
	// NaN 1 4 NaN
	// 3
}

// ExampleStairs_Add combines two functions pointwise.
func ExampleStairs_Add() {
	a := stairs.New().Layer(0, 2, 1)
	b := stairs.New().Layer(1, 3, 1)

	sum, _ := a.Add(b)
	fmt.Println(sum)

	// Output:
	// Stairs(closed=left)
	//   [-inf, 0) = 0
	//   [0, 1) = 1
	//   [1, 2) = 2
	//   [2, 3) = 1
	//   [3, +inf) = 0
}

// ExampleStairs_Hist bins the levels of a function by the time spent at each.
func ExampleStairs_Hist() {
	f := stairs.New().Layer(0, 4, 1).Layer(1, 2, 1)

	bins, _ := f.Hist(math.Inf(-1), math.Inf(1), []float64{0, 1.5, 3}, stairs.Left, stairs.StatSum)
	for _, b := range bins {
		fmt.Printf("[%g, %g): %g\n", b.Lower, b.Upper, b.Value)
	}

	// Output:
	// [0, 1.5): 3
	// [1.5, 3): 1
}
