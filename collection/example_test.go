package collection_test

import (
	"fmt"

	"github.com/katalvlaran/staircase/collection"
	"github.com/katalvlaran/staircase/stairs"
)

// ExampleSum totals overlapping occupancy functions.
func ExampleSum() {
	rooms := map[string]*stairs.Stairs{
		"kitchen": stairs.New().Layer(1, 3, 2),
		"lounge":  stairs.New().Layer(2, 4, 1),
	}
	labels, fs := collection.FromMap(rooms)
	total, _ := collection.Sum(fs)

	fmt.Println(labels)
	fmt.Println(total.StepPoints())
	fmt.Println(total.StepValues())

	// Output:
	// [kitchen lounge]
	// [1 2 3 4]
	// [2 3 1 0]
}

// ExampleCov builds a labeled covariance matrix.
func ExampleCov() {
	f := stairs.New().Layer(0, 2, 2).Layer(1, 4, 1)
	g := stairs.New().Layer(0, 4, 1).Layer(2, 3, 3)

	m, _ := collection.Cov([]string{"f", "g"}, []*stairs.Stairs{f, g})
	fmt.Print(m)

	// Output:
	// f [0.6875, -0.5625]
	// g [-0.5625, 1.6875]
}
