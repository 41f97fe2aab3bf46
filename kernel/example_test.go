package kernel_test

import (
	"fmt"

	"github.com/IrakliGurgenidze/Matmul/kernel"
	"github.com/IrakliGurgenidze/Matmul/sparse"
)

// ExampleNaiveMatmul multiplies a 2x3 and a 3x2 Boolean matrix and prints
// the resulting nonzero count.
func ExampleNaiveMatmul() {
	a, err := sparse.NewCSR(2, 3, []sparse.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}})
	if err != nil {
		panic(err)
	}
	b, err := sparse.NewCSR(3, 2, []sparse.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}})
	if err != nil {
		panic(err)
	}

	c, err := kernel.NaiveMatmul(a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println(c.NNZ())
	// Output: 2
}
