// SPDX-License-Identifier: MIT

package coords_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/coords"
	"github.com/katalvlaran/cylmag/magnet"
)

// ExampleFrame_Forward maps one lab point into the frame of a translated magnet.
func ExampleFrame_Forward() {
	p, _ := magnet.New(magnet.WithPosition(1, 2, 3))
	f := coords.NewFrame(p)

	c := f.Forward(r3.Vec{X: 4, Y: 6, Z: 10})
	fmt.Printf("rho=%.3f phi=%.4f z=%.3f\n", c.Rho, c.Phi, c.Z)
	// Output:
	// rho=5.000 phi=0.9273 z=7.000
}

func ExampleOutline() {
	poly, _ := coords.Outline(magnet.Default(), coords.ViewXZ)
	fmt.Println(poly)
	// Output:
	// [[-2.5 -2.5] [-2.5 2.5] [2.5 2.5] [2.5 -2.5] [-2.5 -2.5]]
}
