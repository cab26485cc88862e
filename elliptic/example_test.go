// SPDX-License-Identifier: MIT

package elliptic_test

import (
	"fmt"

	"github.com/katalvlaran/cylmag/elliptic"
)

// ExampleCompleteK evaluates the three complete integrals at m = 1/2,
// where Π(m, m) = E(m)/(1−m).
func ExampleCompleteK() {
	m := 0.5
	fmt.Printf("K=%.6f E=%.6f Pi=%.6f\n",
		elliptic.CompleteK(m), elliptic.CompleteE(m), elliptic.CompletePi(m, m))
	// Output:
	// K=1.854075 E=1.350644 Pi=2.701288
}

// ExampleCompleteK_singularity shows the regularized value at m = 1.
func ExampleCompleteK_singularity() {
	fmt.Printf("K(1)≈%.4f E(1)≈%.4f\n", elliptic.CompleteK(1), elliptic.CompleteE(1))
	// Output:
	// K(1)≈11.7479 E(1)≈1.0000
}
