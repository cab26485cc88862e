// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/field"
	"github.com/katalvlaran/cylmag/force"
	"github.com/katalvlaran/cylmag/infinite"
	"github.com/katalvlaran/cylmag/magnet"
)

// Quantity selects what Run evaluates at each grid point.
type Quantity int

const (
	// Field is the magnetic field strength H.
	Field Quantity = iota
	// Force is the finite-magnet particle drift.
	Force
	// InfiniteForce is the infinite-length approximation of the force.
	InfiniteForce
)

var quantityNames = [...]string{Field: "field", Force: "force", InfiniteForce: "infinite"}

// String returns "field", "force" or "infinite".
func (q Quantity) String() string {
	if q < 0 || int(q) >= len(quantityNames) {
		return fmt.Sprintf("Quantity(%d)", int(q))
	}

	return quantityNames[q]
}

// ParseQuantity is the inverse of Quantity.String.
func ParseQuantity(s string) (Quantity, error) {
	for q, name := range quantityNames {
		if strings.EqualFold(s, name) {
			return Quantity(q), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownQuantity, s)
}

// evaluator returns the point function of q for p.
func (q Quantity) evaluator(p magnet.Parameters) (func(r3.Vec) r3.Vec, error) {
	switch q {
	case Field:
		return field.NewEvaluator(p).At, nil
	case Force:
		return force.NewEvaluator(p).At, nil
	case InfiniteForce:
		return func(pt r3.Vec) r3.Vec { return infinite.Force(pt.X, pt.Y, pt.Z, p) }, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownQuantity, int(q))
	}
}
