// SPDX-License-Identifier: MIT

package sweep

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/coords"
)

// Sentinel errors for sweep construction and execution.
var (
	// ErrBadAxis indicates an axis with N < 2, Min ≥ Max or non-finite bounds.
	ErrBadAxis = errors.New("sweep: axis needs N >= 2 and finite Min < Max")
	// ErrBadPlane indicates an unknown plane kind or a non-finite offset.
	ErrBadPlane = errors.New("sweep: invalid plane")
	// ErrUnknownQuantity indicates a Quantity that Run cannot evaluate.
	ErrUnknownQuantity = errors.New("sweep: unknown quantity")
	// ErrShape indicates a vector count that does not match the plane grid.
	ErrShape = errors.New("sweep: vector count does not match plane dimensions")
)

// Axis is a linearly spaced sample range, both ends included.
type Axis struct {
	Min, Max float64
	N        int
}

// Values returns N evenly spaced samples from Min to Max.
// It returns nil for N < 2.
// Complexity: O(N).
func (a Axis) Values() []float64 {
	if a.N < 2 {
		return nil
	}
	out := make([]float64, a.N)
	floats.Span(out, a.Min, a.Max)

	return out
}

func (a Axis) validate() error {
	if a.N < 2 || math.IsNaN(a.Min) || math.IsNaN(a.Max) ||
		math.IsInf(a.Min, 0) || math.IsInf(a.Max, 0) || a.Min >= a.Max {
		return fmt.Errorf("%w: got [%g, %g] with %d samples", ErrBadAxis, a.Min, a.Max, a.N)
	}

	return nil
}

// String formats a as "min:max:n", the form ParseAxis accepts.
func (a Axis) String() string {
	return fmt.Sprintf("%g:%g:%d", a.Min, a.Max, a.N)
}

// ParseAxis reads "min:max:n".
func ParseAxis(s string) (Axis, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Axis{}, fmt.Errorf("%w: %q is not min:max:n", ErrBadAxis, s)
	}
	lo, errLo := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	hi, errHi := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	n, errN := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err := errors.Join(errLo, errHi, errN); err != nil {
		return Axis{}, fmt.Errorf("%w: %q: %v", ErrBadAxis, s, err)
	}
	a := Axis{Min: lo, Max: hi, N: n}
	if err := a.validate(); err != nil {
		return Axis{}, err
	}

	return a, nil
}

// Kind selects the lab plane of a sweep.
type Kind int

const (
	// XZ samples u = x, v = z at y = Offset.
	XZ Kind = iota
	// YZ samples u = y, v = z at x = Offset.
	YZ
	// XY samples u = x, v = y at z = Offset.
	XY
)

var kindNames = [...]string{XZ: "xz", YZ: "yz", XY: "xy"}

// String returns "xz", "yz" or "xy".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind is the inverse of Kind.String; it is case-insensitive.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown kind %q", ErrBadPlane, s)
}

// Labels returns the lab axis names of u and v.
func (k Kind) Labels() (u, v string) {
	switch k {
	case YZ:
		return "y", "z"
	case XY:
		return "x", "y"
	default:
		return "x", "z"
	}
}

// View returns the outline view of k. XY has none.
func (k Kind) View() (coords.View, bool) {
	switch k {
	case XZ:
		return coords.ViewXZ, true
	case YZ:
		return coords.ViewYZ, true
	default:
		return 0, false
	}
}

// Plane is an axis-aligned lab section sampled on a U×V grid.
type Plane struct {
	Kind   Kind
	U, V   Axis
	Offset float64 // coordinate along the axis normal to the plane
}

// NewPlane validates and returns a Plane.
// Returns ErrBadAxis or ErrBadPlane.
// Complexity: O(1).
func NewPlane(kind Kind, u, v Axis, offset float64) (Plane, error) {
	p := Plane{Kind: kind, U: u, V: v, Offset: offset}
	if err := p.validate(); err != nil {
		return Plane{}, err
	}

	return p, nil
}

func (p Plane) validate() error {
	if p.Kind < XZ || p.Kind > XY {
		return fmt.Errorf("%w: kind %d", ErrBadPlane, int(p.Kind))
	}
	if math.IsNaN(p.Offset) || math.IsInf(p.Offset, 0) {
		return fmt.Errorf("%w: offset %g", ErrBadPlane, p.Offset)
	}
	if err := p.U.validate(); err != nil {
		return fmt.Errorf("u: %w", err)
	}
	if err := p.V.validate(); err != nil {
		return fmt.Errorf("v: %w", err)
	}

	return nil
}

// Size returns the number of grid samples.
func (p Plane) Size() int { return p.U.N * p.V.N }

// Point maps plane coordinates (u, v) to a lab point.
func (p Plane) Point(u, v float64) r3.Vec {
	switch p.Kind {
	case YZ:
		return r3.Vec{X: p.Offset, Y: u, Z: v}
	case XY:
		return r3.Vec{X: u, Y: v, Z: p.Offset}
	default:
		return r3.Vec{X: u, Y: p.Offset, Z: v}
	}
}

// InBounds reports whether (i, j) indexes a grid sample.
// Complexity: O(1).
func (p Plane) InBounds(i, j int) bool {
	return i >= 0 && i < p.U.N && j >= 0 && j < p.V.N
}

// index maps (i, j) to a row-major index: j*U.N + i.
func (p Plane) index(i, j int) int {
	return j*p.U.N + i
}

// Coordinate converts a row-major index back to (i, j).
// Complexity: O(1).
func (p Plane) Coordinate(idx int) (i, j int) {
	return idx % p.U.N, idx / p.U.N
}
