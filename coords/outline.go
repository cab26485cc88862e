// SPDX-License-Identifier: MIT

package coords

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/magnet"
)

// View selects the lab section a magnet outline is projected onto.
type View int

const (
	// ViewXZ draws the magnet in the x/z section; vertices are (x, z).
	ViewXZ View = iota
	// ViewYZ draws the magnet in the y/z section; vertices are (y, z).
	ViewYZ
)

// ErrUnknownView is returned by Outline for a View it cannot project.
var ErrUnknownView = errors.New("coords: unknown outline view")

// String returns "xz" or "yz".
func (v View) String() string {
	switch v {
	case ViewXZ:
		return "xz"
	case ViewYZ:
		return "yz"
	default:
		return "unknown"
	}
}

// Outline returns the closed polygon of the magnet's axial cross-section as
// seen in the requested view: five vertices, the last repeating the first.
//
// The local rectangle has corners (±R, ·, ±L/2); for ViewXZ the radial offset
// lies along ξ, for ViewYZ along η. Vertex order is bottom-left, top-left,
// top-right, bottom-right, bottom-left.
func Outline(p magnet.Parameters, view View) ([][2]float64, error) {
	r, h := p.Radius, p.HalfLength()

	var axis func(s float64) r3.Vec
	var pick func(v r3.Vec) [2]float64
	switch view {
	case ViewXZ:
		axis = func(s float64) r3.Vec { return r3.Vec{X: s} }
		pick = func(v r3.Vec) [2]float64 { return [2]float64{v.X, v.Z} }
	case ViewYZ:
		axis = func(s float64) r3.Vec { return r3.Vec{Y: s} }
		pick = func(v r3.Vec) [2]float64 { return [2]float64{v.Y, v.Z} }
	default:
		return nil, ErrUnknownView
	}

	f := NewFrame(p)
	corners := [...]struct{ s, z float64 }{{-r, -h}, {-r, h}, {r, h}, {r, -h}, {-r, -h}}
	out := make([][2]float64, 0, len(corners))
	for _, c := range corners {
		local := axis(c.s)
		local.Z = c.z
		out = append(out, pick(f.ToLab(local)))
	}

	return out, nil
}
