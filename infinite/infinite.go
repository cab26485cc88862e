// SPDX-License-Identifier: MIT

// Package infinite approximates the magnetic force of a magnet that is long
// compared with the working distance, after Furlani and Ng, "Analytical model of
// magnetic nanoparticle transport and capture in the microvasculature",
// Phys. Rev. E 73, 061919 (2006).
//
// The magnet is an infinite cylinder along y, centered at x₀ with its axis a
// distance d = −z₀ below z = 0:
//
//	F = −M²·μ·V·R⁴ · (x − x₀, 0, z + d) / (2·((z + d)² + (x − x₀)²)³)
//
// Unlike package force the result has no mobility factor, ignores the magnet
// length, both rotations and y₀, and is singular on the magnet axis.
package infinite

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/magnet"
)

// Force returns the force on the particle of p at (x, y, z).
func Force(x, _, z float64, p magnet.Parameters) r3.Vec {
	r := p.Radius
	dx := x - p.Position.X
	dz := z - p.Position.Z
	m := p.Magnetization

	s := dz*dz + dx*dx
	scale := -m * m * p.Permeability * p.ParticleVolume() * math.Pow(r, 4) / (2 * s * s * s)

	return r3.Vec{X: scale * dx, Y: 0, Z: scale * dz}
}
