// SPDX-License-Identifier: MIT

package coords

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/magnet"
)

// MinRho is the floor applied to the radial coordinate of Forward.
const MinRho = 1e-6

// Cylindrical is a point in the magnet-local cylindrical frame.
type Cylindrical struct {
	Rho float64 // radial distance from the magnet axis, ≥ MinRho
	Phi float64 // azimuth in (−π, π]
	Z   float64 // axial coordinate, 0 at the magnet center
}

// Frame caches the translation and the trigonometry of one Parameters value.
// Build it once per magnet and reuse it for every point of a batch.
// The zero Frame is the identity (centered, unrotated) frame.
type Frame struct {
	center r3.Vec
	sg, cg float64 // sin/cos of gamma
	sb, cb float64 // sin/cos of beta
	built  bool // set by NewFrame; false selects the identity
}

// NewFrame precomputes the frame of p.
func NewFrame(p magnet.Parameters) Frame {
	gamma, beta := p.Gamma(), p.Beta()

	return Frame{
		center: p.Position,
		sg:     math.Sin(gamma),
		cg:     math.Cos(gamma),
		sb:     math.Sin(beta),
		cb:     math.Cos(beta),
		built:  true,
	}
}

// trig returns the cached sines and cosines, treating the zero Frame as identity.
func (f Frame) trig() (sg, cg, sb, cb float64) {
	if !f.built {
		return 0, 1, 0, 1
	}

	return f.sg, f.cg, f.sb, f.cb
}

// Rotate maps a translated lab vector to local Cartesian (ξ, η, ζ).
func (f Frame) Rotate(v r3.Vec) r3.Vec {
	sg, cg, sb, cb := f.trig()

	return r3.Vec{
		X: v.X*cb + v.Y*sb*sg + v.Z*sb*cg,
		Y: v.Y*cg - v.Z*sg,
		Z: -v.X*sb + v.Y*cb*sg + v.Z*cb*cg,
	}
}

// Unrotate maps local Cartesian (ξ, η, ζ) back to lab orientation. It is the
// transpose of Rotate.
func (f Frame) Unrotate(v r3.Vec) r3.Vec {
	sg, cg, sb, cb := f.trig()
	xi, eta, zeta := v.X, v.Y, v.Z

	return r3.Vec{
		X: xi*cb - zeta*sb,
		Y: xi*sb*sg + eta*cg + zeta*sg*cb,
		Z: xi*sb*cg - eta*sg + zeta*cb*cg,
	}
}

// Forward maps a lab point to magnet-local cylindrical coordinates.
func (f Frame) Forward(pt r3.Vec) Cylindrical {
	local := f.Rotate(r3.Sub(pt, f.center))

	rho := math.Sqrt(local.X*local.X + local.Y*local.Y)
	phi := math.Atan2(local.Y, local.X)
	if math.Abs(rho) < MinRho {
		rho = MinRho
	}

	return Cylindrical{Rho: rho, Phi: phi, Z: local.Z}
}

// VectorBackward maps a vector given by its radial and axial components at
// azimuth phi to lab Cartesian components. Vectors are translation invariant,
// so the center is not added back.
func (f Frame) VectorBackward(rhoComp, zComp, phi float64) r3.Vec {
	sin, cos := math.Sincos(phi)

	return f.Unrotate(r3.Vec{X: rhoComp * cos, Y: rhoComp * sin, Z: zComp})
}

// ToLab maps a local Cartesian point (ξ, η, ζ) to its lab position.
func (f Frame) ToLab(local r3.Vec) r3.Vec {
	return r3.Add(f.Unrotate(local), f.center)
}

// Forward maps the lab point (x, y, z) to the local cylindrical frame of p.
func Forward(x, y, z float64, p magnet.Parameters) Cylindrical {
	return NewFrame(p).Forward(r3.Vec{X: x, Y: y, Z: z})
}

// VectorBackward maps (rhoComp, zComp) at azimuth phi to lab components for p.
func VectorBackward(rhoComp, zComp, phi float64, p magnet.Parameters) r3.Vec {
	return NewFrame(p).VectorBackward(rhoComp, zComp, phi)
}

// BackwardMagnetX returns the lab (y, z) of the local point (ξ, η, ζ); used to
// draw the magnet in a YZ section.
func BackwardMagnetX(xi, eta, zeta float64, p magnet.Parameters) (y, z float64) {
	lab := NewFrame(p).ToLab(r3.Vec{X: xi, Y: eta, Z: zeta})
	return lab.Y, lab.Z
}

// BackwardMagnetY returns the lab (x, z) of the local point (ξ, η, ζ); used to
// draw the magnet in an XZ section.
func BackwardMagnetY(xi, eta, zeta float64, p magnet.Parameters) (x, z float64) {
	lab := NewFrame(p).ToLab(r3.Vec{X: xi, Y: eta, Z: zeta})
	return lab.X, lab.Z
}
