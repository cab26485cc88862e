// SPDX-License-Identifier: MIT

package magnet

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/particle"
)

// Parameters describes the magnet, the fluid and the particle.
type Parameters struct {
	Radius float64 // magnet radius R
	Length float64 // axial length of the cylinder

	Position  r3.Vec  // magnet center in the lab frame
	RotationX float64 // gamma, degrees
	RotationY float64 // beta, degrees

	Permeability  float64 // magnetic permeability μ
	Magnetization float64 // magnet magnetization M (A/length)

	Viscosity      float64        // dynamic viscosity η of the fluid
	ParticleRadius float64        // particle radius r
	Model          particle.Model // particle magnetisation model; nil means Constant
}

// HalfLength returns Length/2.
func (p Parameters) HalfLength() float64 { return 0.5 * p.Length }

// Gamma returns RotationX in radians.
func (p Parameters) Gamma() float64 { return p.RotationX * math.Pi / 180 }

// Beta returns RotationY in radians.
func (p Parameters) Beta() float64 { return p.RotationY * math.Pi / 180 }

// ParticleVolume returns the volume of the (spherical) particle.
func (p Parameters) ParticleVolume() float64 { return particle.Volume(p.ParticleRadius) }

// Mobility returns the Stokes mobility of the particle in the fluid.
func (p Parameters) Mobility() float64 { return particle.Mobility(p.Viscosity, p.ParticleRadius) }

// MagnetisationModel returns Model, defaulting to particle.Constant.
func (p Parameters) MagnetisationModel() particle.Model {
	if p.Model == nil {
		return particle.Constant{}
	}

	return p.Model
}
