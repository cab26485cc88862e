// SPDX-License-Identifier: MIT

package force

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/coords"
	"github.com/katalvlaran/cylmag/elliptic"
	"github.com/katalvlaran/cylmag/magnet"
)

// Evaluator computes the magnetic drift for one magnet and particle.
type Evaluator struct {
	params magnet.Parameters
	frame  coords.Frame
	pre    float64 // mobility·M²·μ·V
}

// NewEvaluator binds p and precomputes the particle prefactor.
// p is not validated; see magnet.Parameters.Validate.
func NewEvaluator(p magnet.Parameters) *Evaluator {
	m := p.Magnetization

	return &Evaluator{
		params: p,
		frame:  coords.NewFrame(p),
		pre:    p.Mobility() * m * m * p.Permeability * p.ParticleVolume(),
	}
}

// Parameters returns the bound parameter set.
func (e *Evaluator) Parameters() magnet.Parameters { return e.params }

// At returns the drift at the lab point pt.
// Implementation:
//   - Stage 1: map pt to (ρ, φ, z) in the magnet frame.
//   - Stage 2: geometry sums a, b, c and the elliptic parameters ψ±, β.
//   - Stage 3: K(ψ±), E(ψ±), Π(β, ψ±) and the auxiliary Q1, Q2.
//   - Stage 4: F_ρ, F_z and the rotation back to the lab frame.
//
// Complexity: O(1), six complete elliptic integrals.
func (e *Evaluator) At(pt r3.Vec) r3.Vec {
	c := e.frame.Forward(pt)
	rho, z := c.Rho, c.Z
	r := e.params.Radius
	h := e.params.HalfLength()

	rhoP := r + rho
	rhoM := r - rho
	zetaP := h + z
	zetaM := h - z

	a1 := rhoP*rhoP + zetaP*zetaP
	a2 := rhoP*rhoP + zetaM*zetaM
	a3 := rhoM*rhoM + zetaP*zetaP
	a4 := rhoM*rhoM + zetaM*zetaM

	b1 := zetaP*zetaP + r*r
	b2 := zetaM*zetaM + r*r
	b3 := zetaP*zetaP - r*r
	b4 := zetaM*zetaM - r*r

	rho2 := rho * rho
	c1 := b1 + rho2
	c2 := b2 + rho2
	c3 := b3 + rho2
	c4 := b4 + rho2

	alphaP := 1 / math.Sqrt(a1)
	alphaM := 1 / math.Sqrt(a2)

	psiP := 4 * rho * r / a1
	psiM := 4 * rho * r / a2
	beta := 4 * rho * r / (rhoP * rhoP)

	eP, eM := elliptic.CompleteE(psiP), elliptic.CompleteE(psiM)
	kP, kM := elliptic.CompleteK(psiP), elliptic.CompleteK(psiM)
	piP, piM := elliptic.CompletePi(beta, psiP), elliptic.CompletePi(beta, psiM)

	q1 := a2*eM/alphaP - a1*eP/alphaM + c1*kP/alphaM - c2*kM/alphaP
	q2 := rhoP*zetaP*kP/alphaM + rhoP*zetaM*kM/alphaP + rhoM*zetaP*piP/alphaM + rhoM*zetaM*piM/alphaP

	a34 := a3 * a4
	denom := 4.0 * math.Pi * math.Pi * a4 * a2 * a3 * a1

	fRho := e.pre * r * (rho2*q2*(a3*c2*zetaM*eM/alphaP+a4*c1*zetaP*eP/alphaM-a34*zetaM*kM/alphaP-a34*zetaP*kP/alphaM) +
		rhoP*q1*((b1*b1+rho2*b3)*a4*eP/alphaM-(b2*b2+rho2*b4)*a3*eM/alphaP+a34*b2*kM/alphaP-a34*b1*kP/alphaM)) /
		(denom * rho2 * rho * rhoP)

	fZ := e.pre * ((q1/rho2)*(a34*zetaM*kM/alphaP+a34*zetaP*kP/alphaM-c2*zetaM*a3*eM/alphaP-c1*zetaP*a4*eP/alphaM) +
		(q2/rhoP)*(c4*a3*eM/alphaP-c3*a4*eP/alphaM-a34*kM/alphaP+a34*kP/alphaM)) / denom

	return e.frame.VectorBackward(fRho, fZ, c.Phi)
}

// Evaluate returns the drift at (x, y, z) for the magnet and particle in p.
func Evaluate(x, y, z float64, p magnet.Parameters) r3.Vec {
	return NewEvaluator(p).At(r3.Vec{X: x, Y: y, Z: z})
}
