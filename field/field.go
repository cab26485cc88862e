// SPDX-License-Identifier: MIT

package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/coords"
	"github.com/katalvlaran/cylmag/elliptic"
	"github.com/katalvlaran/cylmag/magnet"
)

// MinRhoPlus is the floor applied to ρ₊ = R + ρ.
const MinRhoPlus = 1e-2

// P1 is the auxiliary function
//
//	P1(k) = K(1−k²) − 2/(1−k²)·(K(1−k²) − E(1−k²)).
func P1(k float64) float64 {
	k2 := k * k
	kk := elliptic.CompleteK(1 - k2)
	ee := elliptic.CompleteE(1 - k2)

	return kk - (2/(1-k2))*(kk-ee)
}

// P2 is the auxiliary function
//
//	P2(k, γ) = −γ/(1−γ²)·(Π(1−γ², 1−k²) − K(1−k²)) − 1/(1−γ²)·(γ²Π(1−γ², 1−k²) − K(1−k²)).
func P2(k, gamma float64) float64 {
	k2 := k * k
	g2 := gamma * gamma
	kk := elliptic.CompleteK(1 - k2)
	pi := elliptic.CompletePi(1-g2, 1-k2)

	return -(gamma/(1-g2))*(pi-kk) - (1/(1-g2))*(g2*pi-kk)
}

// Evaluator computes H for one magnet.
type Evaluator struct {
	params magnet.Parameters
	frame  coords.Frame
}

// NewEvaluator binds p. p is not validated; see magnet.Parameters.Validate.
func NewEvaluator(p magnet.Parameters) *Evaluator {
	return &Evaluator{params: p, frame: coords.NewFrame(p)}
}

// Parameters returns the bound parameter set.
func (e *Evaluator) Parameters() magnet.Parameters { return e.params }

// At returns H at the lab point pt.
// Implementation:
//   - Stage 1: map pt to (ρ, φ, z) in the magnet frame.
//   - Stage 2: auxiliary quantities, Caciagli Eq. (3) for H_ρ and H_z.
//   - Stage 3: rotate (H_ρ, H_z) back to lab components.
//   - Stage 4: subtract M from lab H_z for interior points.
//
// Complexity: O(1), six complete elliptic integrals.
func (e *Evaluator) At(pt r3.Vec) r3.Vec {
	c := e.frame.Forward(pt)
	rho, z := c.Rho, c.Z

	r := e.params.Radius
	h := e.params.HalfLength()
	m := e.params.Magnetization

	rhoP := r + rho
	if math.Abs(rhoP) < MinRhoPlus {
		rhoP = MinRhoPlus
	}
	rhoM := r - rho
	zetaP := h + z
	zetaM := h - z

	alphaP := 1 / math.Sqrt(zetaP*zetaP+rhoP*rhoP)
	alphaM := 1 / math.Sqrt(zetaM*zetaM+rhoP*rhoP)
	betaP := zetaP * alphaP
	betaM := -zetaM * alphaM
	gamma := (rho - r) / (rho + r)
	kP := math.Sqrt((zetaP*zetaP + rhoM*rhoM) / (zetaP*zetaP + rhoP*rhoP))
	kM := math.Sqrt((zetaM*zetaM + rhoM*rhoM) / (zetaM*zetaM + rhoP*rhoP))

	hRho := r * (m / math.Pi) * (alphaP*P1(kP) - alphaM*P1(kM))
	hZ := r * (m / (math.Pi * rhoP)) * (betaP*P2(kP, gamma) - betaM*P2(kM, gamma))

	out := e.frame.VectorBackward(hRho, hZ, c.Phi)
	if rho < r && math.Abs(z) < h {
		out.Z -= m
	}

	return out
}

// Evaluate returns H at (x, y, z) for the magnet p.
func Evaluate(x, y, z float64, p magnet.Parameters) r3.Vec {
	return NewEvaluator(p).At(r3.Vec{X: x, Y: y, Z: z})
}
