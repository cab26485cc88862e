// SPDX-License-Identifier: MIT

package elliptic

// SingularityOffset is the distance from 1 at which m and n are placed when they
// hit the logarithmic singularity of K and E (m = 1) or the pole of Π (n = 1).
const SingularityOffset = 1e-9

// roundOffSlack bounds how far above 1 a parameter may drift through floating
// round-off and still be treated as exactly 1.
const roundOffSlack = 1e-12

// regularize moves v to 1−SingularityOffset when it equals 1, or exceeds 1 by
// round-off only. Anything else is returned unchanged.
func regularize(v float64) float64 {
	if v >= 1 && v <= 1+roundOffSlack {
		return 1 - SingularityOffset
	}

	return v
}

// CompleteK computes the complete elliptic integral of the first kind,
// K(m) = ∫₀^{π/2} (1 − m sin²θ)^(-1/2) dθ = RF(0, 1−m, 1).
//
// m = 1 is evaluated at 1−SingularityOffset. m > 1 (beyond round-off) gives NaN.
func CompleteK(m float64) float64 {
	m = regularize(m)

	return RF(0, 1-m, 1)
}

// CompleteE computes the complete elliptic integral of the second kind,
// E(m) = ∫₀^{π/2} (1 − m sin²θ)^(1/2) dθ = RF(0, 1−m, 1) − (m/3)·RD(0, 1−m, 1).
//
// m = 1 is evaluated at 1−SingularityOffset.
func CompleteE(m float64) float64 {
	m = regularize(m)
	y := 1 - m

	return RF(0, y, 1) - (m/3)*RD(0, y, 1)
}

// CompletePi computes the complete elliptic integral of the third kind,
// Π(n, m) = ∫₀^{π/2} (1 − n sin²θ)^(-1) (1 − m sin²θ)^(-1/2) dθ
//
//	= RF(0, 1−m, 1) + (n/3)·RJ(0, 1−m, 1, 1−n).
//
// m = 1 and n = 1 are regularized independently. n > 1 (beyond round-off)
// would need a Cauchy principal value and gives NaN.
func CompletePi(n, m float64) float64 {
	m = regularize(m)
	n = regularize(n)
	y := 1 - m

	return RF(0, y, 1) + (n/3)*RJ(0, y, 1, 1-n)
}
