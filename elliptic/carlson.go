// SPDX-License-Identifier: MIT

package elliptic

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// rjTolerance is the target relative error r of RJ; the duplication loop stops
// once 4^-m·(r/4)^(-1/6)·max|A0−v| drops below |A_m|.
const rjTolerance = 1.0 / (1 << 53)

var rjScale = math.Pow(rjTolerance/4, -1.0/6.0)

// RF computes Carlson's symmetric integral of the first kind,
// RF(x,y,z) = ½∫₀^∞ [(t+x)(t+y)(t+z)]^(-1/2) dt.
func RF(x, y, z float64) float64 {
	return mathext.EllipticRF(x, y, z)
}

// RD computes Carlson's symmetric integral of the second kind,
// RD(x,y,z) = RJ(x,y,z,z).
func RD(x, y, z float64) float64 {
	return mathext.EllipticRD(x, y, z)
}

// RC computes the degenerate integral RC(x,y) = RF(x,y,y) for x ≥ 0, y > 0.
// Cauchy principal values (y < 0) are not supported and give NaN.
func RC(x, y float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsNaN(y) || x < 0 || y <= 0:
		return math.NaN()
	case x == y:
		return 1 / math.Sqrt(x)
	case x == 0:
		return math.Pi / (2 * math.Sqrt(y))
	case x < y:
		d := y - x
		return math.Atan(math.Sqrt(d/x)) / math.Sqrt(d)
	default:
		d := x - y
		return math.Atanh(math.Sqrt(d/x)) / math.Sqrt(d)
	}
}

// rcOnePlus returns RC(1, 1+e) without forming 1+e.
func rcOnePlus(e float64) float64 {
	switch {
	case e == 0:
		return 1
	case e > 0:
		s := math.Sqrt(e)
		return math.Atan(s) / s
	default:
		s := math.Sqrt(-e)
		return math.Atanh(s) / s
	}
}

// RJ computes Carlson's symmetric integral of the third kind,
// RJ(x,y,z,p) = (3/2)∫₀^∞ [(t+x)(t+y)(t+z)]^(-1/2) (t+p)^(-1) dt,
// for x, y, z ≥ 0 with at most one of them zero, and p > 0.
//
// Algorithm (duplication theorem):
//  1. A0 = (x+y+z+2p)/5, δ = (p−x)(p−y)(p−z), Q = (r/4)^(-1/6)·max|A0−v|.
//  2. While 4^-m·Q ≥ |A_m|:
//     λ = √x√y + √x√z + √y√z, d = (√p+√x)(√p+√y)(√p+√z),
//     sum += 4^-m/d · RC(1, 1 + 4^-3m·δ/d²), v ← (v+λ)/4 for v in x,y,z,p,A.
//  3. Close with the degree-5 Taylor term in X, Y, Z, P = (A0−v0)/(4^m·A_m).
//
// Complexity: O(log(1/r)) iterations, O(1) memory.
func RJ(x, y, z, p float64) float64 {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) || math.IsNaN(p) ||
		x < 0 || y < 0 || z < 0 || p <= 0 ||
		x+y == 0 || x+z == 0 || y+z == 0 ||
		math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsInf(z, 0) || math.IsInf(p, 0) {
		return math.NaN()
	}

	x0, y0, z0 := x, y, z
	a0 := (x + y + z + 2*p) / 5
	a := a0
	delta := (p - x) * (p - y) * (p - z)
	q := rjScale * math.Max(math.Max(math.Abs(a0-x), math.Abs(a0-y)), math.Max(math.Abs(a0-z), math.Abs(a0-p)))

	var (
		sum = 0.0
		fac = 1.0 // 4^-m
	)
	for fac*q >= math.Abs(a) {
		sx, sy, sz, sp := math.Sqrt(x), math.Sqrt(y), math.Sqrt(z), math.Sqrt(p)
		lambda := sx*sy + sx*sz + sy*sz
		d := (sp + sx) * (sp + sy) * (sp + sz)
		e := fac * fac * fac * delta / (d * d)
		sum += fac / d * rcOnePlus(e)

		fac *= 0.25
		x = 0.25 * (x + lambda)
		y = 0.25 * (y + lambda)
		z = 0.25 * (z + lambda)
		p = 0.25 * (p + lambda)
		a = 0.25 * (a + lambda)
	}

	scale := fac / a
	dx := (a0 - x0) * scale
	dy := (a0 - y0) * scale
	dz := (a0 - z0) * scale
	dp := -(dx + dy + dz) / 2

	xyz := dx * dy * dz
	p2 := dp * dp
	e2 := dx*dy + dx*dz + dy*dz - 3*p2
	e3 := xyz + 2*e2*dp + 4*p2*dp
	e4 := (2*xyz + e2*dp + 3*p2*dp) * dp
	e5 := xyz * p2

	series := 1 - 3*e2/14 + e3/6 + 9*e2*e2/88 - 3*e4/22 - 9*e2*e3/52 + 3*e5/26

	return fac*series/(a*math.Sqrt(a)) + 6*sum
}
