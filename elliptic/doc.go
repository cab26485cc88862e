// SPDX-License-Identifier: MIT

// Package elliptic evaluates the complete elliptic integrals of the first,
// second and third kind through Carlson's symmetric forms.
//
//	K(m)    = RF(0, 1−m, 1)
//	E(m)    = RF(0, 1−m, 1) − (m/3)·RD(0, 1−m, 1)
//	Π(n, m) = RF(0, 1−m, 1) + (n/3)·RJ(0, 1−m, 1, 1−n)
//
// m is the parameter (modulus squared), n the characteristic.
//
// Singularities:
//
//	K and E diverge logarithmically at m = 1 and Π has a pole at n = 1. Both
//	arguments are moved to 1−1e-9 when they hit 1 (or exceed it by round-off
//	only), so the evaluators built on top never see NaN or Inf at degenerate
//	geometry. The value near the boundary is an approximation, not exact.
//	m < 0 and n < 0 are in the domain and give finite real results.
//
// Primitives:
//   - RF, RD come from gonum.org/v1/gonum/mathext.
//   - RJ, RC are implemented here (duplication theorem, Carlson 1995).
//
// Every function is pure and safe for concurrent use. No errors are returned:
// arguments outside the domain give NaN.
package elliptic
