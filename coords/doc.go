// SPDX-License-Identifier: MIT

// Package coords maps between the lab frame and the magnet-local cylindrical
// frame.
//
// Forward (points):
//
//	(x, y, z) ─ −Position ─▶ rotate(γ, β) ─▶ (ξ, η, ζ) ─▶ (ρ, φ, z)
//
//	ξ =  x·cosβ + y·sinβ·sinγ + z·sinβ·cosγ
//	η =           y·cosγ      − z·sinγ
//	ζ = −x·sinβ + y·cosβ·sinγ + z·cosβ·cosγ
//
// with γ = RotationX and β = RotationY. The composition is hard-wired: γ always
// mixes the y/z axes first, β then mixes x with (y, z). It is not a generic
// Euler-angle API and the evaluators depend on this exact order.
//
// VectorBackward (field and force components) applies the transpose rotation
// to (ρc·cosφ, ρc·sinφ, zc) without translation. BackwardMagnetX/Y rebuild lab
// positions of local points (rotation plus translation) for the magnet outline.
//
// ρ is floored at MinRho so that points on the magnet axis never divide by zero
// downstream.
package coords
