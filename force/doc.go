// SPDX-License-Identifier: MIT

// Package force evaluates the magnetophoretic drift of a small spherical
// particle in the field gradient of a finite cylindrical magnet.
//
// The returned vector is the particle drift velocity, mobility·F, with the
// Stokes mobility 1/(6πηr) of a sphere of radius r in a fluid of viscosity η and
// the force on a constant-moment sphere of volume V = 4/3·π·r³ in the
// Caciagli closed form:
//
//	F = mobility · M² · μ · V · (F_ρ, F_z)
//
// F_ρ and F_z combine the complete elliptic integrals K, E and Π at parameters
// ψ± = 4ρR/a₁,₂ and β = 4ρR/ρ₊² through the auxiliary sums Q1 and Q2; see At
// for the full expression. The result is rotated back to the lab frame with the
// same transform as the field.
//
// Singular points:
//
//   - On the magnet axis ρ sits at coords.MinRho. The 1/ρ³ prefactor of F_ρ is
//     balanced by its bracket, so both components stay finite and agree with
//     nearby off-axis points; no extra guard is applied.
//   - On the rim circle (ρ = R, |z| = L/2) a₃ or a₄ vanishes and the output is
//     non-finite. It is returned as is.
package force
