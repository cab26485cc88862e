// SPDX-License-Identifier: MIT

// Package field evaluates the magnetic field strength H of a uniformly, axially
// magnetised finite cylinder at arbitrary lab points.
//
// The closed form is Caciagli et al. (2018), "Exact expression for the magnetic
// field of a finite cylinder with arbitrary uniform magnetization", JMMM 456,
// Eq. (3)-(4). For a point at (ρ, z) in the magnet frame, with R the radius,
// h = L/2 and M the magnetisation:
//
//	ρ± = R ± ρ            (ρ₊ floored at 1e-2)
//	ζ± = h ± z
//	α± = 1/√(ζ±² + ρ₊²)
//	β₊ = ζ₊α₊,  β₋ = −ζ₋α₋
//	γ  = (ρ − R)/(ρ + R)
//	k± = √((ζ±² + ρ₋²)/(ζ±² + ρ₊²))
//
//	H_ρ = R·(M/π)·(α₊P1(k₊) − α₋P1(k₋))
//	H_z = R·(M/(πρ₊))·(β₊P2(k₊, γ) − β₋P2(k₋, γ))
//
// The cylindrical components are rotated back to the lab frame. For points
// strictly inside the magnet M is subtracted from the lab z component. The
// correction is applied after the rotation, so for a rotated magnet it acts
// along lab z rather than along the magnet axis; callers working with tilted
// magnets should not rely on interior values.
//
// Units follow the inputs: with the default parameter set (mm, A/mm) H is in A/mm.
//
// Evaluation is pure. An Evaluator caches the frame trigonometry for batches and
// is safe for concurrent use.
package field
