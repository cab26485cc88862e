// SPDX-License-Identifier: MIT

// Package particle describes the small magnetizable particle that the force
// evaluator acts on: its volume, its Stokes mobility in a viscous fluid and the
// magnetisation model that turns an applied field into an effective moment.
//
// Magnetisation models are a closed set resolved once, at construction time:
//
//	m, err := particle.ParseModel("linear_saturation", 480) // ErrInvalidModel on typos
//	moment := particle.EffectiveMoment(m, hMagnitude, particle.Volume(radius))
//
// Supported models:
//   - Constant: moment factor 1, independent of the field.
//   - LinearSaturation: factor 3 below Ms/3, Ms/|H| above (linear up to saturation).
//
// All functions are pure and safe for concurrent use.
package particle
