// SPDX-License-Identifier: MIT

// Package config reads and writes magnet parameter files.
//
// A parameter file is a flat YAML mapping whose keys mirror the parameter
// dictionary used by the reference scripts:
//
//	radius_magnet: 2.5
//	length: 5.0
//	x_position: 0.0
//	y_position: 0.0
//	z_position: 0.0
//	rotation_x: 0
//	rotation_y: 0
//	magnetic_permeability: 1.25663706212
//	magnetization: 1000
//	dynamic_viscosity_fluid: 0.001
//	radius_particle: 1.0e-4
//	magnetisation_model: constant
//	particle_saturation_magnetization: 0
//
// Keys that are absent keep the value of the base preset; unknown keys are
// rejected. The magnetisation model name is resolved once, here, so an invalid
// name fails when the file is loaded and never during evaluation.
//
// Presets:
//
//   - "base": mm, g, s, A units; R = 2.5, L = 5, M = 1e3 (magnet.Default).
//   - "si":   SI units; R = 2 mm, L = 7 mm, M = 1.05e6 A/m, 100 nm particle.
//   - "rod":  base units with the R = 2, L = 7 magnet of the 3D plots.
package config
