// SPDX-License-Identifier: MIT

// Package cylmag computes the magnetic field and the magnetophoretic force of a
// uniformly, axially magnetised finite cylinder, in closed form.
//
// What is cylmag?
//
//	A small numeric library plus a command line built on top of it:
//		• Field: H at any lab point (Caciagli et al. 2018)
//		• Force: drift velocity mobility·F of a magnetic particle, via Q1/Q2 auxiliaries
//		• Infinite: the infinitely long magnet approximation (Furlani & Ng 2006)
//		• Sweeps: concurrent evaluation over xz, yz or xy grids
//		• Output: CSV, PNG heat maps with the magnet outline, a SQLite run archive
//
// Packages:
//
//	elliptic/ : complete elliptic integrals K, E, Π on Carlson symmetric forms
//	magnet/   : the parameter set (geometry, pose, material, particle, fluid)
//	particle/ : magnetisation models, particle volume and mobility
//	coords/   : lab ↔ magnet frame transforms, projected outlines
//	field/    : H of the finite cylinder
//	force/    : particle drift velocity (mobility·F) of the finite cylinder
//	infinite/ : force of the infinite cylinder
//	sweep/    : planar grids, worker pool, Result, CSV
//	render/   : gonum/plot heat maps
//	config/   : YAML parameter files and presets
//	store/    : SQLite archive of sweep runs
//	cli/      : the cylmag command (cmd/cylmag)
//
// Quick start:
//
//	p, err := magnet.New(magnet.WithRotation(0, 30))
//	if err != nil {
//		log.Fatal(err)
//	}
//	h := field.Evaluate(3, 0, 4, p)
//	f := force.Evaluate(3, 0, 4, p)
//
// All evaluators are pure functions of (point, parameters). Units follow the
// inputs; the base preset works in mm, g, s and A.
package cylmag
