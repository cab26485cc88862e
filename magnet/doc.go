// SPDX-License-Identifier: MIT

// Package magnet defines the parameter record of a uniformly magnetized finite
// cylinder and of the particle it acts on.
//
// Parameters is a plain value: construct it once (magnet.New, config.Load or a
// struct literal) and pass it by value to every evaluation. Nothing in the
// numeric core mutates it.
//
// Geometry:
//
//	          z_local
//	            ▲
//	       ┌────┼────┐  ─┬─
//	       │    │    │   │ Length
//	       │    ●────┼───┼──▶ center = Position
//	       │         │   │
//	       └─────────┘  ─┴─
//	       ◀─Radius─▶
//
// The local frame is reached from the lab frame by translating by -Position and
// rotating by RotationX (gamma) then RotationY (beta), both in degrees; see
// package coords for the exact composition.
//
// Units are never enforced: callers supply a self-consistent set, e.g.
// mm, g, s, A (the defaults below) or SI.
package magnet
