// SPDX-License-Identifier: MIT

// Package sweep evaluates field or force quantities over a rectangular grid in
// one lab plane and collects the results for export and plotting.
//
// What:
//
//   - Plane: an axis-aligned section (XZ, YZ or XY) at a fixed offset along the
//     third axis, sampled by two linearly spaced Axis values.
//   - Run: fans grid rows out over a bounded worker pool. Evaluators are pure, so
//     every worker shares one Evaluator built from the magnet parameters.
//   - Result: row-major vectors, a magnitude matrix (rows follow V, columns
//     follow U) and a count of non-finite samples. Result implements
//     plotter.GridXYZ so it can be handed to gonum/plot directly.
//   - WriteCSV: one row per sample.
//
// Complexity:
//
//   - Run: O(U·V) evaluations, Memory: O(U·V).
//
// Options:
//
//   - WithWorkers(n): number of goroutines (default GOMAXPROCS).
//   - WithLogger(l): structured progress logging (default: discarded).
//
// Errors:
//
//   - ErrBadAxis: fewer than two samples, Min ≥ Max or non-finite bounds.
//   - ErrBadPlane: unknown plane kind or non-finite offset.
//   - ErrUnknownQuantity: Quantity outside Field, Force, InfiniteForce.
//   - ErrShape: vectors do not match the plane dimensions.
//   - ctx.Err() when the context is cancelled before all rows finish.
package sweep
