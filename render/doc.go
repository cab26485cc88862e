// SPDX-License-Identifier: MIT

// Package render draws sweep results with gonum/plot: a heat map of the sample
// magnitudes with the magnet's cross-section outlined on top.
//
// Non-finite samples are left blank. WithCeiling clips large magnitudes so that
// the singular neighbourhood of the magnet edges does not wash out the colour
// scale, the same role vmax plays in a contour plot.
package render
