// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/sweep"
)

func TestClipped_Z(t *testing.T) {
	plane, err := sweep.NewPlane(sweep.XZ, sweep.Axis{Min: 0, Max: 1, N: 2}, sweep.Axis{Min: 0, Max: 1, N: 2}, 0)
	require.NoError(t, err)
	res, err := sweep.NewResult(plane, sweep.Field, []r3.Vec{
		{X: 3, Y: 4},
		{Z: math.Inf(1)},
		{X: math.NaN()},
		{Z: 0.5},
	})
	require.NoError(t, err)

	g := clipped{Result: res, ceiling: 2}
	assert.Equal(t, 2.0, g.Z(0, 0))
	assert.True(t, math.IsNaN(g.Z(1, 0)))
	assert.True(t, math.IsNaN(g.Z(0, 1)))
	assert.Equal(t, 0.5, g.Z(1, 1))

	g.ceiling = 0
	assert.Equal(t, 5.0, g.Z(0, 0), "zero ceiling disables clipping")
}
