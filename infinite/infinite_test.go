// SPDX-License-Identifier: MIT

package infinite_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/infinite"
	"github.com/katalvlaran/cylmag/magnet"
)

func TestForce_Value(t *testing.T) {
	p := magnet.Default()
	// M²μV R⁴ with V = 4/3·π·(1e-4)³
	k := 1e6 * 1.25663706212 * (4.0 / 3.0) * math.Pi * 1e-12 * math.Pow(2.5, 4)

	f := infinite.Force(3, 7, 4, p)
	assert.InEpsilon(t, -k*3/(2*math.Pow(25, 3)), f.X, 1e-14)
	assert.Equal(t, 0.0, f.Y)
	assert.InEpsilon(t, -k*4/(2*math.Pow(25, 3)), f.Z, 1e-14)
}

// TestForce_Geometry: the force points at the axis and falls off as 1/r⁵.
func TestForce_Geometry(t *testing.T) {
	p, err := magnet.New(magnet.WithPosition(1, 0, -2))
	require.NoError(t, err)

	near := infinite.Force(4, 0, 2, p) // offset (3, 4)
	far := infinite.Force(7, 0, 6, p)  // offset (6, 8)
	assert.Less(t, near.X, 0.0)
	assert.Less(t, near.Z, 0.0)
	assert.InEpsilon(t, 3.0/4.0, near.X/near.Z, 1e-14)
	assert.InEpsilon(t, 32.0, r3.Norm(near)/r3.Norm(far), 1e-12)
	assert.Equal(t, 0.0, far.Y)
	assert.Equal(t, near, infinite.Force(4, -100, 2, p), "independent of y")
}

// TestForce_IgnoresLengthAndRotation documents what the approximation drops.
func TestForce_IgnoresLengthAndRotation(t *testing.T) {
	p, err := magnet.New(magnet.WithLength(50), magnet.WithRotation(30, 60), magnet.WithViscosity(1))
	require.NoError(t, err)
	assert.Equal(t, infinite.Force(3, 0, 4, magnet.Default()), infinite.Force(3, 0, 4, p))
}

func TestForce_AxisIsSingular(t *testing.T) {
	f := infinite.Force(0, 0, 0, magnet.Default())
	assert.True(t, math.IsNaN(f.X) || math.IsInf(f.X, 0))
}
