// SPDX-License-Identifier: MIT

package particle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cylmag/particle"
)

// TestParseModel_Known verifies both supported names resolve to their variants.
func TestParseModel_Known(t *testing.T) {
	m, err := particle.ParseModel(particle.NameConstant, 0)
	require.NoError(t, err)
	assert.Equal(t, particle.Constant{}, m)

	m, err = particle.ParseModel(particle.NameLinearSaturation, 480)
	require.NoError(t, err)
	assert.Equal(t, particle.LinearSaturation{Saturation: 480}, m)
	assert.Equal(t, "linear_saturation", m.Name())
}

// TestParseModel_Invalid checks the only hard failure of the system: an unknown model.
func TestParseModel_Invalid(t *testing.T) {
	for _, name := range []string{"", "Constant", "linear", "saturation"} {
		_, err := particle.ParseModel(name, 1)
		assert.ErrorIs(t, err, particle.ErrInvalidModel, "name %q", name)
	}
}

func TestParseModel_BadSaturation(t *testing.T) {
	for _, ms := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := particle.ParseModel(particle.NameLinearSaturation, ms)
		assert.ErrorIs(t, err, particle.ErrBadSaturation, "saturation %v", ms)
	}
}

// TestEffectiveMoment_LinearSaturation walks across the Ms/3 knee.
func TestEffectiveMoment_LinearSaturation(t *testing.T) {
	m := particle.LinearSaturation{Saturation: 300}
	const v = 2.0

	assert.Equal(t, 6.0, particle.EffectiveMoment(m, 0, v), "zero field is linear")
	assert.Equal(t, 6.0, particle.EffectiveMoment(m, 99.9, v), "below knee")
	assert.InDelta(t, 6.0, particle.EffectiveMoment(m, 100, v), 1e-12, "continuous at knee")
	assert.InDelta(t, 1.2, particle.EffectiveMoment(m, 500, v), 1e-12, "saturated: Ms/H·V")
}

func TestEffectiveMoment_ConstantAndNil(t *testing.T) {
	assert.Equal(t, 5.0, particle.EffectiveMoment(particle.Constant{}, 1e9, 5))
	assert.Equal(t, 5.0, particle.EffectiveMoment(nil, 3, 5), "nil model behaves as Constant")
}

func TestVolumeAndMobility(t *testing.T) {
	assert.InDelta(t, 4.0/3.0*math.Pi, particle.Volume(1), 1e-15)
	assert.InDelta(t, 32.0/3.0*math.Pi, particle.Volume(2), 1e-13)
	assert.InDelta(t, particle.Volume(2), particle.SphereMoment(particle.Constant{}, 7, 2), 1e-13)

	// 1/(6π·0.001·100e-6) for the reference fixture.
	assert.InEpsilon(t, 1/(6*math.Pi*1e-7), particle.Mobility(0.001, 100e-6), 1e-14)
}
