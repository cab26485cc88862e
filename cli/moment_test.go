// SPDX-License-Identifier: MIT

package cli

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMomentCommand(t *testing.T) {
	t.Run("constant with volume", func(t *testing.T) {
		out, _, err := execute(t, "moment", "--h", "10", "--volume", "2")
		require.NoError(t, err)
		assert.Equal(t, "moment: 2 (model constant, |H| 10, volume 2)\n", out)
	})

	t.Run("sphere of the parameter set", func(t *testing.T) {
		out, _, err := execute(t, "moment", "--h", "10", "--format", "json")
		require.NoError(t, err)

		var got struct {
			Volume float64 `json:"volume"`
			Moment float64 `json:"moment"`
		}
		decode(t, out, &got)
		want := 4.0 / 3.0 * math.Pi * math.Pow(100e-6, 3)
		assert.InEpsilon(t, want, got.Volume, 1e-12)
		assert.InEpsilon(t, want, got.Moment, 1e-12)
	})

	t.Run("linear saturation", func(t *testing.T) {
		path := writeParams(t, "magnetisation_model: linear_saturation\nparticle_saturation_magnetization: 30\n")

		// below a third of saturation the factor is 3
		out, _, err := execute(t, "moment", "--h", "5", "--volume", "1", "--params", path)
		require.NoError(t, err)
		assert.Contains(t, out, "moment: 3 (model linear_saturation")

		// above it the particle is saturated: 30/60
		out, _, err = execute(t, "moment", "--h", "60", "--volume", "1", "--params", path)
		require.NoError(t, err)
		assert.Contains(t, out, "moment: 0.5 ")
	})
}

func TestMomentCommand_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"missing h", []string{"moment"}},
		{"negative h", []string{"moment", "--h", "-1"}},
		{"negative volume", []string{"moment", "--h", "1", "--volume", "-2"}},
		{"positional argument", []string{"moment", "extra", "--h", "1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}
