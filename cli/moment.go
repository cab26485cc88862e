// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cylmag/particle"
)

// MomentOptions holds flags for the moment command.
type MomentOptions struct {
	Field  float64 // |H| at the particle
	Volume float64 // particle volume; 0 uses the parameter set's sphere
}

// MomentResult is the output of the moment command.
type MomentResult struct {
	Model  string `json:"model"`
	Field  Number `json:"field"`
	Volume Number `json:"volume"`
	Moment Number `json:"moment"`
}

// Text renders the moment with its inputs.
func (r MomentResult) Text() string {
	return fmt.Sprintf("moment: %s (model %s, |H| %s, volume %s)",
		formatNumber(float64(r.Moment)), r.Model, formatNumber(float64(r.Field)), formatNumber(float64(r.Volume)))
}

// NewMomentCommand creates the moment command.
func NewMomentCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MomentOptions{}

	cmd := &cobra.Command{
		Use:   "moment",
		Short: "Effective magnetic moment of a particle",
		Long: `Compute the effective moment of a particle in a field of magnitude --h using
the magnetisation model of the parameter set. Without --volume the particle is
the sphere of radius radius_particle.`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMoment(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Field, "h", 0, "field magnitude |H| at the particle (required)")
	cmd.Flags().Float64Var(&opts.Volume, "volume", 0, "particle volume (default: sphere of radius_particle)")

	return cmd
}

func runMoment(rootOpts *RootOptions, opts *MomentOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	if !cmd.Flags().Changed("h") {
		return fail(formatter, ErrCodeArgs, ExitCommandError, "--h", fmt.Errorf("flag is required"))
	}
	if opts.Field < 0 || math.IsNaN(opts.Field) || math.IsInf(opts.Field, 0) {
		return fail(formatter, ErrCodeArgs, ExitCommandError, "--h",
			fmt.Errorf("field magnitude must be finite and >= 0, got %v", opts.Field))
	}
	if opts.Volume < 0 || math.IsNaN(opts.Volume) || math.IsInf(opts.Volume, 0) {
		return fail(formatter, ErrCodeArgs, ExitCommandError, "--volume",
			fmt.Errorf("volume must be finite and >= 0, got %v", opts.Volume))
	}

	p, err := loadParams(rootOpts, formatter)
	if err != nil {
		return err
	}

	model := p.MagnetisationModel()
	volume := opts.Volume
	if volume == 0 {
		volume = p.ParticleVolume()
	}

	return formatter.Success(MomentResult{
		Model:  model.Name(),
		Field:  Number(opts.Field),
		Volume: Number(volume),
		Moment: Number(particle.EffectiveMoment(model, opts.Field, volume)),
	})
}
