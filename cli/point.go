// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/field"
	"github.com/katalvlaran/cylmag/force"
	"github.com/katalvlaran/cylmag/infinite"
	"github.com/katalvlaran/cylmag/magnet"
)

// PointResult is the output of the field, force and infinite commands.
type PointResult struct {
	Quantity  string    `json:"quantity"`
	Point     [3]Number `json:"point"`
	Vector    [3]Number `json:"vector"`
	Magnitude Number    `json:"magnitude"`
}

// Text renders the vector components and the magnitude on two lines.
func (r PointResult) Text() string {
	return fmt.Sprintf("%s at (%s, %s, %s): %s %s %s\nmagnitude: %s",
		r.Quantity,
		formatNumber(float64(r.Point[0])), formatNumber(float64(r.Point[1])), formatNumber(float64(r.Point[2])),
		formatNumber(float64(r.Vector[0])), formatNumber(float64(r.Vector[1])), formatNumber(float64(r.Vector[2])),
		formatNumber(float64(r.Magnitude)),
	)
}

type pointFunc func(x, y, z float64, p magnet.Parameters) r3.Vec

// NewFieldCommand creates the field command.
func NewFieldCommand(rootOpts *RootOptions) *cobra.Command {
	return newPointCommand(rootOpts, "field", "Magnetic field strength H at a lab point",
		`Evaluate the field strength H of the magnet at the lab point (x, y, z).
Units follow the parameter set: A/mm with the base preset.`,
		field.Evaluate)
}

// NewForceCommand creates the force command.
func NewForceCommand(rootOpts *RootOptions) *cobra.Command {
	return newPointCommand(rootOpts, "force", "Magnetophoretic drift velocity at a lab point",
		`Evaluate the drift velocity mobility·F of a magnetic particle at the lab point
(x, y, z): the magnetic force F on the particle times its Stokes mobility
1/(6πηr). Components on the rim circle of the magnet are not finite and print as NaN
(null in JSON).`,
		force.Evaluate)
}

// NewInfiniteCommand creates the infinite command.
func NewInfiniteCommand(rootOpts *RootOptions) *cobra.Command {
	return newPointCommand(rootOpts, "infinite", "Magnetic force of the infinitely long magnet approximation",
		`Evaluate the magnetic force F (no mobility factor) of an infinitely long
cylinder of the same radius at the lab point (x, y, z). The y coordinate, the
magnet length, its y position and its rotation are ignored.`,
		infinite.Force)
}

func newPointCommand(rootOpts *RootOptions, name, short, long string, eval pointFunc) *cobra.Command {
	return &cobra.Command{
		Use:           name + " <x> <y> <z>",
		Short:         short,
		Long:          long,
		Args:          exactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoint(rootOpts, cmd, name, args, eval)
		},
	}
}

func runPoint(opts *RootOptions, cmd *cobra.Command, name string, args []string, eval pointFunc) error {
	formatter := newFormatter(opts, cmd)

	var pt [3]float64
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fail(formatter, ErrCodeArgs, ExitCommandError,
				fmt.Sprintf("coordinate %d", i+1), err)
		}
		pt[i] = v
	}

	p, err := loadParams(opts, formatter)
	if err != nil {
		return err
	}

	v := eval(pt[0], pt[1], pt[2], p)
	formatter.VerboseLog("%s(%v, %v, %v) = %v", name, pt[0], pt[1], pt[2], v)

	return formatter.Success(PointResult{
		Quantity:  name,
		Point:     [3]Number{Number(pt[0]), Number(pt[1]), Number(pt[2])},
		Vector:    [3]Number{Number(v.X), Number(v.Y), Number(v.Z)},
		Magnitude: Number(r3.Norm(v)),
	})
}
