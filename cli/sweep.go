// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/cylmag/magnet"
	"github.com/katalvlaran/cylmag/render"
	"github.com/katalvlaran/cylmag/store"
	"github.com/katalvlaran/cylmag/sweep"
)

// SweepOptions holds flags for the sweep command.
type SweepOptions struct {
	Plane     string
	U         string
	V         string
	Offset    float64
	Quantity  string
	CSV       string
	PNG       string
	Ceiling   float64
	Size      float64 // PNG edge length in centimetres
	NoOutline bool
	DB        string
	Workers   int
}

// SweepResult is the output of the sweep command.
type SweepResult struct {
	Quantity  string `json:"quantity"`
	Plane     string `json:"plane"`
	U         string `json:"u"`
	V         string `json:"v"`
	Offset    Number `json:"offset"`
	Samples   int    `json:"samples"`
	NonFinite int    `json:"non_finite"`
	Min       Number `json:"min"`
	Max       Number `json:"max"`
	CSV       string `json:"csv,omitempty"`
	PNG       string `json:"png,omitempty"`
	RunID     string `json:"run_id,omitempty"`
}

// Text renders a short summary of the sweep and its outputs.
func (r SweepResult) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s over %s plane at %s: %d samples, %d non-finite\n",
		r.Quantity, r.Plane, formatNumber(float64(r.Offset)), r.Samples, r.NonFinite)
	fmt.Fprintf(&b, "magnitude: min %s, max %s", formatNumber(float64(r.Min)), formatNumber(float64(r.Max)))
	if r.CSV != "" {
		fmt.Fprintf(&b, "\ncsv: %s", r.CSV)
	}
	if r.PNG != "" {
		fmt.Fprintf(&b, "\npng: %s", r.PNG)
	}
	if r.RunID != "" {
		fmt.Fprintf(&b, "\nrun: %s", r.RunID)
	}

	return b.String()
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate a quantity over a planar grid",
		Long: `Evaluate the field, the drift velocity (force) or the infinite-magnet force
over a regular grid in the xz, yz or xy plane. Axes are given as min:max:n.

The grid can be written as CSV, rendered as a PNG heat map of the magnitude
with the magnet outline, and archived in a SQLite database. Interrupting the
command cancels the sweep.`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runSweep(ctx, rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Plane, "plane", "xz", "grid plane (xz|yz|xy)")
	cmd.Flags().StringVar(&opts.U, "u", "-10:10:101", "first in-plane axis min:max:n")
	cmd.Flags().StringVar(&opts.V, "v", "-10:10:101", "second in-plane axis min:max:n")
	cmd.Flags().Float64Var(&opts.Offset, "offset", 0, "coordinate along the plane normal")
	cmd.Flags().StringVarP(&opts.Quantity, "quantity", "q", "force", "quantity (field|force|infinite)")
	cmd.Flags().StringVar(&opts.CSV, "csv", "", "write samples to this CSV file")
	cmd.Flags().StringVar(&opts.PNG, "png", "", "write a magnitude heat map to this PNG file")
	cmd.Flags().Float64Var(&opts.Ceiling, "ceiling", 0, "clip heat map magnitudes above this value (0: no clipping)")
	cmd.Flags().BoolVar(&opts.NoOutline, "no-outline", false, "do not draw the magnet outline on the heat map")
	cmd.Flags().Float64Var(&opts.Size, "size", 12, "heat map edge length in cm")
	cmd.Flags().StringVar(&opts.DB, "db", "", "archive the run in this SQLite database")
	cmd.Flags().IntVar(&opts.Workers, "workers", sweep.DefaultWorkers(), "number of worker goroutines")

	return cmd
}

func runSweep(ctx context.Context, rootOpts *RootOptions, opts *SweepOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	plane, q, err := parseSweep(opts)
	if err != nil {
		return fail(formatter, ErrCodeArgs, ExitCommandError, "sweep", err)
	}

	p, err := loadParams(rootOpts, formatter)
	if err != nil {
		return err
	}

	res, err := sweep.Run(ctx, plane, p, q,
		sweep.WithWorkers(opts.Workers),
		sweep.WithLogger(formatter.Logger()),
	)
	if err != nil {
		return fail(formatter, ErrCodeEval, ExitFailure, "sweep", err)
	}

	out := SweepResult{
		Quantity:  q.String(),
		Plane:     plane.Kind.String(),
		U:         plane.U.String(),
		V:         plane.V.String(),
		Offset:    Number(plane.Offset),
		Samples:   plane.Size(),
		NonFinite: res.NonFinite,
		Min:       Number(math.NaN()),
		Max:       Number(math.NaN()),
	}
	if v, ok := res.Min(); ok {
		out.Min = Number(v)
	}
	if v, ok := res.Max(); ok {
		out.Max = Number(v)
	}

	if opts.CSV != "" {
		if err := writeCSVFile(opts.CSV, res); err != nil {
			return fail(formatter, ErrCodeOutput, ExitFailure, "write csv", err)
		}
		out.CSV = opts.CSV
	}
	if opts.PNG != "" {
		if err := writeHeatMap(opts, res, p); err != nil {
			return fail(formatter, ErrCodeOutput, ExitFailure, "write png", err)
		}
		out.PNG = opts.PNG
	}
	if opts.DB != "" {
		id, err := archiveRun(ctx, opts.DB, res, p)
		if err != nil {
			return fail(formatter, ErrCodeStore, ExitFailure, "archive run", err)
		}
		out.RunID = id
	}

	return formatter.Success(out)
}

// parseSweep validates the flag values that would otherwise panic or fail deep
// inside the sweep.
func parseSweep(opts *SweepOptions) (sweep.Plane, sweep.Quantity, error) {
	kind, err := sweep.ParseKind(opts.Plane)
	if err != nil {
		return sweep.Plane{}, 0, err
	}
	u, err := sweep.ParseAxis(opts.U)
	if err != nil {
		return sweep.Plane{}, 0, fmt.Errorf("--u: %w", err)
	}
	v, err := sweep.ParseAxis(opts.V)
	if err != nil {
		return sweep.Plane{}, 0, fmt.Errorf("--v: %w", err)
	}
	plane, err := sweep.NewPlane(kind, u, v, opts.Offset)
	if err != nil {
		return sweep.Plane{}, 0, err
	}
	q, err := sweep.ParseQuantity(opts.Quantity)
	if err != nil {
		return sweep.Plane{}, 0, err
	}
	if opts.Workers < 1 {
		return sweep.Plane{}, 0, fmt.Errorf("--workers must be >= 1, got %d", opts.Workers)
	}
	if opts.Ceiling < 0 || math.IsNaN(opts.Ceiling) || math.IsInf(opts.Ceiling, 0) {
		return sweep.Plane{}, 0, fmt.Errorf("--ceiling must be finite and >= 0, got %v", opts.Ceiling)
	}
	if !(opts.Size > 0) || math.IsInf(opts.Size, 0) {
		return sweep.Plane{}, 0, fmt.Errorf("--size must be finite and > 0, got %v", opts.Size)
	}

	return plane, q, nil
}

func writeCSVFile(path string, res *sweep.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return sweep.WriteCSV(f, res)
}

func writeHeatMap(opts *SweepOptions, res *sweep.Result, p magnet.Parameters) error {
	ropts := []render.Option{render.WithCeiling(opts.Ceiling)}
	if opts.NoOutline {
		ropts = append(ropts, render.WithoutOutline())
	}
	plt, err := render.HeatMap(res, p, ropts...)
	if err != nil {
		return err
	}
	edge := vg.Length(opts.Size) * vg.Centimeter

	return render.Save(plt, opts.PNG, edge, edge)
}

func archiveRun(ctx context.Context, path string, res *sweep.Result, p magnet.Parameters) (string, error) {
	st, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer st.Close()

	return st.SaveRun(ctx, res, p)
}
