// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cylmag/coords"
)

// OutlineResult is the output of the outline command.
type OutlineResult struct {
	Plane    string      `json:"plane"`
	Vertices [][2]Number `json:"vertices"`
}

// Text renders one vertex per line.
func (r OutlineResult) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "outline in the %s plane:", r.Plane)
	for _, v := range r.Vertices {
		fmt.Fprintf(&b, "\n%s %s", formatNumber(float64(v[0])), formatNumber(float64(v[1])))
	}

	return b.String()
}

// NewOutlineCommand creates the outline command.
func NewOutlineCommand(rootOpts *RootOptions) *cobra.Command {
	var plane string

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Projected outline of the magnet",
		Long: `Print the closed polygon of the magnet's rectangular silhouette projected onto
the xz or yz plane.`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutline(rootOpts, plane, cmd)
		},
	}

	cmd.Flags().StringVar(&plane, "plane", "xz", "projection plane (xz|yz)")

	return cmd
}

func parseView(s string) (coords.View, error) {
	switch s {
	case coords.ViewXZ.String():
		return coords.ViewXZ, nil
	case coords.ViewYZ.String():
		return coords.ViewYZ, nil
	}

	return 0, fmt.Errorf("%w: %q", coords.ErrUnknownView, s)
}

func runOutline(rootOpts *RootOptions, plane string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	view, err := parseView(plane)
	if err != nil {
		return fail(formatter, ErrCodeArgs, ExitCommandError, "--plane", err)
	}

	p, err := loadParams(rootOpts, formatter)
	if err != nil {
		return err
	}

	poly, err := coords.Outline(p, view)
	if err != nil {
		return fail(formatter, ErrCodeEval, ExitFailure, "outline", err)
	}

	res := OutlineResult{Plane: view.String(), Vertices: make([][2]Number, len(poly))}
	for i, v := range poly {
		res.Vertices[i] = [2]Number{Number(v[0]), Number(v[1])}
	}

	return formatter.Success(res)
}
