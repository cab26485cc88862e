// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cylmag/config"
	"github.com/katalvlaran/cylmag/magnet"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Preset     string // named base parameter set
	ParamsFile string // YAML document applied over Preset
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Error codes of CLIError.
const (
	ErrCodeParams = "E001" // parameter preset or file rejected
	ErrCodeArgs   = "E002" // malformed argument or flag value
	ErrCodeEval   = "E003" // evaluation or sweep failed
	ErrCodeStore  = "E004" // run archive unavailable or run missing
	ErrCodeOutput = "E005" // CSV or PNG export failed
)

// NewRootCommand creates the root command for the cylmag CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cylmag",
		Short: "Field and force of a finite cylindrical magnet",
		Long: `Closed-form magnetic field strength and particle force of a uniformly,
axially magnetised finite cylinder, evaluated at points or over planar grids.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, c.Name(), err)
	})

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Preset, "preset", "base",
		fmt.Sprintf("base parameter set %v", config.PresetNames()))
	cmd.PersistentFlags().StringVar(&opts.ParamsFile, "params", "", "YAML parameter file applied over the preset")

	cmd.AddCommand(NewFieldCommand(opts))
	cmd.AddCommand(NewForceCommand(opts))
	cmd.AddCommand(NewInfiniteCommand(opts))
	cmd.AddCommand(NewMomentCommand(opts))
	cmd.AddCommand(NewOutlineCommand(opts))
	cmd.AddCommand(NewSweepCommand(opts))
	cmd.AddCommand(NewRunsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// loadParams resolves --preset and then applies --params over it.
func loadParams(opts *RootOptions, f *OutputFormatter) (magnet.Parameters, error) {
	p, err := config.Preset(opts.Preset)
	if err != nil {
		return magnet.Parameters{}, fail(f, ErrCodeParams, ExitCommandError, "load parameters", err)
	}
	if opts.ParamsFile != "" {
		p, err = config.LoadOver(opts.ParamsFile, p)
		if err != nil {
			return magnet.Parameters{}, fail(f, ErrCodeParams, ExitCommandError, "load parameters", err)
		}
		f.VerboseLog("parameters: preset %s, file %s", opts.Preset, opts.ParamsFile)
	}

	return p, nil
}

// fail reports err through f and returns it as an ExitError with code.
func fail(f *OutputFormatter, code string, exit int, message string, err error) error {
	wrapped := WrapExitError(exit, message, err)
	wrapped.reported = true
	if outErr := f.Error(code, wrapped.Error()); outErr != nil {
		return outErr
	}

	return wrapped
}

// exactArgs is cobra.ExactArgs with an ExitCommandError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, cmd.Name(), err)
		}
		return nil
	}
}
