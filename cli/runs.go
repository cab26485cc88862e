// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cylmag/store"
)

// RunEntry is one archived run in the output of runs list.
type RunEntry struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Quantity  string `json:"quantity"`
	Plane     string `json:"plane"`
	U         string `json:"u"`
	V         string `json:"v"`
	Offset    Number `json:"offset"`
	NonFinite int    `json:"non_finite"`
	MaxNorm   Number `json:"max_norm"`
}

// RunList is the output of runs list.
type RunList struct {
	Runs []RunEntry `json:"runs"`
}

// Text renders one run per line, newest first.
func (l RunList) Text() string {
	if len(l.Runs) == 0 {
		return "no runs"
	}
	lines := make([]string, len(l.Runs))
	for i, r := range l.Runs {
		lines[i] = fmt.Sprintf("%s  %s  %-8s %s u=%s v=%s offset=%s non-finite=%d max=%s",
			r.ID, r.CreatedAt, r.Quantity, r.Plane, r.U, r.V,
			formatNumber(float64(r.Offset)), r.NonFinite, formatNumber(float64(r.MaxNorm)))
	}

	return strings.Join(lines, "\n")
}

// RunAction is the output of runs export and runs delete.
type RunAction struct {
	Action string `json:"action"`
	ID     string `json:"id"`
	Path   string `json:"path,omitempty"`
}

// Text renders the action in one line.
func (a RunAction) Text() string {
	if a.Path != "" {
		return fmt.Sprintf("%s %s to %s", a.Action, a.ID, a.Path)
	}

	return fmt.Sprintf("%s %s", a.Action, a.ID)
}

// NewRunsCommand creates the runs command group.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	var db string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect archived sweep runs",
		Long:  "List, export and delete sweep runs archived with sweep --db.",
	}
	cmd.PersistentFlags().StringVar(&db, "db", "cylmag.db", "path to the run archive")

	list := &cobra.Command{
		Use:           "list",
		Short:         "List archived runs, newest first",
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runsList(rootOpts, db, cmd)
		},
	}

	var csvPath string
	export := &cobra.Command{
		Use:           "export <id>",
		Short:         "Write the samples of a run as CSV",
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runsExport(rootOpts, db, args[0], csvPath, cmd)
		},
	}
	export.Flags().StringVar(&csvPath, "csv", "", "output CSV file (required)")

	del := &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a run and its samples",
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runsDelete(rootOpts, db, args[0], cmd)
		},
	}

	cmd.AddCommand(list, export, del)

	return cmd
}

// openStore opens an existing archive; a missing file is a command error
// rather than an empty archive.
func openStore(f *OutputFormatter, path string) (*store.Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fail(f, ErrCodeStore, ExitCommandError, "open run archive", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fail(f, ErrCodeStore, ExitCommandError, "open run archive", err)
	}

	return st, nil
}

func storeFailure(f *OutputFormatter, message string, err error) error {
	exit := ExitFailure
	if errors.Is(err, store.ErrRunNotFound) {
		exit = ExitCommandError
	}

	return fail(f, ErrCodeStore, exit, message, err)
}

func entryOf(s store.Summary) RunEntry {
	return RunEntry{
		ID:        s.ID,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		Quantity:  s.Quantity.String(),
		Plane:     s.Plane.Kind.String(),
		U:         s.Plane.U.String(),
		V:         s.Plane.V.String(),
		Offset:    Number(s.Plane.Offset),
		NonFinite: s.NonFinite,
		MaxNorm:   Number(s.MaxNorm),
	}
}

func runsList(rootOpts *RootOptions, db string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)
	st, err := openStore(formatter, db)
	if err != nil {
		return err
	}
	defer st.Close()

	summaries, err := st.ListRuns(cmd.Context())
	if err != nil {
		return storeFailure(formatter, "list runs", err)
	}
	out := RunList{Runs: make([]RunEntry, len(summaries))}
	for i, s := range summaries {
		out.Runs[i] = entryOf(s)
	}

	return formatter.Success(out)
}

func runsExport(rootOpts *RootOptions, db, id, path string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)
	if path == "" {
		return fail(formatter, ErrCodeArgs, ExitCommandError, "--csv", errors.New("flag is required"))
	}

	st, err := openStore(formatter, db)
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.LoadRun(cmd.Context(), id)
	if err != nil {
		return storeFailure(formatter, "load run", err)
	}
	formatter.VerboseLog("run %s: %s over %s, %d samples", run.ID, run.Quantity, run.Plane.Kind, run.Plane.Size())
	if err := writeCSVFile(path, run.Result); err != nil {
		return fail(formatter, ErrCodeOutput, ExitFailure, "write csv", err)
	}

	return formatter.Success(RunAction{Action: "exported", ID: id, Path: path})
}

func runsDelete(rootOpts *RootOptions, db, id string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)
	st, err := openStore(formatter, db)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteRun(cmd.Context(), id); err != nil {
		return storeFailure(formatter, "delete run", err)
	}

	return formatter.Success(RunAction{Action: "deleted", ID: id})
}
