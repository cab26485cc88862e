// SPDX-License-Identifier: MIT

// Package cli implements the cylmag command line: point evaluation of the field
// and force, magnet outlines, particle moments, grid sweeps with CSV/PNG export
// and a SQLite archive of sweep runs.
//
// Every command reads its magnet from --preset and --params and writes through
// an OutputFormatter, so --format json yields one {"status","data","error"}
// envelope per invocation. Errors carry exit codes via ExitError.
package cli
