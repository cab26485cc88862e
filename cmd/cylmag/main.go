// SPDX-License-Identifier: MIT

// Command cylmag evaluates the field and force of a finite cylindrical magnet.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cylmag/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil && !cli.Reported(err) {
		fmt.Fprintln(os.Stderr, "cylmag:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
