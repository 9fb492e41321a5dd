// SPDX-License-Identifier: MIT

// Command snumpy is the command-line front end of the snumpy library.
package main

import (
	"os"

	"github.com/katalvlaran/snumpy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
