// SPDX-License-Identifier: MIT

// Package cli implements the snumpy command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/snumpy/internal/logger"
)

// version is overridden at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "snumpy",
	Short: "Dense vector and matrix operations from the command line",
	Long: `snumpy validates vectors and matrices, computes shapes and products,
and solves square linear systems by Gaussian elimination.

Arrays are written as TOML literals: [1, 2] is a vector, [[1, 2], [3, 4]]
a matrix.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace validation and elimination on stderr")
}

// Execute runs the root command with os.Args.
func Execute() error {
	return rootCmd.Execute()
}
