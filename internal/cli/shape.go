// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/snumpy/snumpy"
)

var shapeX string

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "Print the shape of a vector or matrix",
	Long: `Validates --x and prints its shape: (n,) for a vector, (r, c) for a
matrix. Ragged rows, empty arrays and non-numeric elements are rejected.`,
	Args: cobra.NoArgs,
	RunE: runShape,
}

func init() {
	shapeCmd.Flags().StringVar(&shapeX, "x", "", "array literal, e.g. [[1, 2], [3, 4]]")
	_ = shapeCmd.MarkFlagRequired("x")
	rootCmd.AddCommand(shapeCmd)
}

func runShape(cmd *cobra.Command, _ []string) error {
	x, err := arrayFlag("x", shapeX)
	if err != nil {
		return err
	}
	s, err := snumpy.Shape(x)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)

	return nil
}
