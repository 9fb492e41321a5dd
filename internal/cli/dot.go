// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/snumpy/internal/logger"
	"github.com/katalvlaran/snumpy/snumpy"
)

var (
	dotA string
	dotB string
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Multiply two vectors or two matrices",
	Long: `Computes the dot product of --a and --b. Two vectors of equal length
give a scalar; an (r, n) and an (n, c) matrix give an (r, c) matrix.`,
	Args: cobra.NoArgs,
	RunE: runDot,
}

func init() {
	dotCmd.Flags().StringVar(&dotA, "a", "", "left operand literal")
	dotCmd.Flags().StringVar(&dotB, "b", "", "right operand literal")
	_ = dotCmd.MarkFlagRequired("a")
	_ = dotCmd.MarkFlagRequired("b")
	rootCmd.AddCommand(dotCmd)
}

func runDot(cmd *cobra.Command, _ []string) error {
	a, err := arrayFlag("a", dotA)
	if err != nil {
		return err
	}
	b, err := arrayFlag("b", dotB)
	if err != nil {
		return err
	}
	p, err := snumpy.DotProduct(a, b)
	if err != nil {
		return fmt.Errorf("dot product failed: %w", err)
	}
	logger.Info("dot product", "a", a.Shape().String(), "b", b.Shape().String())
	fmt.Fprintln(cmd.OutOrStdout(), p)

	return nil
}
