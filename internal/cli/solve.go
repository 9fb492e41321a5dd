// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/snumpy/internal/config"
	"github.com/katalvlaran/snumpy/internal/logger"
	"github.com/katalvlaran/snumpy/snumpy"
)

var (
	solveFile     string
	solveCoeffs   string
	solveConsts   string
	solveEpsilon  float64
	solvePivoting string
	solveRound    int
)

// errNoSystem is returned when neither a file nor inline arrays were given.
var errNoSystem = errors.New("no linear system: pass --file with a [system] table, or --coeffs and --consts")

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a square linear system by Gaussian elimination",
	Long: `Solves coeffs · x = consts and prints x.

The system comes from a TOML problem file (--file) or from inline literals
(--coeffs and --consts). --epsilon, --pivoting and --round override the
[solver] settings of the file. Singular systems, where rows are dependent or
inconsistent, are reported as errors.`,
	Example: `  snumpy solve --coeffs '[[2, 1], [5, 7]]' --consts '[11, 13]' --round 1
  snumpy solve -f problem.toml --pivoting none`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVarP(&solveFile, "file", "f", "", "TOML problem file")
	f.StringVar(&solveCoeffs, "coeffs", "", "coefficient matrix literal, e.g. [[2, 1], [5, 7]]")
	f.StringVar(&solveConsts, "consts", "", "constants vector literal, e.g. [11, 13]")
	f.Float64Var(&solveEpsilon, "epsilon", snumpy.DefaultEpsilon, "relative pivot tolerance")
	f.StringVar(&solvePivoting, "pivoting", snumpy.DefaultPivoting.String(), `row exchange strategy: "partial" or "none"`)
	f.IntVar(&solveRound, "round", snumpy.DefaultRoundTo, "decimal places of the solution; -1 disables rounding")
	solveCmd.MarkFlagsRequiredTogether("coeffs", "consts")
	solveCmd.MarkFlagsMutuallyExclusive("file", "coeffs")
	solveCmd.MarkFlagsMutuallyExclusive("file", "consts")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := solveConfig(cmd)
	if err != nil {
		return err
	}
	if !cfg.HasSystem() {
		return errNoSystem
	}

	logger.Info("solving",
		"shape", cfg.Coefficients.Shape().String(),
		"pivoting", cfg.Pivoting.String(),
		"epsilon", cfg.Epsilon,
		"round", cfg.RoundTo,
	)
	x, err := snumpy.GaussianElimination(cfg.Coefficients, cfg.Constants, cfg.SolverOptions()...)
	if err != nil {
		logger.Warn("elimination failed", "err", err)
		return fmt.Errorf("solve failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), x)

	return nil
}

// solveConfig starts from the file (or the defaults) and applies every flag
// the user set explicitly.
func solveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if solveFile != "" {
		loaded, err := config.Load(solveFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded problem file", "path", solveFile, "system", loaded.HasSystem())
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("coeffs") {
		coeffs, err := literal("coeffs", solveCoeffs)
		if err != nil {
			return nil, err
		}
		consts, err := literal("consts", solveConsts)
		if err != nil {
			return nil, err
		}
		if err = cfg.SetSystem(coeffs, consts); err != nil {
			return nil, err
		}
	}
	if flags.Changed("epsilon") {
		if err := cfg.SetEpsilon(solveEpsilon); err != nil {
			return nil, err
		}
	}
	if flags.Changed("pivoting") {
		if err := cfg.SetPivoting(solvePivoting); err != nil {
			return nil, err
		}
	}
	if flags.Changed("round") {
		if err := cfg.SetRoundTo(solveRound); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
