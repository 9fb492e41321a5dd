// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snumpy/array"
	"github.com/katalvlaran/snumpy/internal/config"
	"github.com/katalvlaran/snumpy/internal/logger"
)

// execute runs rootCmd with args and returns everything written to out/err.
// Flag values persist between executions, so every flag is reset first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeProblem(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "snumpy", rootCmd.Use)
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Equal(t, "snumpy version test-version-1.0.0\n", out)
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "snumpy version dev")
}

func TestShapeCmd(t *testing.T) {
	out, err := execute(t, "shape", "--x", "[1, 2, 3]")
	require.NoError(t, err)
	assert.Equal(t, "(3,)\n", out)

	out, err = execute(t, "shape", "--x", "[[1, 2], [3.5, 4]]")
	require.NoError(t, err)
	assert.Equal(t, "(2, 2)\n", out)
}

func TestShapeCmd_Errors(t *testing.T) {
	_, err := execute(t, "shape", "--x", "[[1, 2], [3]]")
	assert.ErrorIs(t, err, array.ErrRagged)

	_, err = execute(t, "shape", "--x", "[]")
	assert.ErrorIs(t, err, array.ErrEmpty)

	_, err = execute(t, "shape", "--x", `["a", "b"]`)
	assert.ErrorIs(t, err, array.ErrNonNumeric)

	_, err = execute(t, "shape", "--x", "[1, 2")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "shape")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "x" not set`)
}

func TestDotCmd(t *testing.T) {
	out, err := execute(t, "dot", "--a", "[1, 2]", "--b", "[3, 4]")
	require.NoError(t, err)
	assert.Equal(t, "11\n", out)

	out, err = execute(t, "dot", "--a", "[[1, 2], [3, 4]]", "--b", "[[5, 6], [7, 8]]")
	require.NoError(t, err)
	assert.Equal(t, "[[19, 22], [43, 50]]\n", out)
}

func TestDotCmd_Errors(t *testing.T) {
	_, err := execute(t, "dot", "--a", "[1, 2]", "--b", "[[1, 2]]")
	assert.ErrorIs(t, err, array.ErrRankMismatch)

	_, err = execute(t, "dot", "--a", "[1, 2]", "--b", "[1, 2, 3]")
	assert.ErrorIs(t, err, array.ErrDimensionMismatch)

	_, err = execute(t, "dot", "--a", "[1, 2]")
	assert.Error(t, err)
}

func TestSolveCmd_Inline(t *testing.T) {
	out, err := execute(t, "solve", "--coeffs", "[[2, 1], [5, 7]]", "--consts", "[11, 13]", "--round", "1")

	require.NoError(t, err)
	assert.Equal(t, "[7.1, -3.2]\n", out)
}

func TestSolveCmd_Singular(t *testing.T) {
	_, err := execute(t, "solve", "--coeffs", "[[1, 2], [2, 4]]", "--consts", "[5, 10]")

	require.ErrorIs(t, err, array.ErrSingular)
	assert.Contains(t, err.Error(), "solve failed")
}

func TestSolveCmd_NonSquare(t *testing.T) {
	_, err := execute(t, "solve", "--coeffs", "[[1, 2]]", "--consts", "[5]")

	assert.ErrorIs(t, err, array.ErrNonSquare)
}

func TestSolveCmd_FileWithOverrides(t *testing.T) {
	path := writeProblem(t, `
[solver]
pivoting = "none"

[system]
coefficients = [[0, 2], [3, 1]]
constants    = [4, 5]
`)

	_, err := execute(t, "solve", "-f", path)
	require.ErrorIs(t, err, array.ErrSingular)

	out, err := execute(t, "solve", "-f", path, "--pivoting", "partial")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n", out)
}

func TestSolveCmd_FlagErrors(t *testing.T) {
	_, err := execute(t, "solve")
	assert.ErrorIs(t, err, errNoSystem)

	path := writeProblem(t, "[solver]\nround_to = 2\n")
	_, err = execute(t, "solve", "-f", path)
	assert.ErrorIs(t, err, errNoSystem)

	_, err = execute(t, "solve", "--coeffs", "[[1]]")
	assert.Error(t, err)

	_, err = execute(t, "solve", "-f", path, "--coeffs", "[[1]]", "--consts", "[1]")
	assert.Error(t, err)

	_, err = execute(t, "solve", "--coeffs", "[[1]]", "--consts", "[1]", "--pivoting", "full")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "solve", "--coeffs", "[[1]]", "--consts", "[1]", "--epsilon", "-1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "solve", "--coeffs", "[[1]]", "--consts", "[1]", "--round", "99")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "solve", "-f", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolveCmd_Verbose(t *testing.T) {
	var logs bytes.Buffer
	logger.SetOutput(&logs)

	out, err := execute(t, "--verbose", "solve", "--coeffs", "[[4]]", "--consts", "[2]")

	require.NoError(t, err)
	assert.Equal(t, "[0.5]\n", out)
	assert.Contains(t, logs.String(), "msg=solving")
	assert.Contains(t, logs.String(), "pivoting=partial")
}

func TestSolveCmd_QuietByDefault(t *testing.T) {
	var logs bytes.Buffer
	logger.SetOutput(&logs)

	_, err := execute(t, "solve", "--coeffs", "[[4]]", "--consts", "[2]")

	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}
