// SPDX-License-Identifier: MIT

// Package config loads solver settings and an optional linear system from a
// TOML problem file:
//
//	[solver]
//	epsilon  = 1e-9
//	pivoting = "partial"   # or "none"
//	round_to = -1
//
//	[system]
//	coefficients = [[2, 1], [5, 7]]
//	constants    = [11, 13]
//
// Missing solver keys take the snumpy defaults. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/snumpy/array"
	"github.com/katalvlaran/snumpy/snumpy"
	"github.com/katalvlaran/snumpy/validator"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// literalKey is the synthetic key ParseLiteral decodes a bare value under.
const literalKey = "v"

// Config is the validated content of a problem file.
type Config struct {
	Epsilon  float64
	Pivoting snumpy.Pivoting
	RoundTo  int

	// Coefficients and Constants are nil when the file has no [system] table.
	Coefficients *array.Matrix
	Constants    *array.Vector
}

// file mirrors the TOML layout. Pointers tell "absent" from "zero".
type file struct {
	Solver struct {
		Epsilon  *float64 `toml:"epsilon"`
		Pivoting *string  `toml:"pivoting"`
		RoundTo  *int     `toml:"round_to"`
	} `toml:"solver"`
	System *struct {
		Coefficients any `toml:"coefficients"`
		Constants    any `toml:"constants"`
	} `toml:"system"`
}

// Default returns a Config holding the snumpy defaults and no system.
func Default() *Config {
	return &Config{
		Epsilon:  snumpy.DefaultEpsilon,
		Pivoting: snumpy.DefaultPivoting,
		RoundTo:  snumpy.DefaultRoundTo,
	}
}

// Load reads and parses the problem file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates an in-memory problem file.
func Parse(data []byte) (*Config, error) {
	var raw file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := Default()
	if err := cfg.applySolver(raw); err != nil {
		return nil, err
	}
	if raw.System != nil {
		if err := cfg.SetSystem(raw.System.Coefficients, raw.System.Constants); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) applySolver(raw file) error {
	s := raw.Solver
	if s.Epsilon != nil {
		if err := c.SetEpsilon(*s.Epsilon); err != nil {
			return err
		}
	}
	if s.Pivoting != nil {
		if err := c.SetPivoting(*s.Pivoting); err != nil {
			return err
		}
	}
	if s.RoundTo != nil {
		if err := c.SetRoundTo(*s.RoundTo); err != nil {
			return err
		}
	}

	return nil
}

// SetEpsilon accepts any finite, non-negative tolerance.
func (c *Config) SetEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("%w: epsilon %v must be finite and non-negative", ErrInvalidConfig, eps)
	}
	c.Epsilon = eps

	return nil
}

// SetPivoting accepts "partial" or "none".
func (c *Config) SetPivoting(name string) error {
	p, ok := snumpy.ParsePivoting(name)
	if !ok {
		return fmt.Errorf("%w: pivoting %q must be \"partial\" or \"none\"", ErrInvalidConfig, name)
	}
	c.Pivoting = p

	return nil
}

// SetRoundTo accepts -1 (no rounding) through snumpy.MaxRoundTo.
func (c *Config) SetRoundTo(places int) error {
	if places < snumpy.DefaultRoundTo || places > snumpy.MaxRoundTo {
		return fmt.Errorf("%w: round_to %d must be in [%d, %d]",
			ErrInvalidConfig, places, snumpy.DefaultRoundTo, snumpy.MaxRoundTo)
	}
	c.RoundTo = places

	return nil
}

// SetSystem ingests decoded coefficient rows and constants.
// Both are required; shape compatibility is left to the solver.
func (c *Config) SetSystem(coefficients, constants any) error {
	if coefficients == nil || constants == nil {
		return fmt.Errorf("%w: system needs both coefficients and constants", ErrInvalidConfig)
	}
	m, err := validator.AsMatrix(coefficients)
	if err != nil {
		return fmt.Errorf("%w: coefficients: %w", ErrInvalidConfig, err)
	}
	v, err := validator.AsVector(constants)
	if err != nil {
		return fmt.Errorf("%w: constants: %w", ErrInvalidConfig, err)
	}
	c.Coefficients, c.Constants = m, v

	return nil
}

// HasSystem reports whether a linear system is present.
func (c *Config) HasSystem() bool {
	return c.Coefficients != nil && c.Constants != nil
}

// SolverOptions converts the settings into GaussianElimination options.
// Values were range-checked on the way in, so the option constructors do not panic.
func (c *Config) SolverOptions() []snumpy.Option {
	return []snumpy.Option{
		snumpy.WithEpsilon(c.Epsilon),
		snumpy.WithPivoting(c.Pivoting),
		snumpy.WithRoundTo(c.RoundTo),
	}
}

// ParseLiteral decodes a single TOML value such as "[[2, 1], [5, 7]]" or
// "[11, 13]". Integers come back as int64, floats as float64, arrays as []any.
func ParseLiteral(s string) (any, error) {
	var doc map[string]any
	if err := toml.Unmarshal([]byte(literalKey+" = "+s), &doc); err != nil {
		return nil, fmt.Errorf("%w: literal %q: %w", ErrInvalidConfig, s, err)
	}

	return doc[literalKey], nil
}
