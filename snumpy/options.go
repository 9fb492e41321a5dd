// SPDX-License-Identifier: MIT

// Package snumpy: functional configuration for the elimination solver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Every flag changes observable behavior and is covered by tests.
//   - Panic only on invalid parameters (programmer error).
package snumpy

import "math"

// Pivoting selects the row-exchange strategy of GaussianElimination.
type Pivoting int

const (
	// PartialPivoting swaps in the row with the largest |entry| of the
	// current column before eliminating. Numerically stable default.
	PartialPivoting Pivoting = iota

	// NoPivoting eliminates in natural row order and fails on the first zero
	// pivot, even if a later row would have provided a non-zero one.
	NoPivoting
)

// String returns "partial" or "none".
func (p Pivoting) String() string {
	switch p {
	case PartialPivoting:
		return "partial"
	case NoPivoting:
		return "none"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative pivot tolerance. A pivot p is treated as
	// zero when |p| <= eps * max|coeffs|.
	DefaultEpsilon = 1e-9

	// DefaultPivoting is the row-exchange strategy used when none is given.
	DefaultPivoting = PartialPivoting

	// DefaultRoundTo disables rounding of solution components.
	DefaultRoundTo = -1

	// MaxRoundTo bounds decimal places; float64 carries ~15-17 significant digits.
	MaxRoundTo = 15
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid  = "snumpy: WithEpsilon: eps must be finite, non-negative"
	panicPivotingInvalid = "snumpy: WithPivoting: unknown pivoting strategy"
	panicRoundToInvalid  = "snumpy: WithRoundTo: places must be in [-1, 15]"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps      float64  // >= 0; DefaultEpsilon
	pivoting Pivoting // DefaultPivoting
	roundTo  int      // -1 disables; DefaultRoundTo
}

// WithEpsilon sets the relative pivot tolerance.
// Panics when eps is NaN, ±Inf or negative.
//
// Notes:
//   - eps = 0 only rejects exactly-zero pivots; tiny residues from
//     cancellation then pass and produce huge, meaningless solutions.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivoting selects the row-exchange strategy. Panics on unknown values.
func WithPivoting(p Pivoting) Option {
	if p != PartialPivoting && p != NoPivoting {
		panic(panicPivotingInvalid)
	}

	return func(o *Options) { o.pivoting = p }
}

// WithRoundTo rounds every solution component to places decimals
// (half away from zero). -1 disables rounding.
func WithRoundTo(places int) Option {
	if places < DefaultRoundTo || places > MaxRoundTo {
		panic(panicRoundToInvalid)
	}

	return func(o *Options) { o.roundTo = places }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:      DefaultEpsilon,
		pivoting: DefaultPivoting,
		roundTo:  DefaultRoundTo,
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ParsePivoting maps "partial" / "none" to a Pivoting value.
func ParsePivoting(s string) (Pivoting, bool) {
	switch s {
	case "partial", "":
		return PartialPivoting, true
	case "none":
		return NoPivoting, true
	default:
		return 0, false
	}
}
