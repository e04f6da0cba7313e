// SPDX-License-Identifier: MIT

// Package warp: functional configuration for Transform.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors; invalid values are recorded and surfaced by New
//     as ErrOptionViolation, so misconfiguration fails at build time.
package warp

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the residual distance |F(X) − P| below which an
	// inversion counts as converged.
	DefaultTolerance = 0.001

	// DefaultMaxIterations bounds the number of Newton steps per inversion.
	// Well-conditioned warps usually need fewer than 10.
	DefaultMaxIterations = 500
)

// Backtracking clamp: a corrected step is never shorter than minStepFraction
// nor longer than maxStepFraction of the full Newton step.
const (
	minStepFraction = 0.1
	maxStepFraction = 0.5
)

// Option configures a Transform via functional arguments.
type Option func(*Options)

// Options holds the effective configuration of a Transform.
type Options struct {
	// Tolerance is the convergence threshold on |F(X) − P|; must be > 0.
	Tolerance float64

	// MaxIterations bounds Newton steps per inversion; must be > 0.
	MaxIterations int

	// Strict turns non-convergence into ErrNoConvergence.
	Strict bool

	// Logger receives a Debug record per inversion and a Warn record on
	// non-convergence. Never nil after DefaultOptions.
	Logger *slog.Logger

	// OnIteration, if set, is called after every Newton step.
	OnIteration func(Iteration)

	// OnModified, if set, is called after every mode toggle with the new mode.
	OnModified func(Mode)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Tolerance 0.001, MaxIterations 500,
//   - non-strict convergence,
//   - a logger that discards everything,
//   - no hooks.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithTolerance sets the convergence threshold on the residual distance.
//
//	tol > 0 and finite: accepted
//	otherwise: ErrOptionViolation from New
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if err := validateTolerance(tol); err != nil {
			o.err = err

			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the Newton step budget per inversion.
//
//	n > 0: accepted
//	n ≤ 0: ErrOptionViolation from New
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if err := validateIterations(n); err != nil {
			o.err = err

			return
		}
		o.MaxIterations = n
	}
}

// WithStrictConvergence makes inversions that exhaust the iteration budget
// return ErrNoConvergence alongside the best point found.
func WithStrictConvergence() Option {
	return func(o *Options) { o.Strict = true }
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithIterationHook registers fn to observe every Newton step.
// The hook runs on the evaluating goroutine and must not block.
func WithIterationHook(fn func(Iteration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithOnModified registers fn to be notified after every mode toggle, for
// owners that track versions or dirty flags.
func WithOnModified(fn func(Mode)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnModified = fn
		}
	}
}

func validateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return fmt.Errorf("%w: tolerance must be finite and > 0 (%v)", ErrOptionViolation, tol)
	}

	return nil
}

func validateIterations(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: iteration budget must be > 0 (%d)", ErrOptionViolation, n)
	}

	return nil
}

// gatherOptions applies opts over DefaultOptions and returns the first
// recorded violation, if any.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
