// SPDX-License-Identifier: MIT

package warp

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/warpinv/matrix"
)

// Transform evaluates a Forwarder in forward or inverse mode.
//
// The mode flag and the convergence parameters are the only mutable state;
// they are guarded by a RWMutex and snapshotted at the start of every call,
// so toggles and setters never affect an evaluation already in flight.
type Transform struct {
	fwd Forwarder

	mu   sync.RWMutex
	mode Mode
	opts Options
}

// New wraps fwd in a Transform in Forward mode.
//
// Errors:
//   - ErrNilForwarder    (fwd == nil).
//   - ErrOptionViolation (any option carried an invalid value).
func New(fwd Forwarder, opts ...Option) (*Transform, error) {
	if fwd == nil {
		return nil, warpErrorf(opNew, ErrNilForwarder)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, warpErrorf(opNew, err)
	}

	return &Transform{fwd: fwd, mode: Forward, opts: o}, nil
}

// Inverse toggles the mode between Forward and Inverse and notifies the
// OnModified hook. Calling it twice restores the original behavior; the
// underlying Forwarder is never touched.
func (t *Transform) Inverse() {
	t.mu.Lock()
	t.mode = t.mode.Toggle()
	mode, hook := t.mode, t.opts.OnModified
	t.mu.Unlock()

	if hook != nil {
		hook(mode)
	}
}

// Mode returns the current evaluation mode.
func (t *Transform) Mode() Mode {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.mode
}

// Forwarder returns the wrapped forward transform.
func (t *Transform) Forwarder() Forwarder {
	return t.fwd
}

// InverseTolerance returns the convergence threshold on |F(X) − P|.
func (t *Transform) InverseTolerance() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.opts.Tolerance
}

// InverseIterations returns the Newton step budget.
func (t *Transform) InverseIterations() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.opts.MaxIterations
}

// SetInverseTolerance changes the convergence threshold.
// Returns ErrOptionViolation unless tol is finite and > 0.
func (t *Transform) SetInverseTolerance(tol float64) error {
	if err := validateTolerance(tol); err != nil {
		return warpErrorf(opSet, err)
	}
	t.mu.Lock()
	t.opts.Tolerance = tol
	t.mu.Unlock()

	return nil
}

// SetInverseIterations changes the Newton step budget.
// Returns ErrOptionViolation unless n > 0.
func (t *Transform) SetInverseIterations(n int) error {
	if err := validateIterations(n); err != nil {
		return warpErrorf(opSet, err)
	}
	t.mu.Lock()
	t.opts.MaxIterations = n
	t.mu.Unlock()

	return nil
}

// snapshot returns the mode, options and a solver bound to them.
func (t *Transform) snapshot() (Mode, Options, solver) {
	t.mu.RLock()
	mode, o := t.mode, t.opts
	t.mu.RUnlock()

	return mode, o, solver{
		fwd:         t.fwd,
		tolerance:   o.Tolerance,
		maxIter:     o.MaxIterations,
		onIteration: o.OnIteration,
	}
}

// TransformPoint maps p according to the current mode: F(p) in Forward mode,
// X with F(X) ≈ p in Inverse mode.
//
// In Inverse mode a non-converged result is still returned with a nil error
// (a warning is logged) unless WithStrictConvergence is set.
func (t *Transform) TransformPoint(p Point3) (Point3, error) {
	mode, o, s := t.snapshot()
	if mode == Inverse {
		out, _, err := t.invert(s, o, p)

		return out, err
	}

	out, err := t.fwd.ForwardPoint(p)
	if err != nil {
		return out, warpErrorf(opForward, err)
	}

	return out, nil
}

// TransformPointAndDerivative maps p and returns the Jacobian of the active
// mapping.
//
// In Inverse mode the forward Jacobian is evaluated at p itself (not at the
// inverse point) and inverted, while the point comes from the Newton solver
// seeded from p. The iterative solver is never differentiated. Under
// WithStrictConvergence a non-converged point is returned with its Jacobian
// and ErrNoConvergence.
//
// Errors:
//   - matrix.ErrSingular when the forward Jacobian at p cannot be inverted.
//   - Any Forwarder error, wrapped.
func (t *Transform) TransformPointAndDerivative(p Point3) (Point3, Jacobian, error) {
	mode, o, s := t.snapshot()
	if mode == Forward {
		out, jac, err := t.fwd.ForwardDerivative(p)
		if err != nil {
			return out, jac, warpErrorf(opDerivative, err)
		}

		return out, jac, nil
	}

	out, jac, _, err := t.invertWithDerivative(s, o, p)

	return out, jac, err
}

// InverseTransformPointAndDerivative is InverseTransformPoint plus the
// Jacobian of the inverse mapping at p, from a single solve.
func (t *Transform) InverseTransformPointAndDerivative(p Point3) (Point3, Jacobian, Stats, error) {
	_, o, s := t.snapshot()

	return t.invertWithDerivative(s, o, p)
}

// InverseTransformPoint computes X with F(X) ≈ p regardless of the mode and
// reports how the iteration went.
//
// Returns:
//   - Point3: the last iterate, even when Stats.Converged is false.
//   - Stats : iteration count, evaluations, backtracks, residual magnitude.
//   - error : Forwarder/matrix errors (e.g. matrix.ErrSingular), or
//     ErrNoConvergence under WithStrictConvergence.
func (t *Transform) InverseTransformPoint(p Point3) (Point3, Stats, error) {
	_, o, s := t.snapshot()

	return t.invert(s, o, p)
}

// invertWithDerivative inverts the forward Jacobian at p and solves for the
// point. ErrNoConvergence still carries a valid Jacobian.
func (t *Transform) invertWithDerivative(s solver, o Options, p Point3) (Point3, Jacobian, Stats, error) {
	_, jac, err := t.fwd.ForwardDerivative(p)
	if err != nil {
		return Point3{}, Jacobian{}, Stats{}, warpErrorf(opDerivative, err)
	}
	out, st, err := t.invert(s, o, p)
	if err != nil && !errors.Is(err, ErrNoConvergence) {
		return out, Jacobian{}, st, err
	}
	inv, ierr := matrix.Inverse3(jac)
	if ierr != nil {
		return out, Jacobian{}, st, warpErrorf(opDerivative, ierr)
	}

	return out, inv, st, err
}

// invert runs the solver and emits diagnostics.
func (t *Transform) invert(s solver, o Options, p Point3) (Point3, Stats, error) {
	out, st, err := s.invert(p)
	if err != nil {
		return out, st, warpErrorf(opInverse, err)
	}

	o.Logger.Debug("inverse transform",
		slog.Int("iterations", st.Iterations),
		slog.Int("evaluations", st.Evaluations),
		slog.Float64("error", st.Error),
	)
	if !st.Converged {
		o.Logger.Warn("inverse transform: no convergence",
			slog.Any("point", p),
			slog.Float64("error", st.Error),
			slog.Int("iterations", st.Iterations),
		)
		if o.Strict {
			return out, st, warpErrorf(opInverse,
				fmt.Errorf("%w: error %g after %d iterations", ErrNoConvergence, st.Error, st.Iterations))
		}
	}

	return out, st, nil
}
