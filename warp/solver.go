// SPDX-License-Identifier: MIT

package warp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/warpinv/matrix"
)

// solver holds one snapshot of the inversion parameters. It carries no
// iteration state: invert keeps everything on its own stack, so a solver
// value may be shared by concurrent inversions.
type solver struct {
	fwd         Forwarder
	tolerance   float64
	maxIter     int
	onIteration func(Iteration)
}

// residual evaluates F(x) with its Jacobian and returns F(x) − target,
// the Jacobian and the squared error.
func (s solver) residual(x, target matrix.Vec3, st *Stats) (matrix.Vec3, Jacobian, float64, error) {
	out, jac, err := s.fwd.ForwardDerivative(Point3(x))
	st.Evaluations++
	if err != nil {
		return matrix.Vec3{}, Jacobian{}, 0, err
	}
	r := matrix.Vec3(out).Sub(target)

	return r, jac, r.Norm2(), nil
}

// invert finds X with F(X) ≈ p by damped Newton iteration.
// Implementation:
//   - Stage 1 (Seed): X0 = P − (F(P) − P), reflecting F(P) through P.
//   - Stage 2 (Loop): while |r|² > tol² and steps < budget, solve J·ΔI = r,
//     step X ← X − ΔI, and backtrack if the squared error grew.
//   - Stage 3 (Finalize): report the last X with its Stats.
//
// Behavior highlights:
//   - The returned point is always the last iterate, converged or not.
//   - Singular Jacobians and Forwarder errors abort immediately, wrapped.
//
// Complexity:
//   - At most 2 + 2·maxIter Forwarder calls.
func (s solver) invert(p Point3) (Point3, Stats, error) {
	var (
		st     Stats
		target = matrix.Vec3(p)
		tolSq  = s.tolerance * s.tolerance
	)

	// Stage 1: first guess
	fp, err := s.fwd.ForwardPoint(p)
	st.Evaluations++
	if err != nil {
		return p, st, fmt.Errorf("seed: %w", err)
	}
	x := target.Sub(matrix.Vec3(fp).Sub(target))

	r, jac, errSq, err := s.residual(x, target, &st)
	if err != nil {
		return Point3(x), st, fmt.Errorf("seed: %w", err)
	}

	// Stage 2: Newton loop
	var (
		i         int
		lastX     matrix.Vec3
		lastErrSq float64
		deltaI    matrix.Vec3
		gradient  matrix.Vec3
		step      Iteration
	)
	for i = 0; i < s.maxIter && errSq > tolSq; i++ {
		lastErrSq = errSq

		deltaI, err = matrix.Solve3(jac, r)
		if err != nil {
			return Point3(x), st, fmt.Errorf("step %d: %w", i, err)
		}
		lastX = x

		// Diagonal approximation of ∇|r|², used only by the corrector.
		gradient = matrix.Vec3{
			2 * r[0] * jac[0][0],
			2 * r[1] * jac[1][1],
			2 * r[2] * jac[2][2],
		}

		x = x.Sub(deltaI)
		r, jac, errSq, err = s.residual(x, target, &st)
		if err != nil {
			return Point3(x), st, fmt.Errorf("step %d: %w", i, err)
		}

		step = Iteration{Index: i, Fraction: 1}
		if errSq > lastErrSq {
			step.Backtracked = true
			step.Fraction = backtrackFraction(gradient.Dot(deltaI), lastErrSq, errSq)
			st.Backtracks++

			x = lastX.Sub(deltaI.Scale(step.Fraction))
			r, jac, errSq, err = s.residual(x, target, &st)
			if err != nil {
				return Point3(x), st, fmt.Errorf("step %d backtrack: %w", i, err)
			}
		}
		step.ErrorSquared = errSq
		if s.onIteration != nil {
			s.onIteration(step)
		}
	}

	// Stage 3: finalize
	st.Iterations = i
	st.Error = math.Sqrt(errSq)
	st.Converged = errSq <= tolSq

	return Point3(x), st, nil
}

// backtrackFraction fits a quadratic through the error before the step
// (lastErrSq), its directional derivative estimate d and the error after
// the full step (errSq), and returns the minimizing step fraction clamped
// to [minStepFraction, maxStepFraction].
func backtrackFraction(d, lastErrSq, errSq float64) float64 {
	f := d / (2 * (errSq - lastErrSq - d))
	if f < minStepFraction {
		f = minStepFraction
	}
	if f > maxStepFraction {
		f = maxStepFraction
	}

	return f
}
