// SPDX-License-Identifier: MIT

// Package warp numerically inverts smooth, non-linear 3-D point transforms
// that are only defined in the forward direction.
//
// 🚀 What is warp?
//
//	Many geometric warps (free-form deformations, thin-plate splines, radial
//	basis warps) have no closed-form inverse. A Transform wraps any Forwarder
//	(point → point, plus its 3×3 Jacobian) and answers inverse queries with a
//	damped Newton iteration:
//	  • seed by reflecting F(P) through P,
//	  • Newton step J·ΔI = F(X) − P,
//	  • quadratic backtracking (step fraction clamped to [0.1, 0.5]) whenever a
//	    full step increases the squared error.
//
// ✨ Key features:
//   - Forward/Inverse mode toggle (Transform.Inverse) that flips the meaning
//     of every evaluation call; toggling twice restores the original mode.
//   - Derivative of the inverse via the inverse function theorem: the forward
//     Jacobian at the input point, inverted.
//   - float64 and float32 entry points; float32 calls compute in float64.
//   - Non-convergence is a diagnostic (Stats, slog warning), not a failure,
//     unless WithStrictConvergence is set. Singular Jacobians propagate as
//     matrix.ErrSingular.
//
// ⚙️ Usage:
//
//	t, err := warp.New(myWarp,
//	  warp.WithTolerance(1e-6),
//	  warp.WithMaxIterations(100),
//	)
//	t.Inverse()                        // switch to inverse mode
//	x, err := t.TransformPoint(p)      // X with F(X) ≈ p
//	x, stats, err := t.InverseTransformPoint(p) // with diagnostics
//
// Concurrency:
//
//	Evaluation never mutates the Transform; any number of goroutines may
//	evaluate concurrently as long as the Forwarder itself is reentrant.
//	Every inversion keeps its iteration state on its own stack.
//
// Performance:
//
//   - One forward+derivative evaluation per Newton step, plus one per backtrack.
//   - Work is bounded by the iteration budget (default 500).
package warp
