// SPDX-License-Identifier: MIT

// Package warp: points, Jacobians, modes and the Forwarder capability.
package warp

import "github.com/katalvlaran/warpinv/matrix"

// Point3 is a point in 3-D space in wide (float64) precision.
type Point3 [3]float64

// Point3f is a point in 3-D space in narrow (float32) precision.
// Narrow → wide conversion is lossless; wide → narrow rounds.
type Point3f [3]float32

// Jacobian is the 3×3 matrix of partial derivatives ∂out_i/∂in_j of a
// transform, evaluated at some point: J[i][j] is row i (output), column j (input).
type Jacobian = matrix.Mat3

// Jacobianf is a Jacobian in narrow precision.
type Jacobianf [3][3]float32

// Wide converts p to float64.
func (p Point3f) Wide() Point3 {
	return Point3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// Narrow rounds p to float32.
func (p Point3) Narrow() Point3f {
	return Point3f{float32(p[0]), float32(p[1]), float32(p[2])}
}

// narrowJacobian rounds every entry of j to float32.
func narrowJacobian(j Jacobian) Jacobianf {
	var out Jacobianf
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = float32(j[r][c])
		}
	}

	return out
}

// Mode selects how evaluation calls interpret input and output.
type Mode uint8

const (
	// Forward evaluates the natively defined mapping.
	Forward Mode = iota

	// Inverse evaluates the numerically recovered inverse mapping.
	Inverse
)

// Toggle returns the opposite mode. Toggle(Toggle(m)) == m.
func (m Mode) Toggle() Mode {
	return m ^ 1
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Inverse {
		return "inverse"
	}

	return "forward"
}

// Forwarder is the capability a concrete warp supplies. Both methods must
// describe the same mapping F; ForwardDerivative returns F(in) together with
// its Jacobian at in. Implementations must be safe for concurrent use if the
// owning Transform is evaluated from several goroutines.
type Forwarder interface {
	ForwardPoint(in Point3) (Point3, error)
	ForwardDerivative(in Point3) (Point3, Jacobian, error)
}

// Funcs adapts plain functions to a Forwarder.
// Derivative is required; Point defaults to Derivative with the Jacobian dropped.
type Funcs struct {
	Point      func(in Point3) (Point3, error)
	Derivative func(in Point3) (Point3, Jacobian, error)
}

// ForwardPoint implements Forwarder.
func (f Funcs) ForwardPoint(in Point3) (Point3, error) {
	if f.Point != nil {
		return f.Point(in)
	}
	out, _, err := f.ForwardDerivative(in)

	return out, err
}

// ForwardDerivative implements Forwarder.
func (f Funcs) ForwardDerivative(in Point3) (Point3, Jacobian, error) {
	if f.Derivative == nil {
		return Point3{}, Jacobian{}, ErrNilForwarder
	}

	return f.Derivative(in)
}

// Stats is the diagnostic record of one inversion.
type Stats struct {
	// Iterations is the number of Newton steps taken; 0 when the seed
	// already satisfied the tolerance.
	Iterations int `json:"iterations"`
	// Evaluations counts Forwarder calls, seed included.
	Evaluations int `json:"evaluations"`
	// Backtracks counts steps that were shortened by the corrector.
	Backtracks int `json:"backtracks"`
	// Error is the residual magnitude |F(X) − P| of the returned point.
	Error float64 `json:"error"`
	// Converged reports Error ≤ tolerance.
	Converged bool `json:"converged"`
}

// Iteration describes one Newton step, as passed to an iteration hook.
type Iteration struct {
	// Index is the zero-based step number.
	Index int
	// ErrorSquared is |F(X) − P|² after the step (and after backtracking).
	ErrorSquared float64
	// Backtracked reports whether the full step increased the error.
	Backtracked bool
	// Fraction is the step length used, 1 for a full Newton step.
	Fraction float64
}
