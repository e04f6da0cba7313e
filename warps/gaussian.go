// SPDX-License-Identifier: MIT

package warps

import (
	"fmt"
	"math"

	"github.com/katalvlaran/warpinv/matrix"
	"github.com/katalvlaran/warpinv/warp"
)

// Knot is one radial basis control point: points near Center are pushed
// by up to Displacement.
type Knot struct {
	Center       warp.Point3
	Displacement warp.Point3
}

// Gaussian is a radial-basis displacement warp
//
//	F(x) = x + Σ_k d_k · φ_k(x),   φ_k(x) = exp(−|x − c_k|² / (2σ²))
//
// with Jacobian
//
//	J(x) = I + Σ_k d_k ⊗ ∇φ_k(x),  ∇φ_k(x) = −φ_k(x) · (x − c_k) / σ².
//
// The warp is invertible everywhere when max_k |d_k| · e^(−1/2) / σ < 1 per
// knot and the knots are far apart; stronger warps may fold space.
// Gaussian is immutable after construction and safe for concurrent use.
type Gaussian struct {
	knots []Knot
	sigma float64
}

// NewGaussian validates sigma and knots and builds the warp. The knots
// slice is copied.
//
// Errors:
//   - ErrInvalidSigma (sigma NaN, ±Inf or ≤ 0).
//   - ErrInvalidKnot  (any center or displacement component not finite).
func NewGaussian(sigma float64, knots ...Knot) (*Gaussian, error) {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return nil, fmt.Errorf("NewGaussian: %w (%v)", ErrInvalidSigma, sigma)
	}
	for k, kn := range knots {
		for i := 0; i < 3; i++ {
			if !finite(kn.Center[i]) || !finite(kn.Displacement[i]) {
				return nil, fmt.Errorf("NewGaussian: knot %d: %w", k, ErrInvalidKnot)
			}
		}
	}

	return &Gaussian{knots: append([]Knot(nil), knots...), sigma: sigma}, nil
}

// Sigma returns the kernel width.
func (g *Gaussian) Sigma() float64 { return g.sigma }

// Knots returns a copy of the control points.
func (g *Gaussian) Knots() []Knot { return append([]Knot(nil), g.knots...) }

// ForwardPoint implements warp.Forwarder.
func (g *Gaussian) ForwardPoint(in warp.Point3) (warp.Point3, error) {
	x := matrix.Vec3(in)
	out := x
	inv2s2 := 1 / (2 * g.sigma * g.sigma)
	for _, kn := range g.knots {
		diff := x.Sub(matrix.Vec3(kn.Center))
		phi := math.Exp(-diff.Norm2() * inv2s2)
		out = out.Add(matrix.Vec3(kn.Displacement).Scale(phi))
	}

	return warp.Point3(out), nil
}

// ForwardDerivative implements warp.Forwarder.
func (g *Gaussian) ForwardDerivative(in warp.Point3) (warp.Point3, warp.Jacobian, error) {
	var (
		x      = matrix.Vec3(in)
		out    = x
		jac    = matrix.Identity3()
		inv2s2 = 1 / (2 * g.sigma * g.sigma)
		invS2  = 1 / (g.sigma * g.sigma)
		i, j   int
	)
	for _, kn := range g.knots {
		diff := x.Sub(matrix.Vec3(kn.Center))
		phi := math.Exp(-diff.Norm2() * inv2s2)
		d := matrix.Vec3(kn.Displacement)
		out = out.Add(d.Scale(phi))
		// ∂φ/∂x_j = −φ·(x_j − c_j)/σ²
		for i = 0; i < 3; i++ {
			for j = 0; j < 3; j++ {
				jac[i][j] -= d[i] * phi * diff[j] * invS2
			}
		}
	}

	return warp.Point3(out), jac, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
