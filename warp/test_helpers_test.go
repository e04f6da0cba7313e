// SPDX-License-Identifier: MIT
// Package warp_test contains test fixtures.
//
// Purpose:
//   • Provide small hand-analyzable forwarders whose Newton behavior can be
//     computed exactly, plus pathological ones for the error paths.

package warp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warpinv/matrix"
	"github.com/katalvlaran/warpinv/warp"
	"github.com/katalvlaran/warpinv/warps"
)

var errBoom = errors.New("forwarder exploded")

// misScaled is F(x) = 3x but it reports the Jacobian 1.2·I (0.4 of the truth).
// Every full Newton step lands at −1.5× the previous residual, so the
// corrector fires on every step; with the fraction clamped to 0.1 the
// residual shrinks to 0.75× per step (squared error × 0.5625).
func misScaled() warp.Forwarder {
	return warp.Funcs{
		Derivative: func(in warp.Point3) (warp.Point3, warp.Jacobian, error) {
			out := warp.Point3{3 * in[0], 3 * in[1], 3 * in[2]}
			jac := warp.Jacobian{{1.2, 0, 0}, {0, 1.2, 0}, {0, 0, 1.2}}

			return out, jac, nil
		},
	}
}

// overshooting is F(x) = 4x reporting the Jacobian I. A full Newton step
// maps the residual r to −3r, so the corrector always fires; the quadratic
// model gives f = 2E / (2(9E − E − 2E)) = 1/6 and the residual becomes r/3.
func overshooting() warp.Forwarder {
	return warp.Funcs{
		Derivative: func(in warp.Point3) (warp.Point3, warp.Jacobian, error) {
			return warp.Point3{4 * in[0], 4 * in[1], 4 * in[2]}, matrix.Identity3(), nil
		},
	}
}

// flatten collapses the x axis: F(x, y, z) = (0, y, z). Its Jacobian is
// singular everywhere.
func flatten() warp.Forwarder {
	return warp.Funcs{
		Derivative: func(in warp.Point3) (warp.Point3, warp.Jacobian, error) {
			return warp.Point3{0, in[1], in[2]}, warp.Jacobian{{0, 0, 0}, {0, 1, 0}, {0, 0, 1}}, nil
		},
	}
}

// failing succeeds on ForwardPoint but errors on ForwardDerivative.
func failing() warp.Forwarder {
	return warp.Funcs{
		Point: func(in warp.Point3) (warp.Point3, error) { return in, nil },
		Derivative: func(warp.Point3) (warp.Point3, warp.Jacobian, error) {
			return warp.Point3{}, warp.Jacobian{}, errBoom
		},
	}
}

// mustGaussian builds a smooth, invertible radial-basis warp.
func mustGaussian(t testing.TB) *warps.Gaussian {
	t.Helper()
	g, err := warps.NewGaussian(1.0,
		warps.Knot{Center: warp.Point3{0, 0, 0}, Displacement: warp.Point3{0.3, -0.2, 0.1}},
		warps.Knot{Center: warp.Point3{1.5, -1, 0.5}, Displacement: warp.Point3{-0.2, 0.25, 0.15}},
	)
	require.NoError(t, err)

	return g
}

// mustTransform wraps fwd or fails the test.
func mustTransform(t testing.TB, fwd warp.Forwarder, opts ...warp.Option) *warp.Transform {
	t.Helper()
	tr, err := warp.New(fwd, opts...)
	require.NoError(t, err)

	return tr
}

// residualSq returns |F(x) − p|².
func residualSq(t testing.TB, fwd warp.Forwarder, x, p warp.Point3) float64 {
	t.Helper()
	fx, err := fwd.ForwardPoint(x)
	require.NoError(t, err)

	return matrix.Vec3(fx).Sub(matrix.Vec3(p)).Norm2()
}

// samplePoints is a fixed grid around the warp knots.
func samplePoints() []warp.Point3 {
	var pts []warp.Point3
	for _, x := range []float64{-1, 0, 0.75, 2} {
		for _, y := range []float64{-1.5, 0, 1} {
			for _, z := range []float64{-0.5, 0.5} {
				pts = append(pts, warp.Point3{x, y, z})
			}
		}
	}

	return pts
}
