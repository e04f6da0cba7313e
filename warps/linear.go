// SPDX-License-Identifier: MIT

package warps

import (
	"github.com/katalvlaran/warpinv/matrix"
	"github.com/katalvlaran/warpinv/warp"
)

// Identity maps every point to itself.
type Identity struct{}

// ForwardPoint implements warp.Forwarder.
func (Identity) ForwardPoint(in warp.Point3) (warp.Point3, error) {
	return in, nil
}

// ForwardDerivative implements warp.Forwarder.
func (Identity) ForwardDerivative(in warp.Point3) (warp.Point3, warp.Jacobian, error) {
	return in, matrix.Identity3(), nil
}

// Scale multiplies each axis by its own factor.
type Scale struct {
	Factors warp.Point3
}

// NewUniformScale returns a Scale with the same factor on all three axes.
func NewUniformScale(s float64) Scale {
	return Scale{Factors: warp.Point3{s, s, s}}
}

// ForwardPoint implements warp.Forwarder.
func (s Scale) ForwardPoint(in warp.Point3) (warp.Point3, error) {
	return warp.Point3{in[0] * s.Factors[0], in[1] * s.Factors[1], in[2] * s.Factors[2]}, nil
}

// ForwardDerivative implements warp.Forwarder.
func (s Scale) ForwardDerivative(in warp.Point3) (warp.Point3, warp.Jacobian, error) {
	out, _ := s.ForwardPoint(in)
	jac := warp.Jacobian{
		{s.Factors[0], 0, 0},
		{0, s.Factors[1], 0},
		{0, 0, s.Factors[2]},
	}

	return out, jac, nil
}

// Affine maps x to Linear·x + Offset. Its Jacobian is Linear everywhere.
type Affine struct {
	Linear matrix.Mat3
	Offset matrix.Vec3
}

// ForwardPoint implements warp.Forwarder.
func (a Affine) ForwardPoint(in warp.Point3) (warp.Point3, error) {
	return warp.Point3(a.Linear.MulVec(matrix.Vec3(in)).Add(a.Offset)), nil
}

// ForwardDerivative implements warp.Forwarder.
func (a Affine) ForwardDerivative(in warp.Point3) (warp.Point3, warp.Jacobian, error) {
	out, _ := a.ForwardPoint(in)

	return out, a.Linear, nil
}
