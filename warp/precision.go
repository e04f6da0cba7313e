// SPDX-License-Identifier: MIT

package warp

// Narrow-precision entry points. Each one widens its input, runs the float64
// implementation and rounds the result; no solver state ever lives in float32.

// TransformPointf is the float32 form of TransformPoint.
func (t *Transform) TransformPointf(p Point3f) (Point3f, error) {
	out, err := t.TransformPoint(p.Wide())

	return out.Narrow(), err
}

// TransformPointAndDerivativef is the float32 form of TransformPointAndDerivative.
func (t *Transform) TransformPointAndDerivativef(p Point3f) (Point3f, Jacobianf, error) {
	out, jac, err := t.TransformPointAndDerivative(p.Wide())

	return out.Narrow(), narrowJacobian(jac), err
}

// InverseTransformPointf is the float32 form of InverseTransformPoint.
func (t *Transform) InverseTransformPointf(p Point3f) (Point3f, Stats, error) {
	out, st, err := t.InverseTransformPoint(p.Wide())

	return out.Narrow(), st, err
}

// InverseTransformPointAndDerivativef is the float32 form of
// InverseTransformPointAndDerivative.
func (t *Transform) InverseTransformPointAndDerivativef(p Point3f) (Point3f, Jacobianf, Stats, error) {
	out, jac, st, err := t.InverseTransformPointAndDerivative(p.Wide())

	return out.Narrow(), narrowJacobian(jac), st, err
}
