// SPDX-License-Identifier: MIT
package warp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warpinv/warp"
	"github.com/katalvlaran/warpinv/warps"
)

func TestPoint3_Conversions(t *testing.T) {
	p := warp.Point3f{0.5, -2, 1e-3}
	assert.Equal(t, p, p.Wide().Narrow(), "narrow→wide→narrow is lossless")
	assert.Equal(t, warp.Point3f{0.1, 0.2, 0.3}, warp.Point3{0.1, 0.2, 0.3}.Narrow())
}

// TestPrecision_ScaleExact checks the narrow façade on exactly representable data.
func TestPrecision_ScaleExact(t *testing.T) {
	tr := mustTransform(t, warps.NewUniformScale(2))
	tr.Inverse()

	out, err := tr.TransformPointf(warp.Point3f{4, 2, 6})
	require.NoError(t, err)
	assert.Equal(t, warp.Point3f{2, 1, 3}, out)

	out, jac, err := tr.TransformPointAndDerivativef(warp.Point3f{4, 2, 6})
	require.NoError(t, err)
	assert.Equal(t, warp.Point3f{2, 1, 3}, out)
	assert.Equal(t, warp.Jacobianf{{0.5, 0, 0}, {0, 0.5, 0}, {0, 0, 0.5}}, jac)
}

// TestPrecision_Equivalence verifies float32 and float64 calls agree to
// within float32 resolution, in both modes.
func TestPrecision_Equivalence(t *testing.T) {
	g := mustGaussian(t)
	tr := mustTransform(t, g, warp.WithTolerance(1e-9))

	for _, mode := range []warp.Mode{warp.Forward, warp.Inverse} {
		if tr.Mode() != mode {
			tr.Inverse()
		}
		for _, p := range samplePoints() {
			p[0] += 0.1 // not exactly representable in float32
			wide, wideJ, err := tr.TransformPointAndDerivative(p)
			require.NoError(t, err)
			narrow, narrowJ, err := tr.TransformPointAndDerivativef(p.Narrow())
			require.NoError(t, err)

			for i := 0; i < 3; i++ {
				assert.InDelta(t, wide[i], float64(narrow[i]), 1e-6, "%s point %v axis %d", mode, p, i)
				for j := 0; j < 3; j++ {
					assert.InDelta(t, wideJ[i][j], float64(narrowJ[i][j]), 1e-6)
				}
			}

			np, err := tr.TransformPointf(p.Narrow())
			require.NoError(t, err)
			assert.Equal(t, narrow, np)
		}
	}
}

func TestInverseTransformPointf(t *testing.T) {
	tr := mustTransform(t, warps.NewUniformScale(2))
	out, st, err := tr.InverseTransformPointf(warp.Point3f{4, 2, 6})
	require.NoError(t, err)
	assert.Equal(t, warp.Point3f{2, 1, 3}, out)
	assert.True(t, st.Converged)
}
