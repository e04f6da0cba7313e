// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warpinv/matrix"
)

// TestValidateFinite3 walks a bad value across every cell.
func TestValidateFinite3(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFinite3(matrix.Identity3()))

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				m := matrix.Identity3()
				m[i][j] = bad
				err := matrix.ValidateFinite3(m)
				require.ErrorIs(t, err, matrix.ErrNaNInf)
				assert.Contains(t, err.Error(), "ValidateFinite3[")
			}
		}
	}
}

func TestValidateFiniteVec3(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFiniteVec3(matrix.Vec3{1, -2, 1e300}))

	for i := 0; i < 3; i++ {
		v := matrix.Vec3{}
		v[i] = math.NaN()
		assert.ErrorIs(t, matrix.ValidateFiniteVec3(v), matrix.ErrNaNInf)
	}
}
