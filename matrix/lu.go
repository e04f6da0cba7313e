// SPDX-License-Identifier: MIT
// Package matrix: LU factorization, linear solve and inversion for 3×3 systems.
//
// Notes:
//   - LU3 selects the largest remaining |a[k][i]| as pivot, so a zero on the
//     diagonal of an invertible matrix is not an error.
//   - A pivot is singular only when it is exactly ZeroPivot; near-singular
//     systems still solve and may yield very large components.

package matrix

import "math"

// ZeroSum is the initial value for substitution accumulators.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU3.
const ZeroPivot = 0.0

// LU3 computes the row-pivoted Doolittle factorization P·m = L·U.
// Implementation:
//   - Stage 1: ValidateFinite3(m).
//   - Stage 2: For each column i, swap in the row with the largest |U[k][i]|, k ≥ i.
//   - Stage 3: Eliminate below the pivot, storing the multipliers in place as L.
//
// Behavior highlights:
//   - Input m is passed by value and never mutated.
//   - Fixed loop order i→k→j; identical inputs give identical factors.
//
// Inputs:
//   - m: any finite 3×3 matrix.
//
// Returns:
//   - LU: packed factors with permutation and its sign.
//
// Errors:
//   - ErrNaNInf   (m holds a non-finite entry).
//   - ErrSingular (a pivot column is entirely zero).
//
// Complexity:
//   - Time O(1) (fixed n=3), Space O(1).
func LU3(m Mat3) (LU, error) {
	if err := ValidateFinite3(m); err != nil {
		return LU{}, matrixErrorf(opLU, err)
	}

	f := LU{lu: m, Perm: [3]int{0, 1, 2}, Sign: 1}
	var (
		i, j, k  int
		p        int     // pivot row
		maxAbs   float64 // largest |candidate| in column i
		abs      float64
		pivot    float64
		multiple float64
	)
	for i = 0; i < 3; i++ {
		// Stage 2: partial pivoting
		p = i
		maxAbs = math.Abs(f.lu[i][i])
		for k = i + 1; k < 3; k++ {
			abs = math.Abs(f.lu[k][i])
			if abs > maxAbs {
				p, maxAbs = k, abs
			}
		}
		if maxAbs == ZeroPivot {
			return LU{}, matrixErrorf(opLU, ErrSingular)
		}
		if p != i {
			f.lu[i], f.lu[p] = f.lu[p], f.lu[i]
			f.Perm[i], f.Perm[p] = f.Perm[p], f.Perm[i]
			f.Sign = -f.Sign
		}

		// Stage 3: elimination
		pivot = f.lu[i][i]
		for k = i + 1; k < 3; k++ {
			multiple = f.lu[k][i] / pivot
			f.lu[k][i] = multiple
			for j = i + 1; j < 3; j++ {
				f.lu[k][j] -= multiple * f.lu[i][j]
			}
		}
	}

	return f, nil
}

// Solve returns x with A·x = b for the factored A.
// Forward substitution on L (unit diagonal), then backward on U.
func (f LU) Solve(b Vec3) Vec3 {
	var (
		y, x Vec3
		i, k int
		sum  float64
	)
	// Forward substitution: L·y = P·b
	for i = 0; i < 3; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += f.lu[i][k] * y[k]
		}
		y[i] = b[f.Perm[i]] - sum
	}
	// Backward substitution: U·x = y
	for i = 2; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < 3; k++ {
			sum += f.lu[i][k] * x[k]
		}
		x[i] = (y[i] - sum) / f.lu[i][i]
	}

	return x
}

// Det returns det(A) from the factors: Sign·∏U[i][i].
func (f LU) Det() float64 {
	return f.Sign * f.lu[0][0] * f.lu[1][1] * f.lu[2][2]
}

// Solve3 solves the 3×3 linear system m·x = b.
//
// Errors:
//   - ErrNaNInf, ErrSingular (from LU3), wrapped with the "Solve3" tag.
//   - ErrNaNInf when b is not finite.
//
// AI-Hints:
//   - When several right-hand sides share one matrix, call LU3 once and reuse LU.Solve.
func Solve3(m Mat3, b Vec3) (Vec3, error) {
	if err := ValidateFiniteVec3(b); err != nil {
		return Vec3{}, matrixErrorf(opSolve, err)
	}
	f, err := LU3(m)
	if err != nil {
		return Vec3{}, matrixErrorf(opSolve, err)
	}

	return f.Solve(b), nil
}

// Inverse3 returns m⁻¹, solving m·x = e_col for each canonical basis column.
// The input is not mutated.
//
// Errors:
//   - ErrNaNInf, ErrSingular (from LU3), wrapped with the "Inverse3" tag.
//
// Complexity:
//   - One factorization plus three triangular solve pairs.
func Inverse3(m Mat3) (Mat3, error) {
	f, err := LU3(m)
	if err != nil {
		return Mat3{}, matrixErrorf(opInverse, err)
	}

	var (
		inv    Mat3
		e, x   Vec3
		col, i int
	)
	for col = 0; col < 3; col++ {
		e = Vec3{}
		e[col] = 1
		x = f.Solve(e)
		for i = 0; i < 3; i++ {
			inv[i][col] = x[i]
		}
	}

	return inv, nil
}
