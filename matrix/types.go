// SPDX-License-Identifier: MIT

// Package matrix: fixed-size value types.
package matrix

// Vec3 is a column 3-vector.
type Vec3 [3]float64

// Mat3 is a 3×3 matrix stored row-major: m[i][j] is row i, column j.
// Value type; copying a Mat3 copies all nine entries.
type Mat3 [3][3]float64

// LU holds a row-pivoted Doolittle factorization P·A = L·U of a 3×3 matrix.
//
// L is unit lower triangular and U upper triangular; both are packed into
// a single Mat3 (the unit diagonal of L is implicit). Perm[i] is the row of
// the original matrix that ended up in row i.
type LU struct {
	lu   Mat3
	Perm [3]int
	// Sign is +1 or -1 depending on the parity of the row permutation.
	Sign float64
}
