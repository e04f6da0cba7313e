// SPDX-License-Identifier: MIT
// Package matrix: elementary 3×3 and 3-vector operations.
//
// Purpose:
//   - Provide the arithmetic the inverter needs without allocating.
//   - Keep loop orders fixed (i→j→k) so results are reproducible bit-for-bit.

package matrix

// Identity3 returns the 3×3 identity matrix.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul3 returns the matrix product a·b.
// Complexity: 27 multiply-adds.
func Mul3(a, b Mat3) Mat3 {
	var (
		out     Mat3
		i, j, k int
		sum     float64
	)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			sum = ZeroSum
			for k = 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// Det returns the determinant of m by cofactor expansion along row 0.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns s·a.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{s * a[0], s * a[1], s * a[2]}
}

// Dot returns a·b.
func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Norm2 returns the squared Euclidean norm |a|².
func (a Vec3) Norm2() float64 {
	return a.Dot(a)
}
