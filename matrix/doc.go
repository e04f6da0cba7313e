// SPDX-License-Identifier: MIT

// Package matrix provides the small, fixed-size linear algebra kernels used by
// the warp inverter: 3-vectors, 3×3 matrices, LU factorization with partial
// pivoting, linear solves and inversion.
//
// The matrix package provides:
//
//   - Vec3 and Mat3 value types (no heap allocation, safe to copy).
//   - Elementary operations (MulVec, Identity3, vector Add/Sub/Scale/Dot/Norm2).
//   - LU3: Doolittle factorization P·A = L·U with row pivoting.
//   - Solve3 and Inverse3 built on LU3, failing with ErrSingular on a zero pivot.
//
// Mul3, Mat3.Det and LU.Det are verification helpers (m·m⁻¹ = I, factored
// versus cofactor determinant); the inverter does not call them.
//
// All kernels are pure and deterministic: identical inputs produce bit-identical
// outputs, and nothing is cached between calls, so every function is safe for
// concurrent use.
//
// Complexity:
//
//	Every kernel runs in O(1) time (fixed n = 3) and O(1) memory.
package matrix
