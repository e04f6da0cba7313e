// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide the canonical finite-value checks used by the kernels.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateFinite3 – Ensures every entry of m is finite.
//
// Returns ErrNaNInf naming the first offending (row, col) in row-major order.
// Complexity: O(1).
func ValidateFinite3(m Mat3) error {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if isNonFinite(m[i][j]) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite3[%d,%d]", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFiniteVec3 – Ensures every component of v is finite.
func ValidateFiniteVec3(v Vec3) error {
	for i := 0; i < 3; i++ {
		if isNonFinite(v[i]) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec3[%d]", i), ErrNaNInf)
		}
	}

	return nil
}
