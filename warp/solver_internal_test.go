// SPDX-License-Identifier: MIT

package warp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBacktrackFraction checks the quadratic model f = d / (2(E1 − E0 − d))
// and both ends of the clamp.
func TestBacktrackFraction(t *testing.T) {
	tests := []struct {
		name           string
		d, last, errSq float64
		want           float64
	}{
		{"interior", 2, 1, 7, 0.25},
		{"interior low", 1, 0, 3.5, 0.2},
		{"exactly upper bound", 2, 1, 5, 0.5},
		{"above upper bound", 2, 1, 4, 0.5},
		{"zero denominator", 2, 1, 3, 0.5},
		{"exactly lower bound", 2, 1, 13, 0.1},
		{"below lower bound", 2, 1, 100, 0.1},
		{"negative denominator", 2, 1, 2, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, backtrackFraction(tt.d, tt.last, tt.errSq), 1e-15)
		})
	}
}
