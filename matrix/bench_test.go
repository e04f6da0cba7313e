// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/warpinv/matrix"
)

var (
	benchMat = matrix.Mat3{{0, 2, -1}, {3, 1, 4}, {-2, 5, 1}}
	benchVec = matrix.Vec3{1, -2, 3}
	sinkVec  matrix.Vec3
	sinkMat  matrix.Mat3
)

// BenchmarkSolve3 measures one factorization plus one solve.
func BenchmarkSolve3(b *testing.B) {
	var err error
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec, err = matrix.Solve3(benchMat, benchVec)
		if err != nil {
			b.Fatalf("Solve3 failed: %v", err)
		}
	}
}

// BenchmarkInverse3 measures one factorization plus three solves.
func BenchmarkInverse3(b *testing.B) {
	var err error
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat, err = matrix.Inverse3(benchMat)
		if err != nil {
			b.Fatalf("Inverse3 failed: %v", err)
		}
	}
}
