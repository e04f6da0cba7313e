// SPDX-License-Identifier: MIT
package warp_test

import (
	"testing"

	"github.com/katalvlaran/warpinv/warp"
)

var sinkPoint warp.Point3

// BenchmarkInverseGaussian measures a full inversion on a two-knot radial warp.
func BenchmarkInverseGaussian(b *testing.B) {
	tr := mustTransform(b, mustGaussian(b), warp.WithTolerance(1e-9))
	p := warp.Point3{0.75, -0.5, 0.25}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, _, err := tr.InverseTransformPoint(p)
		if err != nil {
			b.Fatalf("inverse failed: %v", err)
		}
		sinkPoint = x
	}
}

// BenchmarkForwardGaussian is the baseline cost of one forward evaluation.
func BenchmarkForwardGaussian(b *testing.B) {
	tr := mustTransform(b, mustGaussian(b))
	p := warp.Point3{0.75, -0.5, 0.25}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, err := tr.TransformPoint(p)
		if err != nil {
			b.Fatalf("forward failed: %v", err)
		}
		sinkPoint = x
	}
}
