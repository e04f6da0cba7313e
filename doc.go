// Package warpinv evaluates 3-D spatial warps forward and inverts them
// numerically when only the forward mapping is known.
//
// 🚀 What is warpinv?
//
//	A small, dependency-light library that brings together:
//		• Dense 3×3 linear algebra: LU with partial pivoting, solve, inverse
//		• A mode-switching Transform: forward ↔ inverse by a single toggle
//		• Damped Newton inversion with a backtracking corrector
//		• float64 core with float32 entry points
//		• Ready-made warps: identity, scale, affine, Gaussian radial basis
//
// ✨ Why warpinv?
//
//   - Any forward warp that can report its Jacobian gains an inverse
//   - Bounded work: a hard iteration cap, never an unbounded loop
//   - Thread-safe mode and tolerance changes under a RWMutex
//   - Hooks (OnIteration, OnModified) and slog diagnostics
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/        Vec3, Mat3, LU3, Solve3, Inverse3
//	warp/          Forwarder capability, Transform, Newton inverse solver
//	warps/         concrete forward warps
//	internal/cli/  the warpinv command (cobra + YAML warp files)
//
// Quick example:
//
//	tr, _ := warp.New(warps.NewUniformScale(2))
//	tr.Inverse()
//	x, _ := tr.TransformPoint(warp.Point3{4, 2, 6}) // x == {2, 1, 3}
//
//	go install github.com/katalvlaran/warpinv/cmd/warpinv@latest
package warpinv
