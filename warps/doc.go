// SPDX-License-Identifier: MIT

// Package warps provides concrete forward transforms with analytic Jacobians
// that plug into warp.Transform: Identity, Scale, Affine and a Gaussian
// radial-basis displacement warp.
package warps
