// SPDX-License-Identifier: MIT

package warps

import "errors"

var (
	// ErrInvalidSigma is returned when a Gaussian width is not finite and > 0.
	ErrInvalidSigma = errors.New("warps: sigma must be finite and > 0")

	// ErrInvalidKnot is returned when a knot center or displacement is not finite.
	ErrInvalidKnot = errors.New("warps: knot must be finite")
)
