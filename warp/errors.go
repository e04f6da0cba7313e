// SPDX-License-Identifier: MIT
// Package warp: sentinel error set.
// Every message is prefixed with "warp: ..."; operations wrap these with an
// operation tag and callers match them via errors.Is. Errors from the
// Forwarder and from the matrix kernels are wrapped, never replaced.

package warp

import (
	"errors"
	"fmt"
)

var (
	// ErrNilForwarder is returned when a Transform is built without a Forwarder
	// or a Funcs adapter lacks its derivative function.
	ErrNilForwarder = errors.New("warp: nil forwarder")

	// ErrOptionViolation is returned when an invalid option or setter value
	// (non-positive tolerance, non-positive iteration budget, NaN) is supplied.
	ErrOptionViolation = errors.New("warp: invalid option supplied")

	// ErrNoConvergence is returned only under WithStrictConvergence, together
	// with the best point found, when the iteration budget is exhausted.
	ErrNoConvergence = errors.New("warp: inverse did not converge")
)

// Operation name constants for error wrapping.
const (
	opNew        = "New"
	opForward    = "Forward"
	opInverse    = "Inverse"
	opDerivative = "Derivative"
	opSet        = "Set"
)

// warpErrorf wraps err with an operation tag, preserving it via %w.
func warpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
