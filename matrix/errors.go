// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (possibly wrapped with %w context) and
// tests check them via errors.Is. No algorithm panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested order is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrGraphNil indicates that a nil *core.Graph was passed into FromGraph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNegativeCycle indicates the distance graph contains a negative cycle.
	ErrNegativeCycle = errors.New("matrix: negative cycle")
)

// NegativeCycleError reports the dense index whose diagonal went negative.
// That vertex lies on a negative cycle.
type NegativeCycleError struct {
	Index int
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("matrix: negative cycle through index %d", e.Index)
}

// Is makes errors.Is(err, ErrNegativeCycle) true.
func (e *NegativeCycleError) Is(target error) bool { return target == ErrNegativeCycle }

// matrixErrorf prefixes err with an operation tag, keeping the sentinel for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
