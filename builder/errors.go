// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for the builder package.
// Callers branch with errors.Is; context is attached with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrNilGraph indicates Register was called with a nil *core.Graph.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrUnknownPolicy indicates a duplicate-resolution policy name that ParsePolicy does not know.
var ErrUnknownPolicy = errors.New("builder: unknown duplicate policy")

// builderErrorf wraps err with the given method context: "<method>: <msg>: <err>".
func builderErrorf(method, msg string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, msg, err)
}
