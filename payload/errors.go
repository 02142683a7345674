// SPDX-License-Identifier: MIT

package payload

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates a request that cannot be decoded or fails validation.
var ErrMalformedInput = errors.New("payload: malformed input")

// ErrUnknownFormat indicates a file extension or format name Load cannot map.
var ErrUnknownFormat = errors.New("payload: unknown format")

// malformedf wraps ErrMalformedInput with a formatted reason.
func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
