// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/katalvlaran/tempus/payload"
	"github.com/katalvlaran/tempus/stn"
)

// Exit codes.
const (
	exitInfeasible = 1 // constraints admit no schedule
	exitUsage      = 2 // bad flags, unreadable or malformed input
)

// ExitError carries a process exit code. A nil Err exits silently.
type ExitError struct {
	Code int
	Err  error
}

// Error implements error.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status"
	}

	return e.Err.Error()
}

// Unwrap exposes the underlying error.
func (e *ExitError) Unwrap() error { return e.Err }

// classify attaches the exit code matching err.
func classify(err error) error {
	var exitErr *ExitError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &exitErr):
		return err
	case errors.Is(err, stn.ErrNegativeCycle):
		return &ExitError{Code: exitInfeasible, Err: err}
	case errors.Is(err, payload.ErrMalformedInput), errors.Is(err, payload.ErrUnknownFormat):
		return &ExitError{Code: exitUsage, Err: err}
	default:
		return err
	}
}
