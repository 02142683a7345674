// SPDX-License-Identifier: MIT

package stn

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/tempus/core"
	"github.com/katalvlaran/tempus/matrix"
)

// Sentinel errors returned by the Network handle.
var (
	// ErrAlreadyRegistered indicates Register was called on a handle that already holds a graph.
	ErrAlreadyRegistered = errors.New("stn: network already registered")

	// ErrNegativeCycle indicates the constraint network is infeasible.
	ErrNegativeCycle = errors.New("stn: negative cycle")
)

// NegativeCycleError names a time point lying on a negative cycle.
// errors.Is(err, ErrNegativeCycle) and errors.Is(err, matrix.ErrNegativeCycle) both hold.
type NegativeCycleError struct {
	TimePoint core.TimePoint
	cause     *matrix.NegativeCycleError
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("stn: negative cycle found on time point %d", e.TimePoint)
}

// Is matches ErrNegativeCycle.
func (e *NegativeCycleError) Is(target error) bool { return target == ErrNegativeCycle }

// Unwrap exposes the engine error.
func (e *NegativeCycleError) Unwrap() error {
	if e.cause == nil {
		return nil
	}

	return e.cause
}

// Pair is an ordered pair of time points keying the constraint table.
type Pair struct {
	From core.TimePoint
	To   core.TimePoint
}

// Table maps (i, j) to the minimal distance from i to j: the tightest upper
// bound on t(j) - t(i). Absent keys mean no path is known.
type Table map[Pair]float64

// Observer receives lifecycle measurements (see package metrics).
type Observer interface {
	ObserveRegister(nodes, arcs int)
	ObservePropagate(elapsed time.Duration, err error)
}

// Option configures a Network.
type Option func(*Network)

// WithLogger routes handle diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("stn: WithLogger(nil)")
	}

	return func(n *Network) { n.logger = l }
}

// WithObserver attaches an Observer. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("stn: WithObserver(nil)")
	}

	return func(n *Network) { n.observer = o }
}

// WithClock replaces time.Now for elapsed-time measurement. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("stn: WithClock(nil)")
	}

	return func(n *Network) { n.now = now }
}

type nopObserver struct{}

func (nopObserver) ObserveRegister(int, int) {}
func (nopObserver) ObservePropagate(time.Duration, error) {}
