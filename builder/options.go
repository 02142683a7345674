// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go: functional options for Register.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Register never panics.
//   • No hidden globals; everything flows through config.

package builder

import (
	"log/slog"
	"math"
)

// DefaultUncertainty is the execution uncertainty applied to nominal durations (10%).
const DefaultUncertainty = 0.1

// Option customizes Register by mutating a config before the graph is built.
type Option func(*config)

// config aggregates every Register knob.
type config struct {
	implicit    bool
	uncertainty float64
	policy      DuplicatePolicy
	activities  []Activity
	logger      *slog.Logger
}

// newConfig applies opts in order over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		uncertainty: DefaultUncertainty,
		policy:      DuplicateOverwrite,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithImplicitIntervals derives every edge interval from its nominal Minutes,
// ignoring any explicit Interval.
func WithImplicitIntervals() Option {
	return func(c *config) { c.implicit = true }
}

// WithUncertainty sets the fraction ε used by nominal derivation.
// Panics unless 0 ≤ eps ≤ 1.
func WithUncertainty(eps float64) Option {
	if math.IsNaN(eps) || eps < 0 || eps > 1 {
		panic("builder: WithUncertainty(eps∉[0,1])")
	}

	return func(c *config) { c.uncertainty = eps }
}

// WithDuplicatePolicy selects how repeated constraints combine.
// Panics on an unknown policy value.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	if p != DuplicateOverwrite && p != DuplicateIntersect {
		panic("builder: WithDuplicatePolicy(unknown)")
	}

	return func(c *config) { c.policy = p }
}

// WithActivities attaches labels to time points. Labels for ids no edge
// references are ignored: they do not create nodes.
func WithActivities(acts ...Activity) Option {
	cp := make([]Activity, len(acts))
	copy(cp, acts)

	return func(c *config) { c.activities = append(c.activities, cp...) }
}

// WithLogger routes registration diagnostics to l (debug level).
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}
