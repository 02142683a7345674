// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tempus/core"
	"github.com/katalvlaran/tempus/interval"
)

// MethodRegister is the canonical operation name used in error context and logs.
const MethodRegister = "Register"

// Edge is one duration constraint between two time points.
//
// If Interval is nil (or the builder runs WithImplicitIntervals), the bound is
// derived from Minutes, the nominal duration.
type Edge struct {
	Source   core.TimePoint
	Target   core.TimePoint
	Interval *interval.Interval
	Minutes  float64
	Action   string // optional activity/actor name, copied onto both arcs
}

// Between is shorthand for an edge with an explicit interval [lower, upper].
func Between(source, target core.TimePoint, lower, upper float64) Edge {
	iv := interval.New(lower, upper)

	return Edge{Source: source, Target: target, Interval: &iv}
}

// Nominal is shorthand for an edge described only by its nominal duration.
func Nominal(source, target core.TimePoint, minutes float64) Edge {
	return Edge{Source: source, Target: target, Minutes: minutes}
}

// Activity attaches a display label to a time point.
type Activity struct {
	ID    core.TimePoint
	Label string
}

// DuplicatePolicy decides how repeated constraints on the same pair combine.
type DuplicatePolicy int

const (
	// DuplicateOverwrite keeps the last written arc weight per ordered pair.
	DuplicateOverwrite DuplicatePolicy = iota

	// DuplicateIntersect tightens repeated constraints with interval.Union.
	DuplicateIntersect
)

// String returns the policy name used in payloads and logs.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateOverwrite:
		return "overwrite"
	case DuplicateIntersect:
		return "intersect"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParsePolicy maps "overwrite" / "intersect" (case-insensitive) to a policy.
// The empty string selects DuplicateOverwrite.
func ParsePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return DuplicateOverwrite, nil
	case "intersect":
		return DuplicateIntersect, nil
	default:
		return 0, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
	}
}
