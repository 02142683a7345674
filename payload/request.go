// SPDX-License-Identifier: MIT

package payload

import (
	"github.com/katalvlaran/tempus/builder"
	"github.com/katalvlaran/tempus/core"
	"github.com/katalvlaran/tempus/interval"
)

// Request is one decoded constraint set.
type Request struct {
	Edges   []EdgeSpec `json:"edges" yaml:"edges" validate:"dive"`
	Nodes   []NodeSpec `json:"nodes,omitempty" yaml:"nodes,omitempty" validate:"dive"`
	Options Options    `json:"options" yaml:"options"`
}

// EdgeSpec is one duration constraint as written in a request file.
// Exactly how the interval is chosen is up to builder: an explicit Interval
// wins unless Options.ImplicitIntervals is set.
type EdgeSpec struct {
	Source   core.TimePoint     `json:"source" yaml:"source"`
	Target   core.TimePoint     `json:"target" yaml:"target"`
	Interval *interval.Interval `json:"interval,omitempty" yaml:"interval,omitempty"`
	Minutes  *float64           `json:"minutes,omitempty" yaml:"minutes,omitempty" validate:"omitempty,gte=0"`
	Action   string             `json:"action,omitempty" yaml:"action,omitempty" validate:"max=128"`
}

// NodeSpec labels a time point.
type NodeSpec struct {
	ID    core.TimePoint `json:"id" yaml:"id"`
	Label string         `json:"label" yaml:"label" validate:"required,max=256"`
}

// Options are the request-level builder knobs.
type Options struct {
	ImplicitIntervals    bool     `json:"implicit_intervals,omitempty" yaml:"implicit_intervals,omitempty"`
	ExecutionUncertainty *float64 `json:"execution_uncertainty,omitempty" yaml:"execution_uncertainty,omitempty" validate:"omitempty,gte=0,lte=1"`
	Duplicates           string   `json:"duplicates,omitempty" yaml:"duplicates,omitempty" validate:"omitempty,oneof=overwrite intersect"`
}

// Edges converts the request edges into builder values, preserving order.
func (r *Request) Edges() []builder.Edge {
	out := make([]builder.Edge, 0, len(r.Edges))
	for _, e := range r.Edges {
		be := builder.Edge{Source: e.Source, Target: e.Target, Action: e.Action}
		if e.Interval != nil {
			iv := *e.Interval
			be.Interval = &iv
		}
		if e.Minutes != nil {
			be.Minutes = *e.Minutes
		}
		out = append(out, be)
	}

	return out
}

// BuilderOptions translates Options and Nodes into builder options.
// Unlike the builder constructors it reports bad values as errors instead of
// panicking, so it is safe on requests that skipped Validate.
func (r *Request) BuilderOptions() ([]builder.Option, error) {
	var opts []builder.Option
	if r.Options.ImplicitIntervals {
		opts = append(opts, builder.WithImplicitIntervals())
	}
	if u := r.Options.ExecutionUncertainty; u != nil {
		if !(*u >= 0 && *u <= 1) {
			return nil, malformedf("execution_uncertainty %v outside [0, 1]", *u)
		}
		opts = append(opts, builder.WithUncertainty(*u))
	}
	policy, err := builder.ParsePolicy(r.Options.Duplicates)
	if err != nil {
		return nil, malformedf("duplicates: %v", err)
	}
	opts = append(opts, builder.WithDuplicatePolicy(policy))
	if len(r.Nodes) > 0 {
		acts := make([]builder.Activity, len(r.Nodes))
		for i, n := range r.Nodes {
			acts[i] = builder.Activity{ID: n.ID, Label: n.Label}
		}
		opts = append(opts, builder.WithActivities(acts...))
	}

	return opts, nil
}
