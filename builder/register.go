// SPDX-License-Identifier: MIT

package builder

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/tempus/core"
	"github.com/katalvlaran/tempus/interval"
)

// pairKey addresses an unordered pair of time points by dense index, lo ≤ hi.
type pairKey struct {
	lo, hi int
}

// Register writes edges into g as a distance graph and returns the final
// node and arc counts (self-loops included in arcs).
//
// Steps:
//  1. Register every distinct source/target id in discovery order (edge order,
//     source before target); AddVertex inserts the zero self-loop.
//  2. Apply activity labels to registered ids.
//  3. For each edge compute the effective interval [l, u] and write
//     source→target = u, target→source = -l under the duplicate policy.
//
// Errors: ErrNilGraph. Endpoint lookups cannot fail because step 1 derives
// the node set from the edges themselves.
//
// Complexity: O(E + V).
func Register(g *core.Graph, edges []Edge, opts ...Option) (nodes, arcs int, err error) {
	if g == nil {
		return 0, 0, builderErrorf(MethodRegister, "graph", ErrNilGraph)
	}
	cfg := newConfig(opts...)

	// 1) Node set = closure of edge references.
	for _, e := range edges {
		g.AddVertex(e.Source)
		g.AddVertex(e.Target)
	}

	// 2) Labels for known ids only.
	for _, a := range cfg.activities {
		if g.HasVertex(a.ID) {
			_ = g.SetLabel(a.ID, a.Label)
		}
	}

	// 3) Arcs.
	var seen map[pairKey]interval.Interval
	if cfg.policy == DuplicateIntersect {
		seen = make(map[pairKey]interval.Interval, len(edges))
	}
	for _, e := range edges {
		iv := cfg.effective(e)
		if seen != nil {
			iv = tighten(g, seen, e.Source, e.Target, iv)
		}
		if err = writeConstraint(g, e.Source, e.Target, iv, e.Action); err != nil {
			return g.VertexCount(), g.ArcCount(), builderErrorf(MethodRegister, "edge", err)
		}
	}

	nodes, arcs = g.VertexCount(), g.ArcCount()
	cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "distance graph registered",
		slog.Int("edges", len(edges)),
		slog.Int("time_points", nodes),
		slog.Int("arcs", arcs),
		slog.Bool("implicit_intervals", cfg.implicit),
		slog.Float64("uncertainty", cfg.uncertainty),
		slog.String("duplicates", cfg.policy.String()),
	)

	return nodes, arcs, nil
}

// effective returns the interval an edge contributes to the graph.
func (c config) effective(e Edge) interval.Interval {
	if c.implicit || e.Interval == nil {
		return interval.FromNominal(e.Minutes, c.uncertainty)
	}

	return *e.Interval
}

// tighten folds iv (oriented source→target) into the window already seen for
// the same unordered pair and returns the combined window in the same orientation.
func tighten(g *core.Graph, seen map[pairKey]interval.Interval, source, target core.TimePoint, iv interval.Interval) interval.Interval {
	si, _ := g.IndexOf(source)
	ti, _ := g.IndexOf(target)

	// Store windows oriented lo→hi so both directions share one entry.
	key, flipped := pairKey{lo: si, hi: ti}, false
	if ti < si {
		key, flipped = pairKey{lo: ti, hi: si}, true
	}
	oriented := iv
	if flipped {
		oriented = iv.Negate()
	}
	if prev, ok := seen[key]; ok {
		oriented = prev.Union(oriented)
	}
	seen[key] = oriented

	if flipped {
		return oriented.Negate()
	}

	return oriented
}

// writeConstraint inserts the two arcs encoding t(target) - t(source) ∈ iv.
//
// A self-constraint (source == target) has a single diagonal arc, folded to
// min(0, u, -l): a window containing 0 keeps the zero self-loop, any other
// window leaves a negative diagonal that propagation reports as a cycle.
func writeConstraint(g *core.Graph, source, target core.TimePoint, iv interval.Interval, action string) error {
	var opts []core.ArcOption
	if action != "" {
		opts = append(opts, core.WithAction(action))
	}
	if source == target {
		w := 0.0
		if iv.Upper() < w {
			w = iv.Upper()
		}
		if -iv.Lower() < w {
			w = -iv.Lower()
		}

		return g.SetArc(source, source, w, opts...)
	}
	if err := g.SetArc(source, target, iv.Upper(), opts...); err != nil {
		return err
	}

	return g.SetArc(target, source, -iv.Lower(), opts...)
}
